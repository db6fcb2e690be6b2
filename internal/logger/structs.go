package logger

// Console configures logging to stdout and stderr.
type Console struct {
	Enabled bool `toml:"enabled"`
	// UseConsoleWriter prints human readable lines instead of JSON.
	UseConsoleWriter bool `toml:"useConsoleWriter"`
}

// RollingFile configures one lumberjack rotated file.
type RollingFile struct {
	Name       string `toml:"name"`
	MaxSize    int    `toml:"maxSize"` // megabytes
	MaxBackups int    `toml:"maxBackups"`
	MaxAge     int    `toml:"maxAge"` // days
}

// LogFile configures file logging, one file per level group.
type LogFile struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`

	Access RollingFile `toml:"access"`
	Error  RollingFile `toml:"error"`
	Info   RollingFile `toml:"info"`
	Trace  RollingFile `toml:"trace"`
	Warn   RollingFile `toml:"warn"`
}

// Log is the logger configuration.
type Log struct {
	LogLevel string // trace, debug, info, warn, error

	// AccessLogToConsole mirrors the access log to stdout when the console
	// logger is enabled.
	AccessLogToConsole bool
	ReportCaller       bool
	// SkipPaths are request paths left out of the access log, e.g. /metrics.
	SkipPaths []string

	AppName     string
	ServiceName string

	Console Console
	File    LogFile `toml:"file"`
}
