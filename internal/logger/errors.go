package logger

import "errors"

var (
	// ErrUnsupportedLevel is returned for a Log.LogLevel zerolog does not know.
	ErrUnsupportedLevel = errors.New("unsupported log level")

	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrLogDirUnavailable is logged when the rolling file directory cannot
	// be created; file output is skipped then.
	ErrLogDirUnavailable = errors.New("log directory unavailable")
)
