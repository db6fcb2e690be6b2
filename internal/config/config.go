// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	// EnvConfigJSON overrides parts of the file config with a JSON document.
	EnvConfigJSON = "ATIK_ASSISTANT_CONFIG_JSON"

	// DotEnvFile is loaded into the environment before reading the config.
	DotEnvFile = ".env"

	defaultShutDownTime = 5
	defaultCacheDriver  = "memory"
	defaultCacheGroup   = "widget"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var c Config

	if path == "" {
		path = "./etc/"
	}

	loadDotEnv(DotEnvFile)

	if _, err := toml.DecodeFile(path+"main.toml", &c); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if env := os.Getenv(EnvConfigJSON); env != "" {
		var err error

		c, err = decodeAndMergeConfig(c, env)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

// loadDotEnv never overrides variables already set.
func loadDotEnv(file string) {
	if _, err := os.Stat(file); err != nil {
		return
	}

	if err := godotenv.Load(file); err != nil {
		log.Warn().Err(err).Str("file", file).Msg("failed to load env file")
	}
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the settings the service cannot start without and fills
// in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, invalidErrMessage)
	}

	seen := make(map[string]bool, len(c.Sidebars))
	for _, s := range c.Sidebars {
		if s.ID == "" || seen[s.ID] {
			return errors.Wrap(ErrSidebarID, invalidErrMessage)
		}

		seen[s.ID] = true
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Cache.Driver == "" {
		c.Cache.Driver = defaultCacheDriver
	}

	if c.Cache.Group == "" {
		c.Cache.Group = defaultCacheGroup
	}

	return nil
}
