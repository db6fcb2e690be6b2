package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configPath(t *testing.T) string {
	t.Helper()

	projectRoot, err := filepath.Abs("../../")
	require.NoError(t, err)

	return filepath.Join(projectRoot, "etc") + string(filepath.Separator)
}

func TestReadConfig(t *testing.T) {
	t.Setenv(EnvConfigJSON, "")

	cfg, err := ReadConfig(configPath(t))
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Title)
	assert.NotZero(t, cfg.Webserver.Port)
	assert.NotEmpty(t, cfg.Webserver.URL)
	assert.Equal(t, EngineSQLite, cfg.DB.GormEngine)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, "widget", cfg.Cache.Group)
	assert.NotEmpty(t, cfg.Theme.Active)

	require.NotEmpty(t, cfg.Sidebars)
	assert.Equal(t, "home-sections", cfg.Sidebars[0].ID)
	assert.Contains(t, cfg.Sidebars[0].BeforeWidget, "%[1]s")
	assert.Equal(t, "access.log", cfg.Log.File.Access.Name)
}

func TestReadConfigJSONOverride(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":"Override","Cache":{"Driver":"redis","DisableWidgetCache":true}}`)

	cfg, err := ReadConfig(configPath(t))
	require.NoError(t, err)

	assert.Equal(t, "Override", cfg.Title)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.True(t, cfg.Cache.DisableWidgetCache)
	// untouched sections keep the file values
	assert.NotZero(t, cfg.Webserver.Port)
}

func TestReadConfigInvalidJSON(t *testing.T) {
	t.Setenv(EnvConfigJSON, `{"Title":`)

	_, err := ReadConfig(configPath(t))
	assert.Error(t, err)
}

func TestReadConfigMissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir() + string(filepath.Separator))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{Webserver: Webserver{Port: 8080, URL: "http://localhost"}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "defaults applied", mutate: func(*Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.Webserver.Port = 0 }, wantErr: ErrWebServerPortCanNotBeZero},
		{name: "empty url", mutate: func(c *Config) { c.Webserver.URL = "" }, wantErr: ErrEmptyURL},
		{name: "unknown engine", mutate: func(c *Config) { c.DB.GormEngine = "oracle" }, wantErr: ErrUnknownGormEngine},
		{
			name: "duplicate sidebar",
			mutate: func(c *Config) {
				c.Sidebars = []Sidebar{{ID: "a"}, {ID: "a"}}
			},
			wantErr: ErrSidebarID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(&c)

			err := validate(&c)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, defaultShutDownTime, c.Webserver.ShutDownTime)
			assert.Equal(t, EngineSQLite, c.DB.GormEngine)
			assert.Equal(t, defaultCacheDriver, c.Cache.Driver)
			assert.Equal(t, defaultCacheGroup, c.Cache.Group)
		})
	}
}

func TestDumpConfig(t *testing.T) {
	cfg := Config{Title: "Dump", Webserver: Webserver{Port: 1}}

	out, err := DumpConfig(cfg)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `Title = "Dump"`))

	out, err = DumpConfigJSON(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"Title": "Dump"`)
}
