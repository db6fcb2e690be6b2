// Package dsn builds database connection strings from the configuration.
package dsn

import (
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/atik-theme/atik-assistant/internal/config"
)

// Create builds the DSN of the configured engine. For sqlite it is the
// database file name.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return MySQL(cfg)
	case config.EnginePostgres:
		return Postgres(cfg)
	default:
		return cfg.DB.Name
	}
}

// MySQL builds a go-sql-driver DSN.
func MySQL(cfg *config.Config) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		cfg.DB.Extras,
	)
}

// Postgres builds a postgres:// connection URI.
func Postgres(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     net.JoinHostPort(cfg.DB.Host, strconv.Itoa(cfg.DB.Port)),
		Path:     "/" + cfg.DB.Name,
		RawQuery: cfg.DB.Extras,
	}

	return u.String()
}
