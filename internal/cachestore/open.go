package cachestore

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db/dsn"
)

// Cache drivers.
const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
	// DriverDB keeps entries in a table of the configured database. It falls
	// back to memory for sqlite.
	DriverDB = "db"
)

// Table names used by the db driver.
const (
	CacheTable   = "widget_cache"
	SessionTable = "sessions"
)

// Open returns the storage selected by cfg.Cache.Driver.
func Open(cfg *config.Config) (fiber.Storage, error) {
	return open(cfg, cfg.Cache.Driver, CacheTable)
}

// OpenSessions returns the storage for login sessions. Sessions live in the
// database when it is shared between instances, in memory otherwise.
func OpenSessions(cfg *config.Config) (fiber.Storage, error) {
	return open(cfg, DriverDB, SessionTable)
}

func open(cfg *config.Config, driver, table string) (fiber.Storage, error) {
	switch driver {
	case DriverMemory, "":
		return memory.New(), nil

	case DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})

		return NewRedisStorage(client, cfg.Cache.Redis.Prefix), nil

	case DriverDB:
		switch cfg.DB.GormEngine {
		case config.EngineMySQL:
			return mysql.New(mysql.Config{
				ConnectionURI: dsn.MySQL(cfg),
				Table:         table,
			}), nil
		case config.EnginePostgres:
			return postgres.New(postgres.Config{
				ConnectionURI: dsn.Postgres(cfg),
				Table:         table,
			}), nil
		default:
			log.Info().Str("table", table).Msg("sqlite has no shared storage, using memory")
			return memory.New(), nil
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}
