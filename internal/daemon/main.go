// Package daemon wires the services of the web daemon together.
package daemon

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/cachestore"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/db"
	"github.com/atik-theme/atik-assistant/internal/host"
	"github.com/atik-theme/atik-assistant/internal/logger"
	"github.com/atik-theme/atik-assistant/internal/theme"
	"github.com/atik-theme/atik-assistant/internal/web"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/session"
	"github.com/atik-theme/atik-assistant/internal/widget"
	"github.com/atik-theme/atik-assistant/internal/widget/cache"
	"github.com/atik-theme/atik-assistant/internal/widget/categoryboxes"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	webService *web.Service
}

// Start starts the web service and blocks until it is shut down.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	return d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to init logger")
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = seed(conn); err != nil {
		return nil, err
	}

	sessions, err := cachestore.OpenSessions(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open session storage")
	}

	session.Init(sessions)

	deps, views, err := services(cfg, conn)
	if err != nil {
		return nil, err
	}

	webService, err := web.New(deps, views)
	if err != nil {
		return nil, err
	}

	log.Info().Str("theme", cfg.Theme.Active).Int("sidebars", len(cfg.Sidebars)).Msg("daemon initialized")

	return &Daemon{cfg: cfg, webService: webService}, nil
}

// services builds the widget host and the handler dependencies.
func services(cfg *config.Config, conn *gorm.DB) (handler.Deps, fiber.Views, error) {
	storage, err := cachestore.Open(cfg)
	if err != nil {
		return handler.Deps{}, nil, errors.Wrap(err, "failed to open cache storage")
	}

	outputCache := cache.New(
		cachestore.NewNamespaced(storage, cfg.Cache.TTL),
		cache.WithGroup(cfg.Cache.Group),
		cache.WithDisabled(cfg.Cache.DisableWidgetCache),
	)

	views := theme.NewViews(cfg.DevMode)
	engine := widget.NewEngine(views, widget.NewRegistry(), host.NewCatalog(conn))

	boxes, err := categoryboxes.New(engine, outputCache)
	if err != nil {
		return handler.Deps{}, nil, err
	}

	hooks := host.NewHooks()
	registry := host.NewRegistry(hooks)

	if err = registry.Register(boxes); err != nil {
		return handler.Deps{}, nil, err
	}

	deps := handler.Deps{
		Cfg:     cfg,
		DB:      conn,
		Auth:    auth.NewService(conn),
		Widgets: host.NewWidgets(conn, registry, host.NewSidebars(cfg.Sidebars)),
		Hooks:   hooks,
	}

	return deps, views, nil
}
