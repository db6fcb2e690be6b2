package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/auth"
	fiberlogger "github.com/atik-theme/atik-assistant/internal/logger/adapter/fiber"
	"github.com/atik-theme/atik-assistant/internal/web/handler"
	"github.com/atik-theme/atik-assistant/internal/web/handler/admin/account"
	"github.com/atik-theme/atik-assistant/internal/web/handler/admin/content"
	"github.com/atik-theme/atik-assistant/internal/web/handler/admin/theme"
	"github.com/atik-theme/atik-assistant/internal/web/handler/admin/widgets"
	"github.com/atik-theme/atik-assistant/internal/web/handler/dashboard"
	"github.com/atik-theme/atik-assistant/internal/web/handler/login"
	"github.com/atik-theme/atik-assistant/internal/web/handler/logout"
	"github.com/atik-theme/atik-assistant/internal/web/handler/site"
	authmiddleware "github.com/atik-theme/atik-assistant/internal/web/middleware/auth"
)

const (
	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"

	// HealthPath answers load balancer checks.
	HealthPath = "/healthz"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	deps         handler.Deps
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so the health check returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.deps.Cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.deps.Cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Health answers 200 while the service accepts traffic and 503 during
// shutdown.
func (s *Service) Health(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// handlers lists every handler service in registration order.
func handlers() []handler.Service {
	return []handler.Service{
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&account.Handler,
		&widgets.Handler,
		&content.Handler,
		&theme.Handler,
		&site.Handler,
	}
}

// New creates the web service. views renders pages and widget forms alike.
func New(deps handler.Deps, views fiber.Views) (*Service, error) {
	if !deps.Valid() || views == nil {
		return nil, handler.ErrNilDeps
	}

	cfg := deps.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          views,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: fiberlogger.RequestIDKey,
	}))

	app.Use(fiberlogger.New(fiberlogger.Config{Log: cfg.Log}))

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		App:  app,
		deps: deps,
	}
	service.alive.Store(true)

	app.Get(HealthPath, service.Health)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(authmiddleware.Middleware)
	app.Use(auth.AddActorToLocals(deps.Auth))

	for _, h := range handlers() {
		if err := h.Init(app, deps); err != nil {
			return nil, err
		}
	}

	return service, nil
}
