// Package fiber provides a zerolog access-log middleware for fiber.
package fiber

import (
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/atik-theme/atik-assistant/internal/logger"
)

// RequestIDKey is the fiber.Locals key holding the request id.
const RequestIDKey = "requestid"

// Config of the access-log middleware.
type Config struct {
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool

	// Log selects the outputs: the access file and, with
	// AccessLogToConsole, stdout.
	Log logger.Log

	// Output replaces the configured outputs when set.
	Output io.Writer

	// CacheControlError is sent with responses of failed handlers.
	CacheControlError string
}

func (cfg Config) writer() io.Writer {
	if cfg.Output != nil {
		return cfg.Output
	}

	var writers []io.Writer

	if cfg.Log.File.Enabled && logger.EnsureDir(cfg.Log.File.Path) {
		writers = append(writers, logger.Rolling(cfg.Log.File.Path, cfg.Log.File.Access))
	}

	if cfg.Log.Console.Enabled && cfg.Log.AccessLogToConsole {
		if cfg.Log.Console.UseConsoleWriter {
			writers = append(writers, zerolog.ConsoleWriter{
				Out:          os.Stdout,
				TimeFormat:   zerolog.TimeFieldFormat,
				PartsExclude: []string{zerolog.LevelFieldName},
			})
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if len(writers) == 0 {
		return io.Discard
	}

	return zerolog.MultiLevelWriter(writers...)
}

// New creates the access-log middleware. Handler errors are answered with
// the app's error handler before the request is logged.
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.CacheControlError == "" {
		cfg.CacheControlError = "max-age=0"
	}

	access := zerolog.New(cfg.writer()).With().Timestamp().Logger()

	return func(ctx *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(ctx) {
			return ctx.Next()
		}

		start := time.Now()

		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				_ = ctx.SendStatus(fiber.StatusInternalServerError) //nolint:errcheck
			}

			ctx.Response().Header.Set(fiber.HeaderCacheControl, cfg.CacheControlError)
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set("X-Performance", strconv.FormatFloat(elapsed, 'f', 6, 64))

		if slices.Contains(cfg.Log.SkipPaths, ctx.Path()) {
			return nil
		}

		// fasthttp normalizes the path, log what the client sent
		uri := ctx.Path()
		if q := ctx.Request().URI().QueryString(); len(q) > 0 {
			uri += "?" + string(q)
		}

		event := access.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64("X-Performance", elapsed).
			Str("URI", uri).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if id, ok := ctx.Locals(RequestIDKey).(string); ok {
			event.Str("request_id", id)
		}

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}
