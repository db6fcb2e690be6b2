package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/atik-theme/atik-assistant/internal/auth"
	"github.com/atik-theme/atik-assistant/internal/config"
	"github.com/atik-theme/atik-assistant/internal/host"
)

// Deps are the collaborators shared by all handlers.
type Deps struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Auth    *auth.Service
	Widgets *host.Widgets
	Hooks   *host.Hooks
}

// Valid reports whether every collaborator is set.
func (d Deps) Valid() bool {
	return d.Cfg != nil && d.DB != nil && d.Auth != nil && d.Widgets != nil && d.Hooks != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps Deps) error
}
