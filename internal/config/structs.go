package config

import (
	"time"

	"github.com/atik-theme/atik-assistant/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	DB        DB
	Log       logger.Log
	Webserver Webserver
	Cache     Cache
	Theme     Theme
	Sidebars  []Sidebar
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic        bool    // enable static file browsing (for development purposes only)
	DisableRecover      bool    // disable recover middleware
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // encryption key for cookies
	Session             Session // session settings
}

// Cache configures the store behind the widget output cache.
type Cache struct {
	// Driver is one of memory, redis, db. db uses the configured database.
	Driver string
	// Group is the namespace widget output is stored under.
	Group string
	// DisableWidgetCache turns every widget render into a cache miss.
	DisableWidgetCache bool
	// TTL of cached widget output, 0 keeps entries until invalidated.
	TTL   time.Duration
	Redis Redis
}

// Redis connection settings for Cache.Driver = "redis".
type Redis struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// Theme settings.
type Theme struct {
	// Active is the name of the active theme. Changing it from the admin
	// flushes every widget cache.
	Active string
}

// Sidebar is a widget area of the theme.
type Sidebar struct {
	ID           string
	Name         string
	BeforeWidget string // fmt pattern taking the placement id and the widget class
	AfterWidget  string
	BeforeTitle  string
	AfterTitle   string
}
