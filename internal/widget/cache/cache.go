package cache

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/atik-theme/atik-assistant/internal/uniuri"
)

// placeholderLen is the length of the random key used when a render has no
// placement id.
const placeholderLen = 8

// Scope identifies one rendering of a widget placement.
type Scope struct {
	// PlacementID is the id of the placement being rendered. It may be empty
	// when the widget is rendered outside a sidebar.
	PlacementID string
	// ContentID is the content item being viewed, 0 when none.
	ContentID uint64
}

func (s Scope) key(placementID string) string {
	if s.ContentID > 0 {
		return placementID + "-" + strconv.FormatUint(s.ContentID, 10)
	}

	return placementID
}

// Option configures a Cache.
type Option func(*Cache)

// WithGroup overrides the store namespace.
func WithGroup(group string) Option {
	return func(c *Cache) {
		if group != "" {
			c.group = group
		}
	}
}

// WithDisabled turns every lookup into a miss and every write into a no-op.
func WithDisabled(disabled bool) Option {
	return func(c *Cache) {
		c.disabled = disabled
	}
}

// WithPlaceholder replaces the random placeholder key generator.
func WithPlaceholder(fn func() string) Option {
	return func(c *Cache) {
		if fn != nil {
			c.placeholder = fn
		}
	}
}

// Cache stores the rendered markup of every placement of a widget type in a
// single entry keyed by the widget type id.
type Cache struct {
	store       Store
	group       string
	disabled    bool
	placeholder func() string
}

// New creates a cache over store.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store: store,
		group: DefaultGroup,
		placeholder: func() string {
			return "placeholder-" + uniuri.NewLen(placeholderLen)
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the markup cached for scope.
func (c *Cache) Get(widgetID string, scope Scope) Result {
	r := c.get(widgetID, scope)
	observe(widgetID, r)

	log.Debug().
		Str("widget", widgetID).
		Str("placement", scope.PlacementID).
		Uint64("content_id", scope.ContentID).
		Bool("hit", r.IsHit()).
		Msg("widget cache lookup")

	return r
}

func (c *Cache) get(widgetID string, scope Scope) Result {
	if c == nil || c.disabled {
		return Miss(MissDisabled)
	}

	if c.store == nil {
		return Miss(MissUnavailable)
	}

	entries, err := c.load(widgetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Miss(MissNotFound)
		}

		log.Warn().Err(err).Str("widget", widgetID).Msg("widget cache unavailable")

		return Miss(MissUnavailable)
	}

	markup, ok := entries[scope.key(scope.PlacementID)]
	if !ok {
		return Miss(MissNotFound)
	}

	return Hit(markup)
}

// Put stores markup for scope. Without a placement id a random placeholder
// key is used, so such renders never hit later.
func (c *Cache) Put(widgetID string, scope Scope, markup string) {
	if c == nil || c.disabled || c.store == nil {
		return
	}

	placementID := scope.PlacementID
	if placementID == "" {
		placementID = c.placeholder()
	}

	entries, err := c.load(widgetID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Warn().Err(err).Str("widget", widgetID).Msg("widget cache unreadable, replacing entry")
		}

		entries = make(map[string]string, 1)
	}

	entries[scope.key(placementID)] = markup

	blob, err := json.Marshal(entries)
	if err != nil {
		log.Error().Err(err).Str("widget", widgetID).Msg("failed to encode widget cache entry")
		return
	}

	if err = c.store.Set(widgetID, blob, c.group); err != nil {
		log.Warn().Err(err).Str("widget", widgetID).Msg("failed to write widget cache")
	}
}

// Invalidate drops every cached rendering of the widget type.
func (c *Cache) Invalidate(widgetID string) {
	if c == nil || c.store == nil {
		return
	}

	invalidationsTotal.WithLabelValues(widgetID).Inc()

	if err := c.store.Delete(widgetID, c.group); err != nil {
		log.Warn().Err(err).Str("widget", widgetID).Msg("failed to invalidate widget cache")
	}
}

func (c *Cache) load(widgetID string) (map[string]string, error) {
	blob, err := c.store.Get(widgetID, c.group)
	if err != nil {
		return nil, err
	}

	if len(blob) == 0 {
		return nil, ErrNotFound
	}

	entries := make(map[string]string)
	if err = json.Unmarshal(blob, &entries); err != nil {
		log.Warn().Err(err).Str("widget", widgetID).Msg("discarding undecodable widget cache entry")

		return nil, ErrNotFound
	}

	return entries, nil
}
