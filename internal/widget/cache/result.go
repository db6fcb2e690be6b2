package cache

// MissReason explains a Miss.
type MissReason int

const (
	// MissNotFound means no markup is stored for the effective key.
	MissNotFound MissReason = iota + 1
	// MissDisabled means caching is turned off by configuration.
	MissDisabled
	// MissUnavailable means the store could not be read.
	MissUnavailable
)

// String returns the reason as used in metrics labels.
func (r MissReason) String() string {
	switch r {
	case MissNotFound:
		return "not_found"
	case MissDisabled:
		return "disabled"
	case MissUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is either a Hit carrying markup or a Miss carrying its reason.
type Result struct {
	markup string
	hit    bool
	reason MissReason
}

// Hit wraps cached markup.
func Hit(markup string) Result {
	return Result{markup: markup, hit: true}
}

// Miss reports that nothing usable is cached.
func Miss(reason MissReason) Result {
	return Result{reason: reason}
}

// Markup returns the cached markup and whether the result is a hit.
func (r Result) Markup() (string, bool) {
	return r.markup, r.hit
}

// IsHit reports whether markup was found.
func (r Result) IsHit() bool {
	return r.hit
}

// Reason returns why the result is a miss. It is zero for hits.
func (r Result) Reason() MissReason {
	return r.reason
}
