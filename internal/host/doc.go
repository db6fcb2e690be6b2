// Package host provides the site side of the widget system: the widget
// registry, lifecycle hooks, the content catalog used by page and category
// fields, the configured sidebars and the service that stores and renders
// widget placements.
package host
