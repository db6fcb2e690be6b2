// Package sanitize implements the string filters applied to widget settings
// before they are stored and again before they are rendered.
//
// Every filter is a pure func(string) string and never fails: input that can
// not be salvaged becomes an empty string.
package sanitize
