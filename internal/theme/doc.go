// Package theme holds the embedded templates of the site: admin field
// controls, widget markup, partials and pages.
package theme
