// Package main is the entry point of Atik Assistant. It serves a small site
// whose theme sidebars hold configurable widgets, such as the Category Boxes
// section, with an admin area to place and configure them. Rendered widget
// output is cached and dropped whenever content or the theme changes.
package main
