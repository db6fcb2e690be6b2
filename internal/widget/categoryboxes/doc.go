// Package categoryboxes implements the "Section: Category Boxes" widget, a
// grid of promotional tiles each made of a background image and a button.
package categoryboxes
