// Package navigation builds the admin menu and breadcrumbs of a page.
package navigation

import (
	"slices"

	"github.com/atik-theme/atik-assistant/internal/auth"
)

// BreadcrumbItem represents a single breadcrumb link.
type BreadcrumbItem struct {
	Title  string
	URL    string
	Active bool
}

// MenuItem is an entry of the admin menu.
type MenuItem struct {
	Title   string
	URL     string
	Section string
	// Permission hides the entry from users without it. Empty means everyone.
	Permission string
	Active     bool
}

// Context represents the navigation context for a page.
type Context struct {
	ActiveSection string
	PageTitle     string
	Breadcrumbs   []BreadcrumbItem
	Menu          []MenuItem
}

// AdminMenu lists the sections of the admin area.
func AdminMenu() []MenuItem {
	return []MenuItem{
		{Title: "Dashboard", URL: "/admin", Section: "dashboard"},
		{Title: "Widgets", URL: "/admin/widgets", Section: "widgets", Permission: auth.PermWidgetsManage},
		{Title: "Content", URL: "/admin/content", Section: "content", Permission: auth.PermContentEdit},
		{Title: "Account", URL: "/admin/account", Section: "account"},
	}
}

// NewContext creates a navigation context for an admin page. The menu keeps
// the entries allowed by permissions.
func NewContext(pageTitle, activeSection string, permissions []string) *Context {
	c := &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Breadcrumbs:   []BreadcrumbItem{{Title: "Admin", URL: "/admin"}},
	}

	for _, item := range AdminMenu() {
		if item.Permission != "" && !slices.Contains(permissions, item.Permission) {
			continue
		}

		item.Active = item.Section == activeSection
		c.Menu = append(c.Menu, item)
	}

	return c
}

// AddBreadcrumb adds a breadcrumb item to the context.
func (c *Context) AddBreadcrumb(title, url string, active bool) *Context {
	c.Breadcrumbs = append(c.Breadcrumbs, BreadcrumbItem{
		Title:  title,
		URL:    url,
		Active: active,
	})

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
