package auth

import "github.com/atik-theme/atik-assistant/internal/widget"

// Permission constants define the available permissions in the system.
const (
	// PermWidgetsManage allows placing, configuring and removing widgets.
	PermWidgetsManage = "widgets.manage"
	// PermContentEdit allows saving and deleting pages and posts.
	PermContentEdit = "content.edit"
	// PermThemeSwitch allows changing the active theme.
	PermThemeSwitch = "theme.switch"
	// PermUnfilteredHTML allows storing textarea markup without filtering.
	PermUnfilteredHTML = widget.CapUnfilteredHTML
)

// Definition describes a permission for seeding.
type Definition struct {
	Name        string
	Resource    string
	Action      string
	Description string
}

// Definitions returns every permission of the system.
func Definitions() []Definition {
	return []Definition{
		{Name: PermWidgetsManage, Resource: "widgets", Action: "manage", Description: "Place, configure and remove widgets"},
		{Name: PermContentEdit, Resource: "content", Action: "edit", Description: "Save and delete pages and posts"},
		{Name: PermThemeSwitch, Resource: "theme", Action: "switch", Description: "Change the active theme"},
		{Name: PermUnfilteredHTML, Resource: "markup", Action: "unfiltered", Description: "Store widget markup without filtering"},
	}
}

// System roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// RolePermissions maps every system role to its permissions. Editors get
// everything except unfiltered markup.
func RolePermissions() map[string][]string {
	return map[string][]string{
		RoleAdmin:  {PermWidgetsManage, PermContentEdit, PermThemeSwitch, PermUnfilteredHTML},
		RoleEditor: {PermWidgetsManage, PermContentEdit},
	}
}
