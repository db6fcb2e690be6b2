// Package auth provides authentication and authorization for the admin area.
//
// Users log in against the local database; passwords are Argon2id hashes.
// Every user has one role and roles carry permissions. Permissions double as
// the capabilities the widget settings engine asks about, so an Actor built
// for a user answers widget.Actor.Can from the permissions of its role.
//
// Example usage:
//
//	authService := auth.NewService(db)
//
//	app.Post("/admin/widgets/:id",
//	    auth.RequirePermission(authService, auth.PermWidgetsManage),
//	    handler,
//	)
package auth
