// Package auth provides the session check of the web application.
//
// Requests to the admin area without a valid session are redirected to the
// login page, and a logged in user visiting the login page is sent to the
// admin area. The current user is added to fiber.Locals for templates.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth
