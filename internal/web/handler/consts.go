package handler

const (
	// BaseLayout is the layout of public pages.
	BaseLayout = "layouts/base"

	// AdminLayout is the layout of the admin area.
	AdminLayout = "layouts/admin"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root of a route group.
	RouterRootPath = "/"

	// AdminPath is the prefix of every admin route.
	AdminPath = "/admin"

	// ErrNilACDFatalLogMsg is used if app or deps are nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
