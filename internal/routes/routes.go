// Package routes defines HTTP route constants for the application.
package routes

// Public routes
const (
	RootPath    = "/"
	AboutPath   = "/about"
	BlogPath    = "/blog"
	BlogPost    = "/blog/{slug}"
	ContactPath = "/contact"

	RobotsPath = "/robots.txt"
)

// Admin routes
const (
	AdminLogin     = "/admin/login"
	AdminLogout    = "/admin/logout"
	AdminDashboard = "/admin/dashboard"

	AdminEditorNew = "/admin/editor"
	AdminEditor    = "/admin/editor/{id}"

	// Editor session API
	AdminAPISession      = "/admin/api/session/{sid}"
	AdminAPISessionSave  = "/admin/api/session/{sid}/save"
	AdminAPISessionCover = "/admin/api/session/{sid}/cover"

	AdminAPIImages     = "/admin/api/images"
	AdminAPIPostDelete = "/admin/api/posts/{id}/delete"
)
