package config

const (
	HCType        = "Content-Type"
	HETag         = "ETag"
	HCacheControl = "Cache-Control"

	CTypeCSS   = "text/css"
	CTypeHTML  = "text/html"
	CTypePlain = "text/plain"
	CTypeJSON  = "application/json"
)

const (
	HTTPErrMethodNotAllowed = "Method not allowed"
)

const (
	CookieEditorSession = "editor-session"
)
