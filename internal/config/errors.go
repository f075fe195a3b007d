package config

const (
	// Database errors
	ErrInitializeDatabaseFmt = "Failed to initialize database: %v"

	// Auth errors
	ErrInvalidCredentials  = "Email hoặc mật khẩu không đúng"
	ErrInternalServerError = "Internal server error"

	// Post processing errors
	ErrLoadPosts = "Error loading posts"
	ErrSavePost  = "Error saving post"

	// Upload errors
	ErrUploadImageFmt = "Lỗi upload ảnh: %s"
)
