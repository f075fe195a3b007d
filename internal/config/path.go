package config

const (
	//? These paths must match the paths in the embed directive

	StaticLocalDir = "static"
	StaticUrlPath  = "/" + StaticLocalDir + "/"

	TemplatesLocalDir = "templates"

	TemplateLayout    = "layout.html"
	TemplateHome      = "home.html"
	TemplateAbout     = "about.html"
	TemplateBlog      = "blog.html"
	TemplatePost      = "post.html"
	TemplateContact   = "contact.html"
	TemplateNotFound  = "notfound.html"
	TemplateLogin     = "login.html"
	TemplateDashboard = "dashboard.html"
	TemplateEditor    = "editor.html"
	TemplateError     = "error.html"
)
