package config

const (
	//? These paths must match the paths in the embed directive

	StaticLocalDir = "static"
	StaticUrlPath  = "/" + StaticLocalDir + "/"

	BlogUrlPath = "/blog/"

	TemplatesLocalDir = "templates"

	TemplateLayout   = "layout.html"
	TemplateIndex    = "index.html"
	TemplateBlog     = "blog.html"
	TemplatePost     = "post.html"
	TemplateNotFound = "notfound.html"
	TemplateError    = "error.html"
)

const (
	// PostExt is the extension of post source documents.
	PostExt = ".md"

	// GitkeepFile keeps the posts directory alive in git and is excluded
	// from enumeration.
	GitkeepFile = ".gitkeep"
)
