// Package routes defines HTTP route constants for the application.
package routes

const (
	BlogPath     = "/blog"
	BlogPostPath = "/blog/{id}"

	SyntaxCSSPath = "/syntax.css"
	RobotsPath    = "/robots.txt"
)
