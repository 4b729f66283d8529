package config

const (
	HCType           = "Content-Type"
	HETag            = "ETag"
	HCacheControl    = "Cache-Control"
	HContentEncoding = "Content-Encoding"
	HAcceptEncoding  = "Accept-Encoding"
	HRequestID       = "X-Request-Id"

	CTypeCSS  = "text/css"
	CTypeHTML = "text/html; charset=utf-8"
)
