// Package model defines core data structures and types for the portfolio site.
package model

import "html/template"

type PostID string

// PostSummary is the listing projection of a post. Every field is derived
// from the source document on each call; nothing is cached between calls.
type PostSummary struct {
	ID PostID

	Title       string
	Description string
	CoverPath   string

	// Derived from the body word count, never taken from front matter.
	ReadTimeInMinutes string

	// PostedAt is an ISO date (YYYY-MM-DD), so lexicographic order is
	// chronological order.
	PostedAt string
}

// PostDetail extends PostSummary with the fully rendered body.
type PostDetail struct {
	PostSummary

	HTMLContent template.HTML
}
