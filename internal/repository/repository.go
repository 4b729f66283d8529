// Package repository discovers post source documents and turns them into
// summary and detail projections.
package repository

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/AljazOblonsek/portfolio/internal/frontmatter"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/readtime"
)

var repoLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	repoLogger = l
}

// ErrNotFound indicates that no post document matches the requested id.
var ErrNotFound = errors.New("post not found")

// PostRepository reads post documents from a backing store. Implementations
// hold no mutable state between calls: every listing and lookup re-reads
// the store, so unlimited read concurrency is safe.
type PostRepository interface {
	// ListSummaries returns one summary per post document, ordered by
	// posted date descending.
	ListSummaries() ([]model.PostSummary, error)

	// GetDetail re-reads, re-parses and re-renders the post with the given
	// id. Fails with ErrNotFound when no document matches.
	GetDetail(id model.PostID) (*model.PostDetail, error)
}

// newSummary assembles a summary from parsed front matter and the raw body.
// The read time is always recomputed; a readTimeInMinutes declared in the
// front matter is ignored.
func newSummary(id model.PostID, meta *frontmatter.Meta, body []byte) model.PostSummary {
	return model.PostSummary{
		ID:                id,
		Title:             meta.Title,
		Description:       meta.Description,
		CoverPath:         meta.CoverPath,
		ReadTimeInMinutes: strconv.Itoa(readtime.Estimate(string(body))),
		PostedAt:          meta.Date,
	}
}

// sortSummaries orders posts newest first. PostedAt is an ISO date, so a
// plain string comparison sorts chronologically; equal dates fall back to
// id ascending to keep the order deterministic.
func sortSummaries(posts []model.PostSummary) {
	slices.SortFunc(posts, func(a, b model.PostSummary) int {
		if c := strings.Compare(b.PostedAt, a.PostedAt); c != 0 {
			return c
		}
		return strings.Compare(string(a.ID), string(b.ID))
	})
}
