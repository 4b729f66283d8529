package repository

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AljazOblonsek/portfolio/internal/frontmatter"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/render"
)

func newTestRepository(t *testing.T, dir string) *FSPostRepository {
	t.Helper()
	renderer := render.New("bl-", "monokai")
	return NewFSPostRepository(filepath.Join("testdata", dir), "https://example.com", renderer)
}

func TestListSummaries(t *testing.T) {
	repo := newTestRepository(t, "posts")

	posts, err := repo.ListSummaries()
	if err != nil {
		t.Fatalf("ListSummaries() error = %v", err)
	}

	t.Run("ordered by posted date descending", func(t *testing.T) {
		wantDates := []string{"2024-03-01", "2024-01-01", "2023-12-01"}
		if len(posts) != len(wantDates) {
			t.Fatalf("got %d posts, want %d", len(posts), len(wantDates))
		}
		for i, want := range wantDates {
			if posts[i].PostedAt != want {
				t.Errorf("posts[%d].PostedAt = %q, want %q", i, posts[i].PostedAt, want)
			}
		}
	})

	t.Run("id is the file name without extension", func(t *testing.T) {
		if posts[0].ID != "go-generics-notes" {
			t.Errorf("posts[0].ID = %q, want %q", posts[0].ID, "go-generics-notes")
		}
	})

	t.Run("gitkeep placeholder is excluded", func(t *testing.T) {
		for _, p := range posts {
			if strings.Contains(string(p.ID), "gitkeep") {
				t.Errorf("placeholder file leaked into listing: %q", p.ID)
			}
		}
	})

	t.Run("front matter fields are carried over", func(t *testing.T) {
		p := posts[1]
		if p.Title != "Building a Homelab" {
			t.Errorf("Title = %q", p.Title)
		}
		if p.Description == "" {
			t.Error("expected a description")
		}
		if p.CoverPath != "/static/covers/homelab.png" {
			t.Errorf("CoverPath = %q", p.CoverPath)
		}
	})

	t.Run("declared readTimeInMinutes is recomputed", func(t *testing.T) {
		// go-generics-notes.md declares '99'; the body is far shorter.
		if posts[0].ReadTimeInMinutes != "1" {
			t.Errorf("ReadTimeInMinutes = %q, want %q", posts[0].ReadTimeInMinutes, "1")
		}
	})
}

func TestListSummariesTieBreak(t *testing.T) {
	repo := newTestRepository(t, "ties")

	posts, err := repo.ListSummaries()
	if err != nil {
		t.Fatalf("ListSummaries() error = %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	// Equal dates fall back to id ascending.
	if posts[0].ID != "a-first" || posts[1].ID != "b-second" {
		t.Errorf("tie-break order = [%s, %s], want [a-first, b-second]", posts[0].ID, posts[1].ID)
	}
}

func TestListSummariesMalformedDocument(t *testing.T) {
	repo := newTestRepository(t, "malformed")

	_, err := repo.ListSummaries()
	if !errors.Is(err, frontmatter.ErrMalformedDocument) {
		t.Errorf("ListSummaries() error = %v, want ErrMalformedDocument", err)
	}
}

func TestListSummariesMissingDirectory(t *testing.T) {
	repo := newTestRepository(t, "does-not-exist")

	if _, err := repo.ListSummaries(); err == nil {
		t.Error("expected an error for a missing backing store")
	}
}

func TestGetDetail(t *testing.T) {
	repo := newTestRepository(t, "posts")

	t.Run("renders the body", func(t *testing.T) {
		detail, err := repo.GetDetail("building-a-homelab")
		if err != nil {
			t.Fatalf("GetDetail() error = %v", err)
		}

		html := string(detail.HTMLContent)
		if !strings.Contains(html, `id="bl-section-one"`) {
			t.Errorf("expected prefixed heading anchor, got %q", html)
		}
		if !strings.Contains(html, `<div class="highlight">`) {
			t.Error("expected highlighted code block")
		}
	})

	t.Run("substitutes the base URL placeholder", func(t *testing.T) {
		detail, err := repo.GetDetail("building-a-homelab")
		if err != nil {
			t.Fatalf("GetDetail() error = %v", err)
		}

		html := string(detail.HTMLContent)
		if !strings.Contains(html, "https://example.com/blog/building-a-homelab") {
			t.Errorf("expected substituted base URL, got %q", html)
		}
		if strings.Contains(html, frontmatter.BaseURLPlaceholder) {
			t.Error("placeholder token survived substitution")
		}
	})

	t.Run("summary fields are populated", func(t *testing.T) {
		detail, err := repo.GetDetail("first-post")
		if err != nil {
			t.Fatalf("GetDetail() error = %v", err)
		}

		if detail.Title != "First Post" {
			t.Errorf("Title = %q", detail.Title)
		}
		if detail.PostedAt != "2023-12-01" {
			t.Errorf("PostedAt = %q", detail.PostedAt)
		}
		if detail.ReadTimeInMinutes != "1" {
			t.Errorf("ReadTimeInMinutes = %q", detail.ReadTimeInMinutes)
		}
	})

	t.Run("missing id fails with ErrNotFound", func(t *testing.T) {
		_, err := repo.GetDetail("missing-id")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("GetDetail() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("path-like ids fail with ErrNotFound", func(t *testing.T) {
		for _, id := range []string{"../posts/first-post", "a/b", `a\b`, ""} {
			if _, err := repo.GetDetail(model.PostID(id)); !errors.Is(err, ErrNotFound) {
				t.Errorf("GetDetail(%q) error = %v, want ErrNotFound", id, err)
			}
		}
	})

	t.Run("malformed document fails with ErrMalformedDocument", func(t *testing.T) {
		broken := newTestRepository(t, "malformed")
		_, err := broken.GetDetail("broken")
		if !errors.Is(err, frontmatter.ErrMalformedDocument) {
			t.Errorf("GetDetail() error = %v, want ErrMalformedDocument", err)
		}
	})
}
