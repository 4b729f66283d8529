package repository

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/frontmatter"
	"github.com/AljazOblonsek/portfolio/internal/model"
	"github.com/AljazOblonsek/portfolio/internal/render"
)

type FSPostRepository struct { // implements PostRepository
	postsDir string
	baseURL  string
	renderer *render.Renderer
}

func NewFSPostRepository(postsDir, baseURL string, renderer *render.Renderer) *FSPostRepository {
	return &FSPostRepository{
		postsDir: postsDir,
		baseURL:  baseURL,
		renderer: renderer,
	}
}

func (r *FSPostRepository) ListSummaries() ([]model.PostSummary, error) {
	entries, err := os.ReadDir(r.postsDir)
	if err != nil {
		return nil, fmt.Errorf("reading posts directory %s: %w", r.postsDir, err)
	}

	var posts []model.PostSummary
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == config.GitkeepFile || !strings.HasSuffix(entry.Name(), config.PostExt) {
			continue
		}

		id := model.PostID(strings.TrimSuffix(entry.Name(), config.PostExt))

		doc, err := os.ReadFile(filepath.Join(r.postsDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading post %s: %w", id, err)
		}

		meta, body, err := frontmatter.Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("parsing post %s: %w", id, err)
		}

		posts = append(posts, newSummary(id, meta, body))
	}

	sortSummaries(posts)
	repoLogger.Debug().Int("count", len(posts)).Str("dir", r.postsDir).Msg("Listed post summaries")
	return posts, nil
}

func (r *FSPostRepository) GetDetail(id model.PostID) (*model.PostDetail, error) {
	// Ids come straight from URLs; anything that doesn't look like a bare
	// file name can't match a document.
	if strings.ContainsAny(string(id), `/\`) || id == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	doc, err := os.ReadFile(filepath.Join(r.postsDir, string(id)+config.PostExt))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading post %s: %w", id, err)
	}

	meta, body, err := frontmatter.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing post %s: %w", id, err)
	}

	body = frontmatter.ReplaceBaseURL(body, r.baseURL)

	return &model.PostDetail{
		PostSummary: newSummary(id, meta, body),
		HTMLContent: template.HTML(r.renderer.Render(body)),
	}, nil
}
