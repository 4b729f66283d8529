package main

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/AljazOblonsek/portfolio/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Content.PostsDir = "testdata/posts"
	cfg.Site.BaseURL = "https://example.com"
	config.AppConfig = cfg

	a, err := newApp(zerolog.Nop())
	if err != nil {
		t.Fatalf("newApp() error = %v", err)
	}

	srv := httptest.NewServer(a.routes())
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, srv *httptest.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := http.Get(srv.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body of %s: %v", path, err)
	}
	return resp, string(body)
}

func TestServeIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, config.AppConfig.Site.Name) {
		t.Error("expected the site name on the index page")
	}
}

func TestServeBlogIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/blog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	for _, want := range []string{"Hello World", "Older Post", "min read", "2024-05-12"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected listing to contain %q", want)
		}
	}

	// Newest post first.
	if strings.Index(body, "Hello World") > strings.Index(body, "Older Post") {
		t.Error("expected posts ordered by date descending")
	}
}

func TestServeBlogPost(t *testing.T) {
	srv := newTestServer(t)

	t.Run("renders the post", func(t *testing.T) {
		resp, body := get(t, srv, "/blog/hello-world")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		if !strings.Contains(body, `id="bl-section-one"`) {
			t.Error("expected prefixed heading anchor in rendered post")
		}
		if !strings.Contains(body, "https://example.com/x") {
			t.Error("expected base URL placeholder to be substituted")
		}
		if !strings.Contains(body, `issue-term="hello-world"`) {
			t.Error("expected comment widget keyed by post id")
		}
	})

	t.Run("missing post returns 404 page", func(t *testing.T) {
		resp, body := get(t, srv, "/blog/missing-id")
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", resp.StatusCode)
		}
		if !strings.Contains(body, "Not found") {
			t.Error("expected the not-found page body")
		}
	})
}

func TestServeSyntaxCSS(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/syntax.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get(config.HCType); ct != config.CTypeCSS {
		t.Errorf("Content-Type = %q, want %q", ct, config.CTypeCSS)
	}
	if resp.Header.Get(config.HETag) == "" {
		t.Error("expected an ETag header")
	}
	if !strings.Contains(body, ".chroma") {
		t.Error("expected chroma classes in stylesheet")
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := get(t, srv, "/")
	if resp.Header.Get(config.HRequestID) == "" {
		t.Error("expected a request id header")
	}
}

func TestCompressionMiddleware(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/blog", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set(config.HAcceptEncoding, "gzip")

	// Disable the transport's transparent decompression so the header survives.
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if enc := resp.Header.Get(config.HContentEncoding); enc != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", enc)
	}

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("gzip.NewReader: %v", err)
	}
	defer gz.Close()

	body, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("decompressing body: %v", err)
	}
	if !strings.Contains(string(body), "Hello World") {
		t.Error("expected decompressed listing to contain the post title")
	}
}

func TestRobots(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/robots.txt")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "User-agent") {
		t.Error("expected robots.txt content")
	}
}
