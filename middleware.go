package main

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AljazOblonsek/portfolio/internal/config"
	"github.com/AljazOblonsek/portfolio/internal/util/compression"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestID tags every request with a uuid, attaches it to the request
// context logger and logs the request once it completes.
func withRequestID(l zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set(config.HRequestID, requestID)

		reqLogger := l.With().Str("request_id", requestID).Logger()
		r = r.WithContext(reqLogger.WithContext(r.Context()))

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		reqLogger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

type bufferedResponse struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(status int) { b.status = status }

func (b *bufferedResponse) Write(p []byte) (int, error) { return b.body.Write(p) }

// withCompression buffers the response and compresses it with the best
// encoding the client accepts. Zstd is preferred over gzip.
func withCompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get(config.HAcceptEncoding)

		var comp compression.Compressor
		switch {
		case strings.Contains(accept, "zstd"):
			comp = compression.ZstdCompressor{}
		case strings.Contains(accept, "gzip"):
			comp = compression.GzipCompressor{}
		default:
			next.ServeHTTP(w, r)
			return
		}

		buf := &bufferedResponse{header: make(http.Header), status: http.StatusOK}
		next.ServeHTTP(buf, r)

		for k, v := range buf.header {
			w.Header()[k] = v
		}

		compressed, err := comp.Compress(buf.body.Bytes())
		if err != nil || len(compressed) >= buf.body.Len() {
			w.WriteHeader(buf.status)
			w.Write(buf.body.Bytes())
			return
		}

		w.Header().Set(config.HContentEncoding, comp.Encoding())
		w.Header().Del("Content-Length")
		w.WriteHeader(buf.status)
		w.Write(compressed)
	})
}
