package rest

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type Middleware func(http.Handler) http.Handler

// Chain applies mws so that the first one is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// RequestID keeps an incoming X-Request-ID or assigns a fresh one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[http] %s %s %s -> %d (%s)",
			r.Header.Get(requestIDHeader), r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type compressWriter struct {
	http.ResponseWriter
	w io.Writer
}

func (c *compressWriter) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

// Compress encodes responses with br or gzip when the client asks for it.
func Compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept-Encoding") == "" {
			next.ServeHTTP(w, r)
			return
		}
		cw := brotli.HTTPCompressor(w, r)
		defer cw.Close()
		next.ServeHTTP(&compressWriter{ResponseWriter: w, w: cw}, r)
	})
}

func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	return Chain(mux, RequestID, Logging, Compress)
}
