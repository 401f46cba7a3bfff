// Package server implements the HTTP API exposing extracted feeds, bills, members and committees.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/legiscope/pkg/config"
	"github.com/umputun/legiscope/pkg/content"
	"github.com/umputun/legiscope/pkg/domain"
	"github.com/umputun/legiscope/pkg/feed"
	"github.com/umputun/legiscope/pkg/health"
	"github.com/umputun/legiscope/pkg/member"
	"github.com/umputun/legiscope/pkg/source"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/cache_stats.go -pkg mocks -skip-ensure -fmt goimports . CacheStats

// Server represents HTTP server instance
type Server struct {
	config     ConfigProvider
	fetcher    Fetcher
	summarizer Summarizer
	cacheStats CacheStats
	urls       source.URLs
	strategy   member.Strategy
	generator  *feed.Generator
	version    string
	debug      bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetSourceConfig() config.SourceConfig
	GetMembersStrategy() string
	GetPublicURL() string
}

// Fetcher retrieves source documents
type Fetcher interface {
	Fetch(ctx context.Context, url string, kind domain.DocumentKind) (domain.Document, error)
}

// Summarizer extracts summary text from a bill digest
type Summarizer interface {
	Extract(body, pageURL string) (string, error)
}

// CacheStats reports cached documents per kind
type CacheStats interface {
	Stats(ctx context.Context) (map[domain.DocumentKind]int, error)
}

// Params holds optional server dependencies
type Params struct {
	Summarizer Summarizer // bill digests are not summarized if nil
	CacheStats CacheStats // no cache info in status if nil
	Version    string
	Debug      bool
}

// New initializes a new server instance. Unknown member strategy in config falls back to the block strategy.
func New(cfg ConfigProvider, fetcher Fetcher, params Params) *Server {
	sc := cfg.GetSourceConfig()
	strategy, err := member.ParseStrategy(cfg.GetMembersStrategy())
	if err != nil {
		lgr.Printf("[WARN] %v, using %s", err, strategy)
	}

	s := &Server{
		config:     cfg,
		fetcher:    fetcher,
		summarizer: params.Summarizer,
		cacheStats: params.CacheStats,
		urls:       source.NewURLs(sc.BaseURL, sc.WebServicesURL, sc.SessionYear),
		strategy:   strategy,
		generator:  feed.NewGenerator(cfg.GetPublicURL()),
		version:    params.Version,
		debug:      params.Debug,
		router:     routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("legiscope", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /bills", s.billsHandler)
		r.HandleFunc("GET /bill-detail", s.billDetailHandler)
		r.HandleFunc("GET /members", s.membersHandler)
		r.HandleFunc("GET /committees", s.committeesHandler)
	})

	s.router.HandleFunc("GET /rss/{topic}", s.rssHandler)
}

// statusHandler returns server status with cached document counts
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	keywords := map[string]any{"version": health.KeywordsVersion, "count": len(health.Keywords())}
	status := map[string]any{
		"success":         true,
		"status":          "ok",
		"version":         s.version,
		"time":            time.Now().UTC(),
		"session_year":    s.urls.SessionYear,
		"strategy":        s.strategy.String(),
		"health_keywords": keywords,
	}
	if s.cacheStats != nil {
		stats, err := s.cacheStats.Stats(r.Context())
		if err != nil {
			log.Printf("[WARN] failed to get cache stats: %v", err)
		} else {
			status["cache"] = stats
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON, extra fields are merged into the response
func renderError(w http.ResponseWriter, r *http.Request, err error, code int, extra ...map[string]any) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	resp := map[string]any{"success": false, "error": errMsg}
	for _, e := range extra {
		for k, v := range e {
			resp[k] = v
		}
	}
	renderJSON(w, r, code, resp)
}

// fetchedAt formats document fetch time for responses
func fetchedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

var _ Summarizer = (*content.DigestExtractor)(nil)
