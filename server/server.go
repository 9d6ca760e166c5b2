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

	"github.com/umputun/expravatar/pkg/domain"
	"github.com/umputun/expravatar/pkg/expression"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . SettingsManager
//go:generate moq -out mocks/processor.go -pkg mocks -skip-ensure -fmt goimports . EventProcessor

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	settings  SettingsManager
	processor EventProcessor
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// SettingsManager gives access to live settings and catalog and accepts edits
type SettingsManager interface {
	Settings() domain.Settings
	Catalog() *expression.Catalog
	UpdateSettings(s domain.Settings) domain.Settings
	UpdateCatalog(fn func(c *expression.Catalog) error) (*expression.Catalog, error)
}

// EventProcessor handles host events and stored expressions
type EventProcessor interface {
	Handle(ctx context.Context, ev domain.Event) (*domain.Presentation, error)
	Presentation(ctx context.Context, chatID, messageID string) (*domain.Presentation, error)
	Assignments(ctx context.Context, chatID string) ([]domain.Assignment, error)
	ClearChat(ctx context.Context, chatID string) (int64, error)
	Classify(text string) expression.Result
}

// New initializes a new server instance
func New(cfg ConfigProvider, settings SettingsManager, processor EventProcessor, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		settings:  settings,
		processor: processor,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
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
		ReadHeaderTimeout: timeout,
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
	s.router.Use(rest.AppInfo("expravatar", "umputun", s.version))
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
		r.HandleFunc("POST /classify", s.classifyHandler)

		r.HandleFunc("GET /catalog", s.getCatalogHandler)
		r.HandleFunc("POST /catalog", s.addCategoryHandler)
		r.HandleFunc("PUT /catalog-order", s.reorderHandler)
		r.HandleFunc("PUT /catalog/{name}", s.updateCategoryHandler)
		r.HandleFunc("DELETE /catalog/{name}", s.deleteCategoryHandler)
		r.HandleFunc("POST /catalog/{name}/keywords", s.addKeywordHandler)
		r.HandleFunc("DELETE /catalog/{name}/keywords/{keyword}", s.deleteKeywordHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("POST /events", s.eventHandler)
		r.HandleFunc("GET /chats/{chat}/messages/{id}/presentation", s.presentationHandler)
		r.HandleFunc("GET /chats/{chat}/assignments", s.assignmentsHandler)
		r.HandleFunc("DELETE /chats/{chat}", s.clearChatHandler)
	})
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

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, rest.JSON{"error": errMsg})
}

// decodeJSON reads request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
