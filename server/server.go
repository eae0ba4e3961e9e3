package server

import (
	"context"
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

	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/session"
	"github.com/umputun/quickqr/pkg/validate"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/session.go -pkg mocks -skip-ensure -fmt goimports . Session

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	session Session
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Session is the application state the API works with
type Session interface {
	Categories() []session.CategoryState
	Select(id category.ID) error
	Selected() category.ID
	Input(id category.ID) (category.Input, validate.Verdict, error)
	SetInput(id category.ID, in category.Input) (validate.Verdict, error)
	Validate(id category.ID, in category.Input) validate.Verdict
	Generate(ctx context.Context, id category.ID) (*session.Result, error)
	Current() *session.Current
	ExportCurrent() (session.Image, error)
	ExportHistory(id string) (session.Image, error)
	History() []domain.HistoryEntry
	HistorySavedAt(ctx context.Context) (time.Time, error)
	DeleteHistory(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) error
	Settings() domain.Settings
	UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
	Notifications() []domain.Notification
	Reset()
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, sess Session, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		session: sess,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
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
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("quickqr", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // inputs are small
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /categories", s.categoriesHandler)
		r.HandleFunc("GET /categories/{id}/input", s.getInputHandler)
		r.HandleFunc("PUT /categories/{id}/input", s.setInputHandler)
		r.HandleFunc("POST /categories/{id}/validate", s.validateHandler)
		r.HandleFunc("POST /categories/{id}/select", s.selectHandler)
		r.HandleFunc("POST /categories/{id}/generate", s.generateHandler)
		r.HandleFunc("GET /qr.png", s.currentImageHandler)

		r.HandleFunc("GET /history", s.historyHandler)
		r.HandleFunc("DELETE /history", s.clearHistoryHandler)
		r.HandleFunc("DELETE /history/{id}", s.deleteHistoryHandler)
		r.HandleFunc("GET /history/{id}/qr.png", s.historyImageHandler)

		r.HandleFunc("GET /settings", s.getSettingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)

		r.HandleFunc("GET /notifications", s.notificationsHandler)
		r.HandleFunc("POST /reset", s.resetHandler)
	})
}
