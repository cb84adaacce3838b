package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"github.com/microcosm-cc/bluemonday"

	"github.com/keisuke-yamauch1/group-feeder/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/previewer.go -pkg mocks -skip-ensure -fmt goimports . Previewer

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	scheduler Scheduler
	previewer Previewer
	sanitizer *bluemonday.Policy
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	GetFeeds(ctx context.Context) ([]domain.Feed, error)
	UpsertFeed(ctx context.Context, url, title, description string) (*domain.Feed, bool, error)
	DeleteFeed(ctx context.Context, id int64) error

	GetArticles(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	SetReadState(ctx context.Context, articleIDs []int64, read bool) error
	UnreadCount(ctx context.Context) (int, error)

	CreateGroup(ctx context.Context, group *domain.Group) error
	GetGroups(ctx context.Context) ([]domain.Group, error)
	RenameGroup(ctx context.Context, id int64, name string) error
	DeleteGroup(ctx context.Context, id int64) error
	AddFeedsToGroup(ctx context.Context, groupID int64, feedIDs []int64) error
	RemoveFeedFromGroup(ctx context.Context, groupID, feedID int64) error
	GetGroupFeeds(ctx context.Context, groupID int64) ([]domain.Feed, error)
}

// Scheduler interface for on-demand batch operations
type Scheduler interface {
	RunOnce(ctx context.Context) (*domain.BatchSummary, error)
}

// Previewer fetches and parses a feed URL to derive its metadata
type Previewer interface {
	Preview(ctx context.Context, feedURL string) (title, description string, err error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, scheduler Scheduler, previewer Previewer, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		db:        db,
		scheduler: scheduler,
		previewer: previewer,
		sanitizer: bluemonday.UGCPolicy(),
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
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("group-feeder", "keisuke-yamauch1", s.version))
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

		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("POST /feeds", s.createFeedHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)
		r.HandleFunc("POST /feeds/refresh", s.refreshHandler)

		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("POST /read-status", s.readStatusHandler)
		r.HandleFunc("GET /unread-count", s.unreadCountHandler)

		r.HandleFunc("GET /groups", s.listGroupsHandler)
		r.HandleFunc("POST /groups", s.createGroupHandler)
		r.HandleFunc("PUT /groups/{id}", s.renameGroupHandler)
		r.HandleFunc("DELETE /groups/{id}", s.deleteGroupHandler)
		r.HandleFunc("GET /groups/{id}/feeds", s.groupFeedsHandler)
		r.HandleFunc("POST /groups/{id}/feeds", s.addGroupFeedsHandler)
		r.HandleFunc("DELETE /groups/{id}/feeds/{feedID}", s.removeGroupFeedHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}
