// Package http serves the three views of the tracker (daily entry, weekly
// breakdown, monthly charts) as server-rendered pages with htmx partials,
// plus a small JSON API for tooling.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/rs/cors"

	"github.com/snehilworks/finance-expense/internal/aggregate"
	"github.com/snehilworks/finance-expense/internal/cache"
	"github.com/snehilworks/finance-expense/internal/catalog"
	"github.com/snehilworks/finance-expense/internal/config"
	"github.com/snehilworks/finance-expense/internal/middleware/ratelimit"
	"github.com/snehilworks/finance-expense/internal/middleware/security"
	"github.com/snehilworks/finance-expense/internal/middleware/trace"
	"github.com/snehilworks/finance-expense/internal/service"
	appweb "github.com/snehilworks/finance-expense/web"
)

type Server struct {
	http.Server

	templates *template.Template
	svc       *service.ExpenseService
	catalog   *catalog.Catalog

	limiter *ratelimit.Limiter
	headers *security.HeadersMiddleware
	tracer  *trace.Middleware

	// Weekly and monthly views are pure functions of the stored collection
	// and the window, so they cache well; any mutation purges both.
	weekCache  *cache.LRU[aggregate.WeekSummary]
	monthCache *cache.LRU[aggregate.MonthSummary]
	caches     *cache.Manager

	shutdownOnce sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run
// http.Server.
func NewServer(addr string, svc *service.ExpenseService, cat *catalog.Catalog, cfg *config.Config) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		svc:     svc,
		catalog: cat,
		limiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RequestsPerMinute,
		}),
		headers:    security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
		tracer:     trace.NewMiddleware(clientIP),
		weekCache:  cache.NewLRU[aggregate.WeekSummary](cfg.CacheSize, cfg.CacheTTL),
		monthCache: cache.NewLRU[aggregate.MonthSummary](cfg.CacheSize, cfg.CacheTTL),
		caches:     cache.NewManager(),
	}

	s.caches.Register(s.weekCache)
	s.caches.Register(s.monthCache)
	s.caches.StartCleanup(10 * time.Minute)

	t, err := template.New("").Funcs(templateFuncs()).ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))
	}

	// Pages
	mux.HandleFunc("/", s.handleDailyPage)
	mux.HandleFunc("/weekly", s.handleWeeklyPage)
	mux.HandleFunc("/monthly", s.handleMonthlyPage)

	// htmx partials
	mux.HandleFunc("/ui/day", s.handleDayPanel)
	mux.HandleFunc("/ui/week", s.handleWeekPanel)
	mux.HandleFunc("/ui/month", s.handleMonthPanel)

	// Mutations
	mux.HandleFunc("/expenses", s.withRateLimit(s.handleCreateExpense))
	mux.HandleFunc("/expenses/delete", s.withRateLimit(s.handleDeleteExpense))
	mux.HandleFunc("/expenses/clear", s.withRateLimit(s.handleClearExpenses))

	// JSON API for non-browser clients
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})
	mux.Handle("/api/", c.Handler(s.apiMux()))

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	s.Server.Handler = s.tracer.Wrap(s.headers.Wrap(mux))
	return s
}

// Shutdown gracefully shuts down the server and its background routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.caches.Stop()
		s.limiter.Stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// invalidateViews drops every cached aggregation after a mutation.
func (s *Server) invalidateViews() {
	s.weekCache.Purge()
	s.monthCache.Purge()
}

func (s *Server) withRateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow(clientIP(r)) {
			slog.WarnContext(r.Context(), "Rate limit exceeded", "client_ip", clientIP(r), "path", r.URL.Path)
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
