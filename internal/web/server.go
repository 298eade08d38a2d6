package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skanda-m/estatedesk/internal/auth"
	"github.com/skanda-m/estatedesk/internal/describe"
	"github.com/skanda-m/estatedesk/internal/service"
)

//go:embed templates static
var assetsFS embed.FS

type Server struct {
	listings  *service.ListingService
	auth      *auth.Service
	describer describe.Generator
	mux       *http.ServeMux
	tmplFuncs template.FuncMap
	logger    *slog.Logger
}

func NewServer(listings *service.ListingService, authSvc *auth.Service, describer describe.Generator, logger *slog.Logger) *Server {
	s := &Server{
		listings:  listings,
		auth:      authSvc,
		describer: describer,
		mux:       http.NewServeMux(),
		logger:    logger,
		tmplFuncs: template.FuncMap{
			"formatPrice": formatPrice,
			"shortID":     shortID,
		},
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})

	s.mux.HandleFunc("GET /sign-in", s.handleSignInPage)
	s.mux.HandleFunc("POST /sign-in", s.handleSignIn)
	s.mux.HandleFunc("GET /sign-up", s.handleSignUpPage)
	s.mux.HandleFunc("POST /sign-up", s.handleSignUp)
	s.mux.HandleFunc("GET /email-verified", s.handleEmailVerified)
	s.mux.HandleFunc("GET /verify-email", s.handleVerifyEmail)
	s.mux.HandleFunc("POST /sign-out", s.handleSignOut)

	s.mux.HandleFunc("GET /dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /dashboard/leads/status-chart.png", s.handleLeadStatusChart)
	s.mux.HandleFunc("GET /dashboard/properties", s.handleListProperties)
	s.mux.HandleFunc("GET /dashboard/properties/new", s.handleNewPropertyPage)
	s.mux.HandleFunc("POST /dashboard/properties/new", s.handleCreateProperty)
	s.mux.HandleFunc("POST /dashboard/properties/describe", s.handleDescribeProperty)
	s.mux.HandleFunc("GET /dashboard/leads", s.handleListLeads)
	s.mux.HandleFunc("GET /dashboard/leads/new", s.handleNewLeadPage)
	s.mux.HandleFunc("POST /dashboard/leads/new", s.handleCreateLead)

	s.mux.Handle("GET /static/", http.FileServerFS(assetsFS))
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self' 'unsafe-inline' https://unpkg.com; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' https: data:; "+
				"connect-src 'self'")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.sessionGuard(s.mux))).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}

// renderPage parses and executes a full-page template set.
func (s *Server) renderPage(w http.ResponseWriter, data any, files ...string) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(assetsFS, files...)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, "base", data)
}

// renderPartial parses and executes a single named partial template.
func (s *Server) renderPartial(w http.ResponseWriter, file, name string, data any) error {
	tmpl, err := template.New("").Funcs(s.tmplFuncs).ParseFS(assetsFS, file)
	if err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return tmpl.ExecuteTemplate(w, name, data)
}

// formatPrice inserts thousands separators: 2500000 -> "2,500,000".
func formatPrice(n int64) string {
	raw := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range raw {
		if i > 0 && d != '-' && (len(raw)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// shortID abbreviates a uuid for card display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
