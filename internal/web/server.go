// Package web serves the browser front end: an options form, a results page
// and the license page, rendered on the server from one view controller per
// browser session.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/arcanaland/shuffledraw/internal/app"
	"github.com/arcanaland/shuffledraw/internal/draw"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const sessionCookie = "shuffledraw_session"

// Options configures the web front end
type Options struct {
	Drawer      app.Drawer
	DefaultForm draw.Request
	// SessionIdle is how long an unused session is kept
	SessionIdle time.Duration
}

// Handler holds the web front end's dependencies
type Handler struct {
	drawer      app.Drawer
	defaultForm draw.Request
	sessions    *SessionStore
	tmpl        *template.Template
}

// New parses the embedded templates and returns a handler
func New(opts Options) (*Handler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if opts.SessionIdle == 0 {
		opts.SessionIdle = time.Hour
	}
	if opts.DefaultForm.NumCards == 0 {
		opts.DefaultForm = draw.DefaultRequest()
	}

	return &Handler{
		drawer:      opts.Drawer,
		defaultForm: opts.DefaultForm,
		sessions:    NewSessionStore(opts.SessionIdle),
		tmpl:        tmpl,
	}, nil
}

// Routes returns the front end's mux
func (h *Handler) Routes() *http.ServeMux {
	static, _ := fs.Sub(staticFS, "static")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.HandleIndex)
	mux.HandleFunc("POST /draw", h.HandleDraw)
	mux.HandleFunc("POST /reset", h.HandleReset)
	mux.HandleFunc("POST /dismiss", h.HandleDismiss)
	mux.HandleFunc("GET /license", h.HandleLicense)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))
	mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})
	return mux
}

// WithRequestLogging logs every request once it completes
func WithRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("Request handled", "method", r.Method, "path", r.URL.Path,
			"status", rec.status, "duration", time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
