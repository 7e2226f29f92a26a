package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Shivanand-hulikatti/activity-signup/internal/view"
)

// Logger writes one access-log line per request.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Printf("%s %s %d %s req=%s",
			r.Method, r.URL.Path, ww.Status(), time.Since(start).Round(time.Microsecond),
			chimiddleware.GetReqID(r.Context()))
	})
}

// NewRouter builds the portal's router. metrics may be nil.
func NewRouter(h *ActivityHandler, metrics http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger)

	r.Get("/health", HealthCheck)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	r.Get("/", h.Index)
	r.Post("/signup", h.Signup)
	r.Get("/unregister", h.ConfirmUnregister)
	r.Post("/unregister", h.Unregister)

	r.Handle("/static/*", http.StripPrefix("/static/", view.Static()))

	return r
}
