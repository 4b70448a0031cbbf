/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. RequestID:  Unique ID per request for tracing
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. requestLogger: Structured request logging via zap
  4. CORS:       Cross-origin requests for the frontend

SECURITY NOTE:
  No authentication middleware. Identity delegation happens upstream; the
  crew member id travels in the path.
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Per-crew-member routes
		r.Route("/crew/{id}", func(r chi.Router) {
			r.Get("/candidates", h.ListCandidates)
			r.Get("/overtime", h.ListOvertime)
			r.Post("/overtime", h.SubmitOvertime)
			r.Get("/expenses", h.ListExpenses)
			r.Post("/expenses", h.SubmitExpense)
			r.Get("/schedule", h.ListSchedule)
			r.Get("/calendar", h.Calendar)
			r.Get("/notifications", h.ListNotifications)
		})

		// Overtime review
		r.Route("/overtime/{id}", func(r chi.Router) {
			r.Put("/", h.EditOvertime)
			r.Post("/approve", h.ApproveOvertime)
			r.Post("/reject", h.RejectOvertime)
		})

		// Expense review
		r.Route("/expenses/{id}", func(r chi.Router) {
			r.Post("/approve", h.ApproveExpense)
			r.Post("/reject", h.RejectExpense)
		})

		// Receipts
		r.Get("/receipts/*", h.GetReceipt)

		// Schedule management
		r.Route("/schedule", func(r chi.Router) {
			r.Post("/", h.CreateItem)
			r.Post("/{id}/checkin", h.CheckIn)
			r.Post("/{id}/checkout", h.CheckOut)
		})

		// Notifications
		r.Post("/notifications/{id}/read", h.MarkNotificationRead)
	})

	return r
}

// requestLogger logs one line per request with method, path, status and
// latency.
func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
