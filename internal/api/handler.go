// Package api provides the HTTP handlers for the career guide service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/xaenox/career-guide/internal/advisor"
	"github.com/xaenox/career-guide/internal/session"
	"github.com/xaenox/career-guide/web"
	"go.uber.org/zap"
)

// SessionCookie names the cookie carrying the session ID.
const SessionCookie = "cg_session"

type sessionKey struct{}

// Handler serves the advice, history and export endpoints.
type Handler struct {
	sessions *session.Manager
	advisor  advisor.Advisor
	timeout  time.Duration
	logger   *zap.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewHandler creates a Handler with its dependencies.
func NewHandler(sessions *session.Manager, adv advisor.Advisor, timeout time.Duration, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		advisor:  adv,
		timeout:  timeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes assembles the router: global middleware, the JSON API and the
// embedded single-page frontend.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(h.withSession)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/advice", h.handleAdvice)
		r.Get("/history", h.handleHistory)
		r.Get("/history/latest", h.handleLatest)
		r.Get("/export/all/{format}", h.handleBulkExport)
		r.Get("/export/{index}/{format}", h.handleEntryExport)
	})
	r.Handle("/*", web.Handler())
	return r
}

// withSession resolves the session from the cg_session cookie, issuing a
// fresh ID when the cookie is missing or malformed, and stashes the
// session state in the request context.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil {
			if _, parseErr := uuid.Parse(c.Value); parseErr == nil {
				id = c.Value
			}
		}
		if id == "" {
			id = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		st := h.sessions.Get(id)
		ctx := context.WithValue(r.Context(), sessionKey{}, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sessionFrom(r *http.Request) *session.State {
	st, _ := r.Context().Value(sessionKey{}).(*session.State)
	return st
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
