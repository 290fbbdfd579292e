package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/turfwars/api/internal/turfwar"
)

type ctxKey int

const (
	ctxKeySession ctxKey = iota
	ctxKeySlug
)

// sessionMiddleware resolves {session} to a live game session,
// creating it on first use, and injects it into the request context.
func sessionMiddleware(sessions *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slug := chi.URLParam(r, "session")
			if slug == "" {
				writeError(w, http.StatusNotFound, "session not found")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeySession, sessions.Get(slug))
			ctx = context.WithValue(ctx, ctxKeySlug, slug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFrom(r *http.Request) *turfwar.Session {
	return r.Context().Value(ctxKeySession).(*turfwar.Session)
}

func slugFrom(r *http.Request) string {
	return r.Context().Value(ctxKeySlug).(string)
}
