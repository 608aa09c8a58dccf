package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/heartmarshall/dealflow-backend/internal/auth"
	"github.com/heartmarshall/dealflow-backend/internal/domain"
	"github.com/heartmarshall/dealflow-backend/internal/service/team"
	"github.com/heartmarshall/dealflow-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
}

type identityResolver interface {
	Resolve(ctx context.Context, id team.Identity) (*domain.Profile, error)
}

// Auth verifies the bearer token and resolves the caller's profile. Requests
// without a token pass through anonymously; RequireAuth rejects them where
// needed. A verified caller without a profile keeps its token subject but no
// role, so role-gated routes deny it.
func Auth(validator tokenValidator, resolver identityResolver, log *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			profile, err := resolver.Resolve(r.Context(), team.Identity{
				Subject:   claims.Subject,
				Email:     claims.Email,
				Name:      claims.Name,
				AvatarURL: claims.AvatarURL,
			})
			var ctx context.Context
			switch {
			case err == nil:
				ctx = ctxutil.WithIdentity(r.Context(), profile.ID, profile.Email, string(profile.Role))
			case errors.Is(err, domain.ErrNotFound):
				ctx = ctxutil.WithIdentity(r.Context(), claims.Subject, claims.Email, "")
			default:
				log.ErrorContext(r.Context(), "resolve identity", slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			uid, _ := ctxutil.UserIDFromCtx(ctx)
			annotateUser(w, uid.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects callers whose resolved role is not one of roles.
// Anonymous callers get 401, everyone else 403.
func RequireRole(roles ...domain.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !slices.Contains(roles, domain.Role(ctxutil.RoleFromCtx(r.Context()))) {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
