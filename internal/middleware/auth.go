package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"cosmos-server/internal/auth"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

type contextKey string

const UserContextKey contextKey = "user"

// TokenValidator is satisfied by *auth.Tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// JWTMiddleware requires a valid "Authorization: Bearer <token>" header.
func JWTMiddleware(tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)
			logger.Debug("Processing JWT authentication")

			token, ok := bearerToken(r)
			if !ok {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				response.ErrorWithMessage(w, r, logger, errors.WrapUnauthorized("invalid token", err), "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, claims)
			logger.Debug("JWT authentication successful", "subject", claims.Subject)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func GetUserFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(UserContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
