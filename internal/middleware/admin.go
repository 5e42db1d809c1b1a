package middleware

import (
	"log/slog"
	"net/http"

	"cosmos-server/internal/auth"
	"cosmos-server/internal/shared/errors"
	"cosmos-server/internal/shared/response"
)

func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With(
			"middleware", "admin",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
		)

		claims := GetUserFromContext(r)
		if claims == nil {
			response.Error(w, r, logger, errors.Unauthorized("authentication required"))
			return
		}

		if claims.Role != auth.RoleAdmin {
			logger.Warn("Non-admin token used on admin endpoint",
				"subject", claims.Subject,
				"role", claims.Role)
			response.Error(w, r, logger, errors.Forbidden("admin access required"))
			return
		}

		logger.Debug("Admin authorization successful", "subject", claims.Subject)
		next.ServeHTTP(w, r)
	})
}

func RequireAdmin(tokens TokenValidator) func(http.Handler) http.Handler {
	authenticate := JWTMiddleware(tokens)
	return func(next http.Handler) http.Handler {
		return authenticate(AdminMiddleware(next))
	}
}
