package handler

import (
	"net/http"

	"usersvc/internal/app/user"
	"usersvc/internal/pkg/auth/jwt"
	"usersvc/internal/pkg/logx"
)

// IdentityMiddleware resolves the bearer token in the Authorization header to a
// stored user and injects it into the request context. It never rejects a request:
// a missing, malformed, expired or orphaned token leaves the request anonymous.
func IdentityMiddleware(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			token, err := jwt.ExtractBearer(authHeader)
			if err != nil {
				logx.Ctx(r.Context()).Debug().Msg("Authorization header without bearer token, treating as anonymous")
				next.ServeHTTP(w, r)
				return
			}

			u, err := deps.Accounts.Authenticate(r.Context(), token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(user.WithContext(r.Context(), u)))
		})
	}
}
