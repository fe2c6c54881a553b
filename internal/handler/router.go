package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"usersvc/internal/pkg/logx"
	"usersvc/internal/pkg/resp"
)

// Router sets up the HTTP routing table. CORS, request ids, request logging and
// panic recovery apply to every route; the identity middleware applies under /api.
func Router(deps *AppDeps) http.Handler {
	r := chi.NewRouter()

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "users",
		})
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(IdentityMiddleware(deps))

		api.Route("/users", func(users chi.Router) {
			users.Get("/test", HandleTest())
			users.Post("/register", HandleRegister(deps))
			users.Post("/login", HandleLogin(deps))
			users.Get("/current", HandleCurrent())
		})
	})

	return r
}
