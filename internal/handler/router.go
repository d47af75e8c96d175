package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"ysocial/internal/pkg/auth/jwt"
	"ysocial/internal/pkg/logx"
	"ysocial/internal/pkg/resp"
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It configures CORS, request logging, metrics and identity extraction before
// delegating to the account and lookup handlers.
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
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(deps.Metrics.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]string{
			"status":  "ok",
			"service": "ysocial",
		})
	})
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Group(func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Tokens))

		api.Route("/sessions", func(sessions chi.Router) {
			sessions.Post("/", HandleLogin(deps))
			sessions.Delete("/", HandleLogout(deps))
		})

		api.Route("/users", func(users chi.Router) {
			users.Post("/", HandleRegister(deps))
			users.Get("/{id}/followers", HandleGetFollowers(deps))
			users.Get("/{id}/posts", HandleGetPosts(deps))
			users.Get("/{id}/posts/{date}", HandleGetPostsByDate(deps))
		})

		api.Route("/me/avatar", func(avatar chi.Router) {
			avatar.Post("/", HandlePresignAvatarURL(deps))
			avatar.Put("/", HandleConfirmAvatar(deps))
		})
	})

	return r
}
