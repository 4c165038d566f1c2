package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andrecahu/desafio-pitang-api/internal/config"
	"github.com/andrecahu/desafio-pitang-api/internal/handler"
	"github.com/andrecahu/desafio-pitang-api/internal/metrics"
	"github.com/andrecahu/desafio-pitang-api/internal/middleware"
)

// PublicRoutes is the allow-list of routes reachable without a token:
// sign-in and registration.
var PublicRoutes = []middleware.PublicRoute{
	{Method: http.MethodPost, Path: "/signin"},
	{Method: http.MethodPost, Path: "/users"},
}

func New(
	cfg *config.Config,
	authenticator *middleware.Authenticator,
	collector *metrics.Collector,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	carHandler *handler.CarHandler,
	health http.HandlerFunc,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(collector.Middleware)

	r.Get("/health", health)
	r.Method(http.MethodGet, "/metrics", collector.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(authenticator.Handler)

		api.Post("/signin", authHandler.SignIn)
		api.Post("/users", userHandler.Register)
		api.Get("/me", userHandler.Me)

		api.Route("/cars", func(cars chi.Router) {
			cars.Post("/", carHandler.Create)
			cars.Get("/", carHandler.List)
			cars.Get("/{id}", carHandler.Get)
			cars.Put("/{id}", carHandler.Update)
			cars.Delete("/{id}", carHandler.Delete)
		})
	})

	return r
}
