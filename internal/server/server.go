package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jaehyun-dev/stockfolio-be/internal/auth"
	"github.com/jaehyun-dev/stockfolio-be/internal/config"
	"github.com/jaehyun-dev/stockfolio-be/internal/http/handlers"
	"github.com/jaehyun-dev/stockfolio-be/internal/menu"
	"github.com/jaehyun-dev/stockfolio-be/internal/middleware"
	"github.com/jaehyun-dev/stockfolio-be/internal/service"
	"github.com/jaehyun-dev/stockfolio-be/internal/storage"
)

// Stores bundles the persistence contracts the server depends on. A single
// backing store may satisfy all of them.
type Stores struct {
	Users        storage.UserStore
	Portfolios   storage.PortfolioStore
	Calculations storage.CalculationStore
	Boards       storage.BoardStore
	Menus        storage.MenuStore
	Roles        storage.RoleStore
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up services, middleware, and routes, and returns a ready server.
func New(cfg config.Config, stores Stores, log *logrus.Logger) *Server {
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	portfolios := service.NewPortfolioService(stores.Portfolios, log)
	calculations := service.NewCalculationService(stores.Calculations, log)
	board := service.NewBoardService(stores.Boards, log)
	profiles := service.NewProfileService(stores.Users, log)
	admin := service.NewAdminService(stores.Users, stores.Roles, stores.Menus, log)
	menus := menu.NewResolver(stores.Menus)

	router := mux.NewRouter()
	router.Use(middleware.Metrics)

	handlers.NewHealthHandler(time.Now()).Register(router)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	authHandler := handlers.NewAuthHandler(stores.Users, tokens, log)
	authHandler.Register(api)

	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.Authenticate(tokens, log))

	authHandler.RegisterProtected(protected)
	handlers.NewDashboardHandler(stores.Users, menus, log).Register(protected)
	handlers.NewPortfolioHandler(portfolios, log).Register(protected)
	handlers.NewHistoryHandler(calculations, log).Register(protected)
	handlers.NewBoardHandler(board, log).Register(protected)
	handlers.NewProfileHandler(profiles, log).Register(protected)

	adminRoutes := protected.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.RequireAdmin)
	handlers.NewAdminHandler(admin, log).Register(adminRoutes)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(log, router))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
