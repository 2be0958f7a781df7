package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"expense-api/internal/config"
	"expense-api/internal/database"
	"expense-api/internal/handlers"
	"expense-api/internal/middleware"
	"expense-api/internal/repositories"
	"expense-api/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	bodyLimit = "1M"

	// apiPrefix scopes the API key gate. Everything below it needs a key,
	// routed or not.
	apiPrefix = "/api"
)

// Route is a single entry of the route table.
type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
}

// Handlers groups the request handlers the route table dispatches to.
type Handlers struct {
	Expense *handlers.ExpenseHandler
	Health  *handlers.HealthCheckHandler
	Docs    *handlers.DocsHandler
}

// Routes returns the full route table. It is resolved once when the server is built.
func Routes(h *Handlers, metrics config.MetricsConfig) []Route {
	routes := []Route{
		{Method: http.MethodGet, Path: apiPrefix + "/expenses", Handler: h.Expense.ListExpenses},
		{Method: http.MethodPost, Path: apiPrefix + "/expenses", Handler: h.Expense.CreateExpense},
		{Method: http.MethodGet, Path: apiPrefix + "/expenses/:id", Handler: h.Expense.GetExpense},
		{Method: http.MethodDelete, Path: apiPrefix + "/expenses/:id", Handler: h.Expense.DeleteExpense},
		{Method: http.MethodGet, Path: "/health", Handler: h.Health.HealthCheck},
		{Method: http.MethodGet, Path: "/docs", Handler: h.Docs.ServeScalarUI},
		{Method: http.MethodGet, Path: "/docs/openapi.json", Handler: h.Docs.ServeOpenAPIJSON},
	}

	if metrics.Enabled {
		routes = append(routes, Route{
			Method:  http.MethodGet,
			Path:    metrics.Path,
			Handler: echo.WrapHandler(promhttp.Handler()),
		})
	}

	return routes
}

// Server owns the echo instance and the HTTP lifecycle.
type Server struct {
	echo   *echo.Echo
	cfg    *config.Config
	logger *slog.Logger
}

// New wires repositories, services and handlers over db and registers the
// route table with the middleware chain.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	apiKeyRepo := repositories.NewAPIKeyRepository(db.DB)

	expenseLogger := services.NewExpenseLogger(logger)
	metrics := services.NewPrometheusMetrics()

	expenseService := services.NewExpenseService(expenseRepo, expenseLogger, metrics)
	apiKeyService := services.NewAPIKeyService(apiKeyRepo, expenseLogger, &cfg.Security)

	h := &Handlers{
		Expense: handlers.NewExpenseHandler(expenseService, expenseLogger),
		Health:  handlers.NewHealthCheckHandler(db, expenseRepo, metrics),
		Docs:    handlers.NewDocsHandler(),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Pre(echomw.RemoveTrailingSlash())

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.RequestMetrics(cfg.Metrics.Path))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(middleware.RequireAPIKeyUnder(apiPrefix, middleware.RequireAPIKey(apiKeyService, expenseLogger, metrics)))

	for _, r := range Routes(h, cfg.Metrics) {
		e.Add(r.Method, r.Path, r.Handler)
	}

	return &Server{echo: e, cfg: cfg, logger: logger}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address and blocks until the server stops.
// A graceful Shutdown makes Start return nil.
func (s *Server) Start() error {
	srv := s.echo.Server
	srv.ReadTimeout = s.cfg.Server.ReadTimeout
	srv.ReadHeaderTimeout = s.cfg.Server.ReadTimeout
	srv.WriteTimeout = s.cfg.Server.WriteTimeout
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	address := s.cfg.Server.Address()
	s.logger.Info("starting expense api", "address", address, "environment", s.cfg.Server.Environment)

	if err := s.echo.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
