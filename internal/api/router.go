package api

import (
	"log/slog"
	"net/http"
	"time"

	"natrix-bank/internal/api/handler"
	mw "natrix-bank/internal/api/middleware"
	"natrix-bank/internal/config"
	"natrix-bank/internal/domain/account"
	"natrix-bank/internal/domain/card"
	"natrix-bank/internal/domain/loan"

	_ "natrix-bank/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupAccountsRouter wires the accounts service surface: the record
// CRUD routes plus the shared health/metrics/swagger/info endpoints.
func SetupAccountsRouter(accountService account.AccountService, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := newBaseRouter("accounts", redisClient, cfg, logger)

	h := handler.NewAccountHandler(accountService, logger)
	router.Route("/api/accounts", func(r chi.Router) {
		r.Post("/create", h.CreateAccount)
		r.Get("/fetch", h.FetchAccount)
		r.Put("/update", h.UpdateAccount)
		r.Delete("/delete", h.DeleteAccount)
		mountInfoRoutes(r, cfg)
	})

	return router
}

func SetupCardsRouter(cardService card.CardService, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := newBaseRouter("cards", redisClient, cfg, logger)

	h := handler.NewCardHandler(cardService, logger)
	router.Route("/api/cards", func(r chi.Router) {
		r.Post("/create", h.CreateCard)
		r.Get("/fetch", h.FetchCard)
		r.Put("/update", h.UpdateCard)
		r.Delete("/delete", h.DeleteCard)
		mountInfoRoutes(r, cfg)
	})

	return router
}

func SetupLoansRouter(loanService loan.LoanService, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := newBaseRouter("loans", redisClient, cfg, logger)

	h := handler.NewLoanHandler(loanService, logger)
	router.Route("/api/loans", func(r chi.Router) {
		r.Post("/create", h.CreateLoan)
		r.Get("/fetch", h.FetchLoan)
		r.Put("/update", h.UpdateLoan)
		r.Delete("/delete", h.DeleteLoan)
		mountInfoRoutes(r, cfg)
	})

	return router
}

func newBaseRouter(service string, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, service, redisClient, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, service string, redisClient *redis.Client, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, redisClient, logger).Middleware)
	router.Use(mw.MetricsMiddleware(service))
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func mountInfoRoutes(r chi.Router, cfg *config.Config) {
	h := handler.NewInfoHandler(cfg.Build)
	r.Get("/build-info", h.BuildInfo)
	r.Get("/contact-info", h.ContactInfo)
}
