package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/siawash1991/my-website/internal/config"
	pgRepo "github.com/siawash1991/my-website/internal/infra/adapter/persistence/postgres"
	"github.com/siawash1991/my-website/internal/infra/db"
	"github.com/siawash1991/my-website/internal/observability/logging"
	"github.com/siawash1991/my-website/internal/observability/tracing"
	"github.com/siawash1991/my-website/internal/resilience/circuitbreaker"

	podcastUC "github.com/siawash1991/my-website/internal/usecase/podcast"
	postUC "github.com/siawash1991/my-website/internal/usecase/post"
	startupUC "github.com/siawash1991/my-website/internal/usecase/startup"

	hhttp "github.com/siawash1991/my-website/internal/handler/http"
	hauth "github.com/siawash1991/my-website/internal/handler/http/auth"
	hpodcast "github.com/siawash1991/my-website/internal/handler/http/podcast"
	hpost "github.com/siawash1991/my-website/internal/handler/http/post"
	"github.com/siawash1991/my-website/internal/handler/http/requestid"
	hstartup "github.com/siawash1991/my-website/internal/handler/http/startup"
	authservice "github.com/siawash1991/my-website/internal/service/auth"

	_ "github.com/siawash1991/my-website/docs" // swagger docs
)

// @title           My Website API
// @version         1.0
// @description     Bilingual (English/Farsi) content API for the personal portfolio site.
// @description     مدیریت پست‌ها، اپیزودهای پادکست و پروفایل استارتاپ‌ها.

// @contact.name   Siawash
// @contact.url    https://github.com/siawash1991/my-website

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Session cookie issued by /api/login.

func main() {
	logger := initLogger()

	securityCfg, err := config.LoadSecurityConfig(securityConfigPath())
	if err != nil {
		logger.Error("failed to load security configuration", slog.Any("error", err))
		os.Exit(1)
	}

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	components := setupServer(logger, database, securityCfg, version)

	runServer(logger, components, version)
}

func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

func securityConfigPath() string {
	if path := os.Getenv("SECURITY_CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/security.yaml"
}

// initDatabase opens the connection pool and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// ServerComponents holds everything runServer needs to serve and shut down.
type ServerComponents struct {
	Handler http.Handler
	Cron    *cron.Cron
}

// setupServer wires repositories, services, routes and the background jobs.
func setupServer(logger *slog.Logger, database *sql.DB, securityCfg *config.SecurityConfig, version string) *ServerComponents {
	// Queries run through the circuit breaker so a dying database sheds
	// load fast instead of piling up timeouts.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	postSvc := &postUC.Service{Repo: pgRepo.NewPostRepo(breaker)}
	podcastSvc := &podcastUC.Service{Repo: pgRepo.NewPodcastRepo(breaker)}
	startupSvc := &startupUC.Service{Repo: pgRepo.NewStartupRepo(breaker)}

	authSvc := &authservice.Service{
		Users:             pgRepo.NewUserRepo(breaker),
		Sessions:          pgRepo.NewSessionRepo(breaker),
		MinPasswordLength: securityCfg.MinPasswordLength(),
		WeakPasswords:     securityCfg.WeakPasswords(),
		SessionTTL:        securityCfg.SessionTTL(),
		BcryptCost:        securityCfg.BcryptCost(),
	}

	cookie := hauth.CookieConfig{
		Name:   securityCfg.CookieName(),
		TTL:    securityCfg.SessionTTL(),
		Secure: securityCfg.CookieSecure(),
	}
	gate := &hauth.Gate{Auth: authSvc, CookieName: cookie.Name, Logger: logger}

	// محدودیت تلاش ورود: پنج درخواست در دقیقه برای هر IP
	loginLimiter := hauth.NewLoginLimiter(5, 5)

	mux := http.NewServeMux()

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler())
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	hauth.Register(mux, authSvc, gate, cookie, loginLimiter, logger)
	hpost.Register(mux, postSvc, gate.Require, logger)
	hpodcast.Register(mux, podcastSvc, gate.Require, logger)
	hstartup.Register(mux, startupSvc, gate.Require, logger)

	handler := applyMiddleware(logger, mux)
	jobs := setupCron(logger, authSvc, postSvc, podcastSvc, startupSvc)

	return &ServerComponents{Handler: handler, Cron: jobs}
}

// applyMiddleware wraps the mux with the shared middleware chain.
// Order, outermost first: request ID, tracing, recovery, logging,
// body limit, timeout, security headers, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	chain := handler

	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.SecurityHeaders(hhttp.DefaultSecurityHeadersConfig())(chain)
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// setupCron schedules the session pruning job and the periodic refresh of
// the content gauges.
func setupCron(
	logger *slog.Logger,
	authSvc *authservice.Service,
	postSvc *postUC.Service,
	podcastSvc *podcastUC.Service,
	startupSvc *startupUC.Service,
) *cron.Cron {
	jobs := cron.New()

	_, err := jobs.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pruned, err := authSvc.PruneSessions(ctx)
		if err != nil {
			logger.Error("session pruning failed", slog.Any("error", err))
			return
		}
		hauth.RecordSessionsPruned(pruned)
		if pruned > 0 {
			logger.Info("expired sessions pruned", slog.Int64("count", pruned))
		}
	})
	if err != nil {
		logger.Error("failed to schedule session pruning", slog.Any("error", err))
		os.Exit(1)
	}

	_, err = jobs.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if count, err := postSvc.Count(ctx); err == nil {
			hhttp.UpdatePostsTotal(int(count))
		}
		if count, err := podcastSvc.Count(ctx); err == nil {
			hhttp.UpdatePodcastsTotal(int(count))
		}
		if count, err := startupSvc.Count(ctx); err == nil {
			hhttp.UpdateStartupsTotal(int(count))
		}
	})
	if err != nil {
		logger.Error("failed to schedule metrics refresh", slog.Any("error", err))
		os.Exit(1)
	}

	return jobs
}

// runServer starts the HTTP server and cron jobs, then blocks until a
// shutdown signal arrives.
func runServer(logger *slog.Logger, components *ServerComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	components.Cron.Start()

	addr := ":" + port()
	srv := &http.Server{
		Addr:              addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Slowloris protection
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cronCtx := components.Cron.Stop()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	// let any in-flight cron job finish before the pool closes
	select {
	case <-cronCtx.Done():
	case <-time.After(5 * time.Second):
		logger.Warn("cron jobs did not finish before shutdown deadline")
	}

	logger.Info("server stopped")
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
