package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/zenora/zenora-api/internal/config"
	"github.com/zenora/zenora-api/internal/domain/admin"
	"github.com/zenora/zenora-api/internal/domain/booking"
	"github.com/zenora/zenora-api/internal/domain/contact"
	"github.com/zenora/zenora-api/internal/domain/content"
	"github.com/zenora/zenora-api/internal/domain/wizard"
	"github.com/zenora/zenora-api/internal/middleware"
	"github.com/zenora/zenora-api/internal/pkg/bookingclient"
	"github.com/zenora/zenora-api/internal/pkg/database"
	"github.com/zenora/zenora-api/internal/pkg/email"
	"github.com/zenora/zenora-api/internal/pkg/idempotency"
	"github.com/zenora/zenora-api/internal/pkg/jwt"
	"github.com/zenora/zenora-api/internal/pkg/logger"
	"github.com/zenora/zenora-api/internal/pkg/metrics"
	pkgresponse "github.com/zenora/zenora-api/internal/pkg/response"
)

const version = "1.0.0"

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env, LogFile: cfg.LogFile})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Zenora API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	emailService := email.NewService(email.NewSender(email.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
	}))
	defer emailService.Close()

	location := cfg.Location()

	// ---------- Services ----------
	bookingService := booking.NewService(
		booking.NewRepository(db),
		idempotency.New(redis),
		emailService,
		appMetrics,
		booking.Config{
			Location:    location,
			WindowDays:  cfg.BookingWindowDays,
			StudioInbox: cfg.StudioInbox,
		},
	)
	contactService := contact.NewService(contact.NewRepository(db), emailService, appMetrics, cfg.StudioInbox)

	submitter := newSubmitter(cfg, bookingService)
	sessions := wizard.NewSessionStore(cfg.WizardSessionTTL, func() *wizard.Controller {
		return wizard.NewController(wizard.New(wizard.Options{
			Submitter:     submitter,
			SubmitTimeout: cfg.BookingSubmitTimeout,
			WindowDays:    cfg.BookingWindowDays,
			Location:      location,
			Metrics:       appMetrics,
		}))
	}, appMetrics)
	sessions.Start()
	defer sessions.Close()

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AdminTokenTTL)
	adminService := admin.NewService(cfg.AdminEmail, cfg.AdminPasswordHash, jwtService)

	// ---------- Handlers ----------
	r := newRouter(routerDeps{
		allowedOrigins: cfg.AllowedOrigins,
		intake:         middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst).Handler,
		jwt:            jwtService,
		bookings:       booking.NewHandler(bookingService),
		contact:        contact.NewHandler(contactService),
		wizard:         wizard.NewHandler(sessions),
		content:        content.NewHandler(content.DefaultPage(cfg.BookingWindowDays)),
		admin:          admin.NewHandler(adminService),
		metrics:        promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.BookingSubmitTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newSubmitter picks where wizard submissions go: a remote intake when
// BOOKING_API_URL is set, the fixed-delay mock when WIZARD_MOCK_DELAY is set,
// otherwise the local booking service.
func newSubmitter(cfg *config.Config, bookings *booking.Service) wizard.Submitter {
	switch {
	case cfg.BookingAPIURL != "":
		log.Info().Str("url", cfg.BookingAPIURL).Msg("Wizard submits to remote booking intake")
		return wizard.ClientSubmitter{
			Client: bookingclient.NewClient(cfg.BookingAPIURL, cfg.BookingSubmitTimeout, "zenora-api/"+version),
		}
	case cfg.WizardMockDelay > 0:
		log.Warn().Dur("delay", cfg.WizardMockDelay).Msg("Wizard submissions are mocked")
		return wizard.DelaySubmitter{Delay: cfg.WizardMockDelay}
	default:
		return wizard.ServiceSubmitter{Bookings: bookings}
	}
}

type routerDeps struct {
	allowedOrigins []string
	intake         func(http.Handler) http.Handler
	jwt            *jwt.Service

	bookings *booking.Handler
	contact  *contact.Handler
	wizard   *wizard.Handler
	content  *content.Handler
	admin    *admin.Handler
	metrics  http.Handler
}

func newRouter(d routerDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(d.allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	if d.metrics != nil {
		r.Handle("/metrics", d.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			pkgresponse.OK(w, map[string]string{"message": "pong"})
		})

		r.Mount("/bookings", d.bookings.PublicRoutes(d.intake))
		r.Mount("/contact", d.contact.PublicRoutes(d.intake))
		r.Mount("/wizard/sessions", d.wizard.Routes(d.intake))
		r.Mount("/content", d.content.Routes())
	})

	r.Mount("/api/admin", d.admin.Routes(d.jwt,
		admin.Section{Path: "/bookings", Routes: d.bookings.AdminRoutes},
		admin.Section{Path: "/contact-messages", Routes: d.contact.AdminRoutes},
	))

	return r
}
