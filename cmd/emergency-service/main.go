package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"

	apihttp "github.com/kunal9812/In-Hand-FIrst-Aid/internal/api/http"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/config"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/platform/factory"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/platform/logger"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/services"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
)

func main() {
	dbDriver := flag.String("db-driver", "", "Override DB_DRIVER (mongo, postgres)")
	flag.Parse()

	log := logger.New("emergency-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *dbDriver != "" {
		cfg.DBDriver = *dbDriver
		if err := cfg.Validate(); err != nil {
			log.Fatal().Err(err).Msg("Invalid db-driver override")
		}
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Emergency response service starting…")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Store unavailable")
	}

	// Seed the instruction catalog before serving any reads. Safe to run
	// on every start; a failure here means the service cannot answer its
	// primary queries, so exit loudly.
	bootstrapCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.BootstrapTimeoutSeconds)*time.Second)
	if err := services.NewInstructionService(st).Bootstrap(bootstrapCtx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Instruction catalog bootstrap failed")
	}
	cancel()
	log.Info().Msg("Emergency instructions initialized")

	healthChecker := store.NewHealthChecker(st, log, time.Duration(cfg.HealthProbeTimeoutSeconds)*time.Second)
	go healthChecker.Start(ctx, time.Duration(cfg.HealthIntervalSeconds)*time.Second)

	router := apihttp.NewRouter(st, healthChecker)

	// Clients are browsers and mobile apps on arbitrary origins.
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      cors(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("Shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}
	log.Info().Msg("Server exited")
}
