package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/abank-demo/abank-be/internal/api"
	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/abank-demo/abank-be/internal/config"
	"github.com/abank-demo/abank-be/internal/events"
	"github.com/abank-demo/abank-be/internal/events/kafka"
	"github.com/abank-demo/abank-be/internal/logger"
	"github.com/abank-demo/abank-be/internal/monitoring"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.Env)

	// Set up the account registry and preload the demo accounts. State is
	// in-memory only and rebuilt from these seeds on every start.
	registry := bank.NewRegistry()
	seedDemoAccounts(registry)

	// Transfer events go to Kafka when brokers are configured, nowhere
	// otherwise.
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("Transfer events enabled")
	}
	defer publisher.Close()

	transfers := bank.NewTransferService(registry, publisher, cfg.IBANMinLength)

	// Set up and run the background stats reporter
	reporter, err := monitoring.NewReporter(registry, cfg.StatsCron)
	if err != nil {
		log.Fatal().Err(err).Str("cron", cfg.StatsCron).Msg("Invalid stats schedule")
	}
	go reporter.Run()

	// Set up router
	router := api.NewRouter(registry, transfers, cfg.StaticDir)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	reporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}

// seedDemoAccounts preloads the demo users the front end's login screen
// advertises.
func seedDemoAccounts(registry *bank.Registry) {
	registry.Seed("sinan", "123456", decimal.RequireFromString("842500.45"), "TR12 3456 7890 1234 5678 9012 34")
	registry.Seed("demo", "demo123", decimal.NewFromInt(12500), "TR98 0000 1111 2222 3333 4444 55")
}
