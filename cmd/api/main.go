package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"linguaweb/internal/config"
	"linguaweb/internal/database"
	"linguaweb/internal/database/migration"
	"linguaweb/internal/genai"
	handlers "linguaweb/internal/http/handler"
	"linguaweb/internal/http/middleware"
	"linguaweb/internal/observability"
	"linguaweb/internal/otel"
	"linguaweb/internal/repository/postgres"
	"linguaweb/internal/service"
	"linguaweb/internal/storage"
)

// egressProbeURL is hit by the connectivity health check to confirm the
// process can reach the generation upstream.
const egressProbeURL = "https://api.openai.com/v1/models"

func main() {
	// Load configuration from environment variables (.env auto-loaded if present).
	cfg := config.Load()

	log := observability.NewLogger(cfg.LogLevel, cfg.LogPretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer shutdownTracing(ctx)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	openaiClient, err := genai.NewOpenAI(cfg.OpenAI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize openai client")
	}

	prompts, err := genai.LoadPrompts(cfg.PromptFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load prompts")
	}

	wordRepo := postgres.NewWordPostgres(db)
	wordSvc := service.NewWordService(wordRepo, objStore, openaiClient, openaiClient, prompts, service.Options{
		Voice:             cfg.OpenAI.Voice,
		ProvisionTimeout:  time.Duration(cfg.ProvisionTimeoutSec) * time.Second,
		PresetConcurrency: cfg.PresetConcurrency,
		Logger:            log,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register http metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	handlers.RegisterRoutes(app, db, wordSvc, cfg.AdminAPIKey, egressCheck(), reg)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")

	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// egressCheck issues a HEAD request to the upstream API. Any HTTP response,
// including 401, proves the network path; only transport errors fail.
func egressCheck() handlers.EgressCheck {
	client := &http.Client{Timeout: 5 * time.Second}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, egressProbeURL, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("egress probe: %w", err)
		}
		resp.Body.Close()
		return nil
	}
}
