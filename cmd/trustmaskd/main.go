package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/trustmask/trustmask/internal/anonymizer"
	"github.com/trustmask/trustmask/internal/audit"
	"github.com/trustmask/trustmask/internal/cache"
	"github.com/trustmask/trustmask/internal/config"
	"github.com/trustmask/trustmask/internal/detect"
	"github.com/trustmask/trustmask/internal/logger"
	"github.com/trustmask/trustmask/internal/ner"
	"github.com/trustmask/trustmask/internal/server"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
		healthCheck = flag.Bool("health-check", false, "Perform health check and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("TrustMask %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if *healthCheck {
		performHealthCheck()
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	loggerConfig := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	}
	if cfg.Logging.File.Enabled {
		loggerConfig.File = &logger.FileConfig{
			Enabled:  cfg.Logging.File.Enabled,
			Path:     cfg.Logging.File.Path,
			MaxSize:  cfg.Logging.File.MaxSize,
			MaxAge:   cfg.Logging.File.MaxAge,
			Compress: cfg.Logging.File.Compress,
		}
	}

	log, err := logger.New(loggerConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting TrustMask",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("build_date", date),
		zap.Int("port", cfg.Server.Port),
	)

	pipeline, err := buildPipeline(cfg, log)
	if err != nil {
		log.Fatal("Failed to build anonymization pipeline", zap.Error(err))
	}

	// Cache and audit are optional: a down Redis or Postgres degrades
	// the service instead of preventing startup.
	var resultCache *cache.ResultCache
	if cfg.Cache.Enabled {
		resultCache, err = cache.NewResultCache(&cache.Config{
			RedisURL:   cfg.Cache.RedisURL,
			DefaultTTL: cfg.Cache.TTL,
		}, log.WithComponent("cache").Logger)
		if err != nil {
			log.Warn("Result cache unavailable, continuing without it", zap.Error(err))
			resultCache = nil
		} else {
			defer resultCache.Close()
		}
	}

	var auditStore *audit.Store
	if cfg.Audit.Enabled {
		auditStore, err = audit.NewStore(&audit.Config{
			DatabaseURL: cfg.Audit.PostgresDSN,
		}, log.WithComponent("audit").Logger)
		if err != nil {
			log.Warn("Audit store unavailable, continuing without it", zap.Error(err))
			auditStore = nil
		} else {
			defer auditStore.Close()
		}
	}

	srv, err := server.New(cfg, log, pipeline, resultCache, auditStore)
	if err != nil {
		log.Fatal("Failed to create server", zap.Error(err))
	}

	// Config changes need a restart to take effect; watching surfaces
	// that in the logs instead of silently ignoring the edit.
	if err := config.Watch(cfg, func(newCfg *config.Config) {
		log.Info("Configuration file changed, restart to apply")
	}); err != nil {
		log.Warn("Failed to watch configuration file", zap.Error(err))
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.Int("port", cfg.Server.Port))
		serverErrors <- srv.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("Server error", zap.Error(err))
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		// Give outstanding requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Stop(ctx); err != nil {
			log.Error("Failed to shutdown server gracefully", zap.Error(err))
			os.Exit(1)
		}

		log.Info("Server shutdown complete")
	}
}

// buildPipeline assembles the rule detectors and the optional
// model-backed recognizer from configuration.
func buildPipeline(cfg *config.Config, log *logger.Logger) (*anonymizer.Anonymizer, error) {
	detectors, err := detect.FromNames(cfg.Detection.Detectors, cfg.Detection.Strict)
	if err != nil {
		return nil, err
	}

	if cfg.NER.Enabled {
		recognizer, err := buildRecognizer(cfg, log)
		if err != nil {
			return nil, err
		}
		detectors = append(detectors, detect.NewNER(recognizer, cfg.NER.Timeout, log.WithComponent("ner").Logger))
	}

	return anonymizer.New(detectors, cfg.Detection.MinConfidence, log.WithComponent("anonymizer").Logger), nil
}

func buildRecognizer(cfg *config.Config, log *logger.Logger) (ner.Recognizer, error) {
	switch cfg.NER.Backend {
	case "local":
		return ner.NewLocalBackend(ner.LocalConfig{
			ModelPath:     cfg.NER.ModelPath,
			TokenizerPath: cfg.NER.TokenizerPath,
			Timeout:       cfg.NER.Timeout,
		}, log.WithComponent("ner").Logger)
	default:
		return ner.NewClient(ner.ClientConfig{
			Endpoint: cfg.NER.Endpoint,
			Token:    cfg.NER.Token,
			Timeout:  cfg.NER.Timeout,
			Retries:  cfg.NER.Retries,
		}, log.WithComponent("ner").Logger), nil
	}
}

// performHealthCheck performs a health check against the running server
func performHealthCheck() {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get("http://localhost:8080/health")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Health check failed: HTTP %d\n", resp.StatusCode)
		os.Exit(1)
	}

	fmt.Println("Health check passed")
	os.Exit(0)
}
