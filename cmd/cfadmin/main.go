package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mdewolf/cfadmin/internal/api"
	"github.com/mdewolf/cfadmin/internal/api/handlers"
	"github.com/mdewolf/cfadmin/internal/config"
	"github.com/mdewolf/cfadmin/internal/logging"
	"github.com/mdewolf/cfadmin/internal/store"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set CFADMIN_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		apiKey     = flag.String("api-key", "", "Require this key in X-API-Key on every request")
		storePath  = flag.String("store", "", "Override secret store path")
		swagger    = flag.Bool("swagger", false, "Serve the Swagger UI at /swagger")
		noUI       = flag.Bool("no-ui", false, "Disable the embedded dashboard UI")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *apiKey != "" {
		cfg.API.APIKey = *apiKey
	}
	if *storePath != "" {
		cfg.Storage.Path = *storePath
	}
	if *swagger {
		cfg.API.EnableSwagger = true
	}
	// The dashboard is on unless explicitly disabled.
	cfg.API.EnableUI = !*noUI
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:            cfg.Logging.Level,
		Structured:       cfg.Logging.Structured,
		StructuredFormat: cfg.Logging.StructuredFormat,
		IncludePID:       cfg.Logging.IncludePID,
		ExtraFields:      cfg.Logging.ExtraFields,
	})

	st, err := store.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	h := handlers.New(cfg, st, logger)
	if err := h.RestoreClient(); err != nil {
		logger.Warn("could not restore stored token", "err", err)
	}

	srv := api.New(cfg, h, logger)
	logger.Info("cfadmin starting",
		"addr", srv.Addr(),
		"store", cfg.Storage.Path,
		"ui", cfg.API.EnableUI,
		"swagger", cfg.API.EnableSwagger,
		"api_key_required", cfg.API.APIKey != "",
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
