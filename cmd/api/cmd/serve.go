package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/suar-net/suar-time/internal/config"
	"github.com/suar-net/suar-time/internal/docs"
	"github.com/suar-net/suar-time/internal/handler"
	"github.com/suar-net/suar-time/internal/logger"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	c, err := buildCatalog(cfg.Catalog, log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load catalog")
		return err
	}

	page, err := docs.Render(docs.NewPage(c))
	if err != nil {
		log.Error().Err(err).Msg("failed to render documentation")
		return err
	}

	router := handler.SetupRouter(handler.RouterDeps{
		Converter:      newConversionService(c, log),
		Catalog:        c,
		DocsPage:       page,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Bool("degraded", c.Degraded()).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Error().Err(err).Str("port", cfg.Server.Port).Msg("cannot run server")
			return err
		}
		return nil
	case <-stop:
	}

	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return err
	}
	log.Info().Msg("server shut down")
	return nil
}
