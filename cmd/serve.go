package main

import (
	"context"
	"coursesearch/internal/api"
	"coursesearch/internal/config"
	"coursesearch/pkg/logger"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startServer runs server in the background and returns a function that
// gracefully stops it.
func startServer(ctx context.Context, name string, server *http.Server) func(ctx context.Context) {
	ctx = logger.WithFields(ctx, zap.String("server", name), zap.String("addr", server.Addr))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(shutdownCtx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// waitAndStop blocks until ctx is done, then stops every server within the
// configured grace period.
func waitAndStop(ctx context.Context, cfg *config.Config, stops ...func(ctx context.Context)) {
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	for _, stop := range stops {
		stop(shutdownCtx)
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP search API",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			searcher, err := newSearcher(cfg, cfg.Canvas.BaseURL)
			if err != nil {
				logger.Fatal(ctx, "could not create searcher", zap.Error(err))
			}

			server, err := api.NewServer(ctx, api.Deps{
				Searcher: searcher,
				BaseURL:  cfg.Canvas.BaseURL,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			waitAndStop(ctx, cfg, startServer(ctx, "api", server))
		},
	}

	return cmd
}
