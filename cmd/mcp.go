package main

import (
	"context"
	"coursesearch/internal/config"
	coursemcp "coursesearch/internal/mcp"
	"coursesearch/pkg/controller"
	"coursesearch/pkg/logger"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func mcpCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serves the course search tools to MCP clients over stdio or HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			searcher, err := newSearcher(cfg, cfg.Canvas.BaseURL)
			if err != nil {
				logger.Fatal(ctx, "could not create searcher", zap.Error(err))
			}
			s := coursemcp.NewServer(searcher, cfg.Canvas.BaseURL)

			if useHTTP, _ := cmd.Flags().GetBool("http"); useHTTP {
				server := coursemcp.NewHTTPServer(s, coursemcp.HTTPOptions{
					Addr:              cfg.MCP.Addr,
					ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
					CORS:              controller.CORSOptions{AllowedOrigins: cfg.HTTP.AllowedOrigins},
				})
				waitAndStop(ctx, cfg, startServer(ctx, "mcp", server))

				return
			}

			logger.Info(ctx, "serving MCP over stdio...")
			if err := coursemcp.ServeStdio(ctx, s); err != nil && ctx.Err() == nil {
				logger.Fatal(ctx, "mcp stdio server failed", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("http", false, "Serve the streamable HTTP transport on mcp.addr instead of stdio")

	return cmd
}
