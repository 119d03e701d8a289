// Package server exposes the color conversions as MCP tools over stdio or
// streamable HTTP, with Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options selects the transport and listen addresses.
type Options struct {
	Transport     string // "stdio" or "streamable-http"
	Host          string
	Port          int
	MetricsListen string // metrics address for stdio; empty disables
	Version       string
}

// New returns an MCP server with every conversion tool registered.
func New(version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "colorstudio",
		Version: version,
	}, nil)
	server.AddReceivingMiddleware(LoggingMiddleware(logger))
	RegisterTools(server)
	return server
}

// Handler returns the HTTP routes for the streamable transport: the MCP
// endpoint at /mcp and metrics at /metrics.
func Handler(server *mcp.Server) http.Handler {
	mcpHandler := mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server { return server },
		nil,
	)
	mux := http.NewServeMux()
	mux.Handle("/mcp", mcpHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// Run serves until ctx is cancelled or the transport fails.
func Run(ctx context.Context, opts Options, logger *slog.Logger) error {
	server := New(opts.Version, logger)

	logger.Info("starting colorstudio MCP server", "transport", opts.Transport, "version", opts.Version)

	switch opts.Transport {
	case "stdio":
		if opts.MetricsListen != "" {
			metrics := NewMetricsServer(opts.MetricsListen, logger)
			metrics.Start()
			defer metrics.Shutdown(context.Background())
		}
		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			return fmt.Errorf("stdio server error: %w", err)
		}

	case "streamable-http":
		addr := net.JoinHostPort(opts.Host, strconv.Itoa(opts.Port))
		httpServer := &http.Server{
			Addr:              addr,
			Handler:           Handler(server),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			logger.Info("shutting down HTTP server")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown error", "error", err)
			}
		}()

		logger.Info("listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}

	default:
		return fmt.Errorf("unknown transport %q: use stdio or streamable-http", opts.Transport)
	}
	return nil
}
