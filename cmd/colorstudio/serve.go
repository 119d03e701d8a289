package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Cloudy680/Color-converter/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the conversions as an MCP tool server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("transport", "", "stdio or streamable-http (default from config)")
	serveCmd.Flags().String("host", "", "HTTP listen host")
	serveCmd.Flags().Int("port", 0, "HTTP listen port")
	serveCmd.Flags().String("metrics", "", "Metrics listen address for stdio transport")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	opts := server.Options{
		Transport:     cfg.Server.Transport,
		Host:          cfg.Server.Host,
		Port:          cfg.Server.Port,
		MetricsListen: cfg.Server.MetricsListen,
		Version:       version,
	}
	if cmd.Flags().Changed("transport") {
		opts.Transport, _ = cmd.Flags().GetString("transport")
	}
	if cmd.Flags().Changed("host") {
		opts.Host, _ = cmd.Flags().GetString("host")
	}
	if cmd.Flags().Changed("port") {
		opts.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("metrics") {
		opts.MetricsListen, _ = cmd.Flags().GetString("metrics")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return server.Run(ctx, opts, logger)
}
