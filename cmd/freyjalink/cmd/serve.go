/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ssargent/freyjalink/pkg/api"
)

// newServeCmd represents the serve command
func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start the FreyjaLink REST API server.

Bind address and port default to the config file. Metrics are served at /metrics.

Examples:
  freyjalink serve
  freyjalink serve --port=9200 --api-key=mysecretkey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			parser, err := a.parser()
			if err != nil {
				return err
			}

			config := api.ServerConfig{
				Bind: a.config.Bind,
				Port: a.config.Port,
			}
			if cmd.Flags().Changed("port") {
				config.Port, _ = cmd.Flags().GetInt("port")
			}
			if cmd.Flags().Changed("bind") {
				config.Bind, _ = cmd.Flags().GetString("bind")
			}
			config.APIKey, _ = cmd.Flags().GetString("api-key")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(a.links, parser, config, api.NewMetrics(a.registry), a.logger)
			return api.StartServer(ctx, server, a.registry)
		},
	}

	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key required in the X-API-Key header (empty disables auth)")
	return serveCmd
}
