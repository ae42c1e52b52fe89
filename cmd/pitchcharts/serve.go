package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/midbel/pitchcharts/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve charts over HTTP and websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		sc := cfg.Server
		if cmd.Flags().Changed("host") {
			sc.Host, _ = cmd.Flags().GetString("host")
		}
		if cmd.Flags().Changed("port") {
			sc.Port, _ = cmd.Flags().GetInt("port")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(sc, logger).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "listen host")
	serveCmd.Flags().Int("port", 0, "listen port")
}
