// ABOUTME: Serve CLI command
// ABOUTME: Starts the HTTP API server

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/mastermind/internal/api"
	"github.com/harper/mastermind/internal/identity"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API for calendar generation.

POST /api/v1/generate accepts either a full inline input (stateless) or
a stored campaign reference, in which case the result is persisted.`,
	RunE: runServe,
}

var addrFlag string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	addr := addrFlag
	if addr == "" {
		addr = cfg.GetListenAddr()
	}

	srv := api.NewServer(api.Config{
		Addr:     addr,
		Identity: identity.GetIdentity(identityFlag, "api"),
	}, dbConn)

	return srv.Run(ctx)
}
