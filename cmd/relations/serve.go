package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/relations-core/internal/application/handlers"
	"github.com/ersonp/relations-core/internal/infrastructure/auth"
	"github.com/ersonp/relations-core/internal/infrastructure/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the relationships admin interface over HTTP",
		Long: `Starts the admin HTTP server.

The server exposes the relationships list page, the single-record page, and
the form action endpoint that handles create, edit, activate, deactivate,
and delete (including bulk selections).

The anti-forgery token secret must be configured (auth.secret in
.relations/config.yaml or the RELATIONS_AUTH_SECRET environment variable).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		nonce, err := auth.NewNonce(d.Config.Auth)
		if err != nil {
			return fmt.Errorf("creating authorizer: %w", err)
		}

		if addr == "" {
			addr = d.Config.HTTP.Addr
		}

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		actions := handlers.NewActionHandler(d.Service, nonce)
		server := web.NewServer(logger, addr, actions, d.Service, nonce)

		errCh := make(chan error, 1)
		go func() { errCh <- server.Start() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
}
