// Serve command: run the reference REST backend over the local store.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kilnworks/safetydesk/internal/api"
	"github.com/kilnworks/safetydesk/internal/store"
)

var serveAddr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the REST backend over the local store",
		Long: `Serve exposes the local store as the REST backend the browse commands
and the web views consume. Requires data_dir configuration; a remote
backend_url cannot be re-served.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.DataDir == "" {
		return fmt.Errorf("serve requires data_dir configuration")
	}

	backend := store.NewBackend()
	if err := backend.Attach(cfg.DataDir); err != nil {
		return fmt.Errorf("attaching store: %w", err)
	}
	defer backend.Detach()

	server := api.NewServer(backend)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(serveAddr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
