package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"op3d/internal/api"
	"op3d/internal/catalog"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bindFlag string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			library, err := ctx.library()
			if err != nil {
				return err
			}

			bind := bindFlag
			if bind == "" {
				bind = cfg.Paths.APIBind
			}

			return ctx.withStore(func(store *catalog.Store) error {
				server := api.NewServer(cfg, store, library, logger)
				httpServer := &http.Server{
					Addr:              bind,
					Handler:           server.Router(),
					ReadHeaderTimeout: 10 * time.Second,
				}

				errCh := make(chan error, 1)
				go func() {
					logger.Info("api listening", "bind", bind)
					errCh <- httpServer.ListenAndServe()
				}()

				select {
				case err := <-errCh:
					if errors.Is(err, http.ErrServerClosed) {
						return nil
					}
					return err
				case <-cmd.Context().Done():
					logger.Info("shutting down api")
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
					defer cancel()
					if err := httpServer.Shutdown(shutdownCtx); err != nil {
						return err
					}
					<-errCh
					return nil
				}
			})
		},
	}

	cmd.Flags().StringVar(&bindFlag, "bind", "", "Listen address (default from config)")
	return cmd
}
