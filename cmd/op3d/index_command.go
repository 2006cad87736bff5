package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/catalog"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the catalog index from the library",
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

			return ctx.withStore(func(store *catalog.Store) error {
				count, err := catalog.Rebuild(cmd.Context(), cfg, store, library, logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d profiles from %s\n", count, library.Root())
				return nil
			})
		},
	}
}
