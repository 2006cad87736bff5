package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/catalog"
	"op3d/internal/profile"
)

func newFavoriteCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorite",
		Aliases: []string{"fav"},
		Short:   "Manage favorite profiles",
	}
	cmd.AddCommand(
		newFavoriteAddCommand(ctx),
		newFavoriteRemoveCommand(ctx),
		newFavoriteListCommand(ctx),
	)
	return cmd
}

func newFavoriteAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <id>",
		Short: "Mark an indexed profile as a favorite",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := profile.ParseKind(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *catalog.Store) error {
				if err := store.AddFavorite(cmd.Context(), kind, args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s/%s to favorites\n", kind, args[1])
				return nil
			})
		},
	}
}

func newFavoriteRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kind> <id>",
		Short: "Remove a profile from favorites",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := profile.ParseKind(args[0])
			if err != nil {
				return err
			}
			return ctx.withStore(func(store *catalog.Store) error {
				removed, err := store.RemoveFavorite(cmd.Context(), kind, args[1])
				if err != nil {
					return err
				}
				if !removed {
					fmt.Fprintf(cmd.OutOrStdout(), "%s/%s was not a favorite\n", kind, args[1])
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s/%s from favorites\n", kind, args[1])
				return nil
			})
		},
	}
}

func newFavoriteListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List favorite profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *catalog.Store) error {
				entries, err := store.List(cmd.Context(), catalog.Filter{FavoritesOnly: true})
				if err != nil {
					return err
				}
				if jsonOutput {
					if entries == nil {
						entries = []catalog.Entry{}
					}
					return writeJSON(cmd, entries)
				}
				out := cmd.OutOrStdout()
				if len(entries) == 0 {
					fmt.Fprintln(out, "No favorites yet. Add one with 'op3d favorite add <kind> <id>'.")
					return nil
				}
				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					rows = append(rows, []string{string(entry.Kind), entry.ID, entry.Name})
				}
				fmt.Fprintln(out, renderTable([]string{"Kind", "ID", "Name"}, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
