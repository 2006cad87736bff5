package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"op3d/internal/catalog"
	"op3d/internal/profile"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		kindFlag      string
		brandFlag     string
		materialFlag  string
		intentFlag    string
		queryFlag     string
		favoritesOnly bool
		sortFlag      string
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.Filter{
				Brand:         brandFlag,
				Material:      materialFlag,
				Intent:        intentFlag,
				Query:         queryFlag,
				FavoritesOnly: favoritesOnly,
				Sort:          sortFlag,
			}
			if kindFlag != "" {
				kind, err := profile.ParseKind(kindFlag)
				if err != nil {
					return err
				}
				filter.Kind = kind
			}

			return ctx.withStore(func(store *catalog.Store) error {
				entries, err := store.List(cmd.Context(), filter)
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
					fmt.Fprintln(out, "No profiles found. Populate the library and run 'op3d index'.")
					return nil
				}

				rows := make([][]string, 0, len(entries))
				for _, entry := range entries {
					fav := ""
					if entry.Favorite {
						fav = "*"
					}
					rows = append(rows, []string{
						fav,
						string(entry.Kind),
						entry.ID,
						entry.Name,
						entry.Brand,
						entry.Material,
						entry.Intent,
						strings.Join(entry.Tags, ", "),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"", "Kind", "ID", "Name", "Brand", "Material", "Intent", "Tags"},
					rows,
					nil,
				))
				fmt.Fprintf(out, "%d profiles\n", len(entries))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kindFlag, "kind", "k", "", "Filter by kind (printer, filament, process)")
	cmd.Flags().StringVar(&brandFlag, "brand", "", "Filter by brand or manufacturer")
	cmd.Flags().StringVar(&materialFlag, "material", "", "Filter by filament material")
	cmd.Flags().StringVar(&intentFlag, "intent", "", "Filter by process intent")
	cmd.Flags().StringVarP(&queryFlag, "search", "s", "", "Free-text search over id, name, brand, material, tags")
	cmd.Flags().BoolVar(&favoritesOnly, "favorites", false, "Show only favorites")
	cmd.Flags().StringVar(&sortFlag, "sort", catalog.SortID, "Sort order: id, name, brand, indexed")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}
