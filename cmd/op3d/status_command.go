package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/catalog"
	"op3d/internal/preflight"
	"op3d/internal/profile"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration, directory checks, and catalog counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Paths")
			fmt.Fprintln(out, renderTable(
				[]string{"Setting", "Value"},
				[][]string{
					{"Library", cfg.Paths.LibraryDir},
					{"Output", cfg.Paths.OutputDir},
					{"Cache", cfg.Paths.CacheDir},
					{"Logs", cfg.Paths.LogDir},
					{"API bind", cfg.Paths.APIBind},
				},
				nil,
			))

			fmt.Fprintln(out, "\nChecks")
			rows := make([][]string, 0, 4)
			failed := 0
			for _, result := range preflight.RunAll(cfg) {
				state := "ok"
				if !result.Passed {
					state = "FAIL"
					failed++
				}
				rows = append(rows, []string{result.Name, state, result.Detail})
			}
			fmt.Fprintln(out, renderTable([]string{"Check", "Status", "Detail"}, rows, nil))

			fmt.Fprintln(out, "\nCatalog")
			err = ctx.withStore(func(store *catalog.Store) error {
				stats, err := store.Stats(cmd.Context())
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(stats))
				total := 0
				for _, kind := range profile.Kinds() {
					rows = append(rows, []string{string(kind), fmt.Sprintf("%d", stats[kind])})
					total += stats[kind]
				}
				rows = append(rows, []string{"total", fmt.Sprintf("%d", total)})
				fmt.Fprintln(out, renderTable([]string{"Kind", "Indexed"}, rows,
					[]columnAlignment{alignLeft, alignRight}))
				return nil
			})
			if err != nil {
				return err
			}

			if failed > 0 {
				return fmt.Errorf("%d checks failed", failed)
			}
			return nil
		},
	}
}
