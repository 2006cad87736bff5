package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/compare"
	"op3d/internal/profile"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput bool
		showCommon bool
	)

	cmd := &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Compare two profile files setting by setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := profile.LoadFile(args[0])
			if err != nil {
				return err
			}
			second, err := profile.LoadFile(args[1])
			if err != nil {
				return err
			}

			result, err := compare.Documents(first, second, showCommon)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Comparing %s (%s) with %s (%s)\n",
				result.FirstID, result.FirstSchema, result.SecondID, result.SecondSchema)

			if len(result.Differences) > 0 {
				rows := make([][]string, 0, len(result.Differences))
				for _, diff := range result.Differences {
					rows = append(rows, []string{
						diff.Key,
						formatValue(diff.First),
						formatValue(diff.Second),
						string(diff.Status),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Setting", "Profile 1", "Profile 2", "Status"},
					rows,
					nil,
				))
			}

			if showCommon && len(result.Common) > 0 {
				rows := make([][]string, 0, len(result.Common))
				for _, c := range result.Common {
					rows = append(rows, []string{c.Key, formatValue(c.Value)})
				}
				fmt.Fprintln(out, renderTable([]string{"Setting", "Value"}, rows, nil))
			}

			fmt.Fprintf(out, "%d keys: %d common, %d modified, %d only in profile 1, %d only in profile 2\n",
				result.Stats.TotalKeys, result.Stats.Common, result.Stats.Modified,
				result.Stats.OnlyInFirst, result.Stats.OnlyInSecond)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&showCommon, "show-common", false, "Also list settings that match")
	return cmd
}

func formatValue(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}
