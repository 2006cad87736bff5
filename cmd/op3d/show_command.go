package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/convert"
	"op3d/internal/profile"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "show <kind> <id>",
		Short: "Print one profile in its neutral form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := profile.ParseKind(args[0])
			if err != nil {
				return err
			}
			library, err := ctx.library()
			if err != nil {
				return err
			}
			doc, err := library.Find(kind, args[1])
			if err != nil {
				return err
			}

			format := convert.FormatJSON
			if formatFlag != "" {
				format, err = convert.ParseFormat(formatFlag)
				if err != nil {
					return err
				}
			}
			rendered, err := convert.Convert(doc, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Render format (default json; yaml, orca, prusaslicer, cura)")
	return cmd
}
