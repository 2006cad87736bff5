package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"op3d/internal/convert"
	"op3d/internal/fileutil"
	"op3d/internal/profile"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		formatFlag string
		outputDir  string
		toStdout   bool
		allFlag    bool
	)

	cmd := &cobra.Command{
		Use:   "convert [<kind> <id>]",
		Short: "Convert profiles to a slicer format",
		Long: "Convert renders neutral profiles in a slicer's native format and writes\n" +
			"the result to the output directory. Pass a kind and id to convert one\n" +
			"profile, or --all to convert the whole library.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			name := formatFlag
			if name == "" {
				name = cfg.Convert.DefaultFormat
			}
			format, err := convert.ParseFormat(name)
			if err != nil {
				return err
			}

			library, err := ctx.library()
			if err != nil {
				return err
			}

			var docs []*profile.Document
			switch {
			case allFlag:
				if len(args) != 0 {
					return fmt.Errorf("--all does not take positional arguments")
				}
				docs, err = library.LoadAll()
				if err != nil {
					return err
				}
				if len(docs) == 0 {
					return fmt.Errorf("library %s has no profiles", library.Root())
				}
			case len(args) == 2:
				kind, err := profile.ParseKind(args[0])
				if err != nil {
					return err
				}
				doc, err := library.Find(kind, args[1])
				if err != nil {
					return err
				}
				docs = []*profile.Document{doc}
			default:
				return fmt.Errorf("expected <kind> <id> or --all")
			}

			if toStdout {
				if len(docs) > 1 {
					return fmt.Errorf("--stdout converts a single profile")
				}
				rendered, err := convert.Convert(docs[0], format)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}

			dir := outputDir
			if dir == "" {
				dir = cfg.Paths.OutputDir
			}
			if err := fileutil.EnsureDir(dir); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, doc := range docs {
				rendered, err := convert.Convert(doc, format)
				if err != nil {
					return fmt.Errorf("convert %s/%s: %w", doc.Kind, doc.ID(), err)
				}
				path := filepath.Join(dir, convert.FileName(doc, format))
				if err := fileutil.WriteFileAtomic(path, []byte(rendered), 0o644); err != nil {
					return err
				}
				fmt.Fprintln(out, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Target format: orca, prusaslicer, cura, yaml, json")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the converted profile to stdout")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Convert every profile in the library")
	return cmd
}
