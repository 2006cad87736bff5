package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"op3d/internal/convert"
	"op3d/internal/fileutil"
	"op3d/internal/importer"
	"op3d/internal/profile"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir string
		toLibrary bool
	)

	cmd := &cobra.Command{
		Use:   "import <file.ini>",
		Short: "Import a PrusaSlicer config export",
		Long: "Import reads a PrusaSlicer ini export and converts its printer, filament,\n" +
			"and print sections into neutral profiles. Keys without a neutral mapping\n" +
			"are preserved in an x_prusaslicer extension block.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			opts := importer.Options{
				SourceName: strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])),
			}
			if cfg.Import.MaintainerName != "" {
				opts.Maintainer = &profile.Maintainer{
					Name: cfg.Import.MaintainerName,
					Type: cfg.Import.MaintainerType,
				}
			}

			docs, err := importer.Import(data, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, doc := range docs {
				rendered, err := convert.Convert(doc, convert.FormatJSON)
				if err != nil {
					return err
				}

				var path string
				if toLibrary {
					path = libraryPath(cfg.Paths.LibraryDir, doc)
				} else {
					dir := outputDir
					if dir == "" {
						dir = cfg.Paths.OutputDir
					}
					path = filepath.Join(dir, convert.FileName(doc, convert.FormatJSON))
				}
				if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(path, []byte(rendered), 0o644); err != nil {
					return err
				}
				logger.Info("profile imported", "kind", doc.Kind, "id", doc.ID(), "path", path)
				fmt.Fprintf(out, "%s %s -> %s\n", doc.Kind, doc.ID(), path)
			}
			if toLibrary {
				fmt.Fprintln(out, "Run 'op3d index' to pick up the new profiles.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (default from config)")
	cmd.Flags().BoolVar(&toLibrary, "library", false, "Place imported profiles into the library layout")
	return cmd
}

// libraryPath places a document at <library>/<kind>/<id>.json, where the id's
// group component becomes a subdirectory.
func libraryPath(root string, doc *profile.Document) string {
	parts := strings.Split(doc.ID(), "/")
	elems := append([]string{root, string(doc.Kind)}, parts...)
	return filepath.Join(elems...) + ".json"
}
