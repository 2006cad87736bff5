package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"op3d/internal/profile"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate profile files or the whole library",
		Long: "Validate checks profiles against the neutral schema. Structural problems\n" +
			"are errors and fail the command; suspicious numeric ranges are warnings\n" +
			"and do not.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var docs []*profile.Document
			if len(args) > 0 {
				for _, path := range args {
					doc, err := profile.LoadFile(path)
					if err != nil {
						return err
					}
					docs = append(docs, doc)
				}
			} else {
				library, err := ctx.library()
				if err != nil {
					return err
				}
				docs, err = library.LoadAll()
				if err != nil {
					return err
				}
			}

			type fileReport struct {
				Path   string          `json:"path"`
				Kind   profile.Kind    `json:"kind"`
				ID     string          `json:"id"`
				Issues []profile.Issue `json:"issues"`
			}

			var (
				reports  []fileReport
				errCount int
				warnings int
			)
			for _, doc := range docs {
				issues := profile.Check(doc)
				for _, issue := range issues {
					if issue.Severity == profile.SeverityError {
						errCount++
					} else {
						warnings++
					}
				}
				if issues == nil {
					issues = []profile.Issue{}
				}
				reports = append(reports, fileReport{
					Path:   doc.Path,
					Kind:   doc.Kind,
					ID:     doc.ID(),
					Issues: issues,
				})
			}

			if jsonOutput {
				if reports == nil {
					reports = []fileReport{}
				}
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, report := range reports {
					label := report.Path
					if label == "" {
						label = fmt.Sprintf("%s/%s", report.Kind, report.ID)
					}
					if len(report.Issues) == 0 {
						fmt.Fprintf(out, "ok: %s\n", label)
						continue
					}
					fmt.Fprintf(out, "%s:\n", label)
					for _, issue := range report.Issues {
						fmt.Fprintf(out, "  %s\n", issue)
					}
				}
				fmt.Fprintf(out, "%d profiles checked, %d errors, %d warnings\n",
					len(reports), errCount, warnings)
			}

			if errCount > 0 {
				return fmt.Errorf("validation failed with %d errors", errCount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of text")
	return cmd
}
