package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ankiform/internal/core/domain"
)

var reformCmd = &cobra.Command{
	Use:   "reform",
	Short: "Format a field across matching notes",
	Long: `Fetches every note matching the query, formats the chosen field and
writes all notes back in one pass.

Notes without the field are skipped with a warning. The first failed update
aborts the rest; use 'ankiform history restore <run-id>' to undo a run.

Examples:
  ankiform reform
  ankiform reform --query "deck:English::Listening" --field Text
  ankiform reform --dry-run`,
	RunE: runReform,
}

func init() {
	reformCmd.Flags().StringP("query", "q", "", "note search query (default from reform.query)")
	reformCmd.Flags().StringP("field", "f", "", "field to format (default from reform.field)")
	reformCmd.Flags().Bool("dry-run", false, "show the changes without updating notes")
	rootCmd.AddCommand(reformCmd)
}

func runReform(cmd *cobra.Command, _ []string) error {
	if reformService == nil {
		return errNotConfigured("reform")
	}

	query, _ := cmd.Flags().GetString("query")
	field, _ := cmd.Flags().GetString("field")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	report, err := reformService.Reform(cmd.Context(), domain.ReformOptions{
		Query:  query,
		Field:  field,
		DryRun: dryRun,
	})
	if err != nil {
		if report != nil && report.RunID != "" {
			cmd.PrintErrf("Run %s was recorded; restore it with 'ankiform history restore %s'\n",
				report.RunID, report.RunID)
		}
		return fmt.Errorf("reform failed: %w", err)
	}

	st := outputStyles(cmd.OutOrStdout())

	if report.DryRun {
		cmd.Println(st.Title.Render("Dry run: no notes were updated"))
		for _, c := range report.Changes {
			cmd.Printf("\nNote %d (%s)\n", c.NoteID, c.Field)
			cmd.Printf("  - %s\n", st.Before.Render(c.Before))
			cmd.Printf("  + %s\n", st.After.Render(c.After))
		}
		cmd.Println()
	}

	for _, id := range report.Skipped {
		cmd.Println(st.Warning.Render(fmt.Sprintf("Skipped note %d: field not found", id)))
	}

	cmd.Printf("Notes: %d, formatted: %d, changed: %d, skipped: %d, updated: %d\n",
		report.Total, report.Formatted, report.Changed(), len(report.Skipped), report.Updated)
	if report.RunID != "" {
		cmd.Println(st.Muted.Render("Run ID: " + report.RunID))
	}
	return nil
}
