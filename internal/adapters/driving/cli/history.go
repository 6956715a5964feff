package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List, inspect and restore reform runs",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show the changes of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyRestoreCmd = &cobra.Command{
	Use:   "restore <run-id>",
	Short: "Write the values from before a run back to its notes",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRestore,
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyRestoreCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	runs, err := historyService.ListRuns(cmd.Context())
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Println("Recorded runs:")
	cmd.Println()
	for i := range runs {
		r := &runs[i]
		cmd.Printf("  %s\n", r.ID)
		cmd.Printf("    Started: %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
		cmd.Printf("    Query:   %s\n", r.Query)
		cmd.Printf("    Field:   %s\n", r.Field)
		cmd.Printf("    Notes:   %d, changed: %d, dry run: %t\n", r.NoteCount, r.ChangedCount, r.DryRun)
		cmd.Println()
	}
	cmd.Printf("Total: %d runs\n", len(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	run, changes, err := historyService.Show(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show run: %w", err)
	}

	st := outputStyles(cmd.OutOrStdout())

	cmd.Println(st.Title.Render("Run " + run.ID))
	cmd.Printf("Started: %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("Query:   %s\n", run.Query)
	cmd.Printf("Field:   %s\n", run.Field)
	cmd.Printf("Notes:   %d, changed: %d, dry run: %t\n", run.NoteCount, run.ChangedCount, run.DryRun)

	for _, c := range changes {
		cmd.Printf("\nNote %d (%s)\n", c.NoteID, c.Field)
		cmd.Printf("  - %s\n", st.Before.Render(c.Before))
		cmd.Printf("  + %s\n", st.After.Render(c.After))
	}
	return nil
}

func runHistoryRestore(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}

	n, err := historyService.Restore(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	cmd.Printf("Restored %d notes from run %s\n", n, args[0])
	return nil
}
