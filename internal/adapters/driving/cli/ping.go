package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the AnkiConnect connection",
	RunE:  runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, _ []string) error {
	if noteService == nil {
		return errNotConfigured("note")
	}

	v, err := noteService.Ping(cmd.Context())
	if err != nil {
		return fmt.Errorf("AnkiConnect unreachable: %w", err)
	}

	cmd.Printf("AnkiConnect API version %d\n", v)
	return nil
}
