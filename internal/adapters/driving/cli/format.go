package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format [text...]",
	Short: "Format text without touching any note",
	Long: `Runs the configured formatters on the given text and prints the result.
With no arguments the text is read from standard input.

Examples:
  ankiform format "Hello,<br>World!"
  echo 'Wait...what?!Really' | ankiform format`,
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	if formatService == nil {
		return errNotConfigured("format")
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		text = string(data)
	}

	cmd.Println(formatService.Format(text))
	return nil
}
