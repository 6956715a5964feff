package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in ~/.ankiform/config.toml.

Keys use dotted names, e.g. anki.port or reform.field.`,
	Annotations: map[string]string{annotationTolerant: ""},
	RunE:        runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Change a setting",
	Long: `Stores a single setting. The value is checked before it is saved.

When the value for anki.api_key is omitted it is read from the terminal
without echo.

Examples:
  ankiform settings set anki.port 8766
  ankiform settings set reform.formatters listening
  ankiform settings set anki.api_key`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if settings == nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", settingsService.Path())
	cmd.Println()

	cmd.Println("[AnkiConnect]")
	cmd.Printf("  URL: %s\n", settings.Anki.URL())
	cmd.Printf("  Timeout: %s\n", settings.Anki.Timeout)
	if settings.Anki.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Anki.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
	}
	if settings.Anki.RequestsPerSecond > 0 {
		cmd.Printf("  Rate limit: %g requests/s\n", settings.Anki.RequestsPerSecond)
	} else {
		cmd.Printf("  Rate limit: none\n")
	}
	cmd.Println()

	cmd.Println("[Reform]")
	cmd.Printf("  Query: %s\n", settings.Reform.Query)
	cmd.Printf("  Field: %s\n", settings.Reform.Field)
	cmd.Printf("  Formatters: %s\n", strings.Join(settings.Reform.Formatters, ", "))
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		dir := settings.History.DataDir
		if dir == "" {
			dir = "~/.ankiform/data"
		}
		cmd.Printf("  Data dir: %s\n", dir)
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	cmd.Println()

	if err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'ankiform settings set <key> <value>' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case key == "anki.api_key":
		cmd.Print("API key: ")
		value = readPassword(cmd.InOrStdin())
		cmd.Println()
	default:
		return fmt.Errorf("missing value for %s (keys: %s)", key, strings.Join(settingsService.Keys(), ", "))
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	shown := value
	if key == "anki.api_key" {
		shown = maskAPIKey(value)
	}
	cmd.Printf("Set %s = %s\n", key, shown)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword(in io.Reader) string {
	// Read without echo when stdin is a terminal
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(password)
		}
	}
	reader := bufio.NewReader(in)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
