// Package cli provides the ankiform command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/ankiform/internal/adapters/driving/cli/styles"
	"github.com/custodia-labs/ankiform/internal/core/ports/driving"
	"github.com/custodia-labs/ankiform/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// Services wired by the builder before a command runs.
var (
	reformService   driving.ReformService
	formatService   driving.FormatService
	noteService     driving.NoteService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

// Options are the global flag values handed to the Builder.
type Options struct {
	// ConfigDir overrides ~/.ankiform.
	ConfigDir string

	// Host overrides anki.host when non-empty.
	Host string

	// Port overrides anki.port when positive.
	Port int

	// Timeout overrides anki.timeout_seconds when positive.
	Timeout time.Duration
}

// Services is what a Builder produces. Close may be nil.
type Services struct {
	Reform   driving.ReformService
	Format   driving.FormatService
	Note     driving.NoteService
	History  driving.HistoryService
	Settings driving.SettingsService
	Close    func() error
}

// Builder constructs the services from the global options. It may return
// partially built services together with an error, e.g. a settings service
// for an invalid configuration so that it can be repaired.
type Builder func(opts Options) (*Services, error)

var (
	builder   Builder
	opts      Options
	verbose   bool
	closeFunc func() error
)

// annotationTolerant marks commands that run even if the builder failed.
const annotationTolerant = "tolerant"

var rootCmd = &cobra.Command{
	Use:   "ankiform",
	Short: "Reformat Anki note fields through AnkiConnect",
	Long: `ankiform fetches notes from a running Anki instance through the
AnkiConnect add-on, cleans up the text of one field and writes it back.

Every run is recorded so it can be listed and restored later.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return teardown()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "print progress and per-note detail")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.ankiform)")
	flags.StringVar(&opts.Host, "anki-host", "", "AnkiConnect host (overrides anki.host)")
	flags.IntVar(&opts.Port, "anki-port", 0, "AnkiConnect port (overrides anki.port)")
	flags.DurationVar(&opts.Timeout, "timeout", 0, "request timeout, e.g. 5s (overrides anki.timeout_seconds)")
}

// Execute runs the root command with services from build.
func Execute(build Builder) error {
	builder = build
	err := rootCmd.Execute()
	if cerr := teardown(); err == nil {
		err = cerr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if builder == nil {
		return nil
	}

	svc, err := builder(opts)
	if svc != nil {
		setServices(svc)
	}
	if err != nil && !isTolerant(cmd) {
		_ = teardown()
		return err
	}
	if err != nil {
		logger.Warn("%v", err)
	}
	return nil
}

func teardown() error {
	if closeFunc == nil {
		return nil
	}
	err := closeFunc()
	closeFunc = nil
	return err
}

func setServices(svc *Services) {
	reformService = svc.Reform
	formatService = svc.Format
	noteService = svc.Note
	historyService = svc.History
	settingsService = svc.Settings
	closeFunc = svc.Close
}

func isTolerant(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[annotationTolerant]; ok {
			return true
		}
	}
	return false
}

// errNotConfigured is returned when a command runs without its service.
func errNotConfigured(name string) error {
	return fmt.Errorf("%s service not configured", name)
}

// outputStyles returns coloured styles when w is a terminal.
func outputStyles(w io.Writer) *styles.Styles {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return styles.DefaultStyles()
	}
	return styles.PlainStyles()
}
