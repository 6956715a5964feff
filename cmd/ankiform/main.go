// Command ankiform reformats Anki note fields through AnkiConnect.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/ankiform/internal/adapters/driven/ankiconnect"
	"github.com/custodia-labs/ankiform/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ankiform/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ankiform/internal/adapters/driving/cli"
	"github.com/custodia-labs/ankiform/internal/core/ports/driven"
	"github.com/custodia-labs/ankiform/internal/core/services"
	"github.com/custodia-labs/ankiform/internal/formatters"
)

func main() {
	if err := cli.Execute(build); err != nil {
		os.Exit(1)
	}
}

// build wires the adapters into the core services. When the configuration
// is invalid the settings service is still returned so it can be fixed.
func build(opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	svc := &cli.Services{Settings: settingsService}

	settings, err := settingsService.Get()
	if err != nil {
		return svc, err
	}
	if opts.Host != "" {
		settings.Anki.Host = opts.Host
	}
	if opts.Port > 0 {
		settings.Anki.Port = opts.Port
	}
	if opts.Timeout > 0 {
		settings.Anki.Timeout = opts.Timeout
	}

	client := ankiconnect.NewFromSettings(settings.Anki)

	registry := formatters.NewRegistry()
	formatters.RegisterDefaults(registry)
	chain, err := registry.BuildChain(settings.Reform.Formatters, nil)
	if err != nil {
		return svc, fmt.Errorf("build formatters: %w", err)
	}

	var history driven.HistoryStore
	if settings.History.Enabled {
		dataDir := settings.History.DataDir
		if dataDir == "" && opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return svc, fmt.Errorf("open history: %w", err)
		}
		history = store
		svc.Close = store.Close
	}

	svc.Reform = services.NewReformService(client, chain, history, settings.Reform)
	svc.Format = services.NewFormatService(chain)
	svc.Note = services.NewNoteService(client)
	svc.History = services.NewHistoryService(client, history)
	return svc, nil
}
