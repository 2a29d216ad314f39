package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uicontrols/internal/config"
	"github.com/alexisbeaulieu97/uicontrols/internal/logger"
	"github.com/alexisbeaulieu97/uicontrols/internal/settings"
)

// appContext bundles what every command needs once flags are parsed.
type appContext struct {
	flags    *rootFlags
	settings *settings.Settings
	log      *logger.Logger
}

func (a *appContext) load(cmd *cobra.Command) error {
	s, err := settings.Load(a.flags.configPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	level := s.LogLevel
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.settings = s
	a.log = log.With("command", cmd.Name())
	return nil
}

// catalog loads the catalog named by the flag, else the one in settings,
// else the built-in demo catalog.
func (a *appContext) catalog(path string) (*config.Catalog, error) {
	if path == "" && a.settings != nil {
		path = a.settings.CatalogPath
	}

	source := path
	if source == "" {
		source = config.DefaultSource
	}
	a.log.Debug("loading catalog " + source)

	cat, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// themeName picks the flag value, else the settings value. An empty result
// keeps the catalog's own theme.
func (a *appContext) themeName(flag string) string {
	if flag != "" {
		return flag
	}
	if a.settings != nil {
		return a.settings.ThemeName
	}
	return ""
}
