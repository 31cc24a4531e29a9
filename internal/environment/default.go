package environment

import (
	"sync"

	"github.com/alexisbeaulieu97/cadence/internal/config"
)

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide Source built from the environment
// settings and the controlling terminal.
func Default() *Source {
	defaultOnce.Do(func() {
		defaultSource = FromSettings(loadSettingsOrDefault())
	})
	return defaultSource
}

// FromSettings builds a Source reading the reduced-motion preference from the
// environment and the viewport from the terminal width.
func FromSettings(settings config.Settings, opts ...Option) *Source {
	return NewSource(NewEnvPredicate(), NewTerminalWidthPredicate(settings.NarrowColumns), opts...)
}

func loadSettingsOrDefault() config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		settings, _ = config.LoadSettingsFrom(map[string]string{})
	}
	return settings
}
