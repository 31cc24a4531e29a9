package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	cadenceerrors "github.com/alexisbeaulieu97/cadence/pkg/errors"
)

// Settings holds process-wide settings read from the environment.
type Settings struct {
	LogLevel      string `env:"CADENCE_LOG_LEVEL" envDefault:"warn" validate:"oneof=trace debug info warn error"`
	LogFormat     string `env:"CADENCE_LOG_FORMAT" envDefault:"console" validate:"oneof=console json"`
	ReducedMotion bool   `env:"CADENCE_REDUCED_MOTION"`
	NarrowColumns int    `env:"CADENCE_NARROW_COLUMNS" envDefault:"80" validate:"min=1,max=1000"`
	Tier          string `env:"CADENCE_TIER" envDefault:"full" validate:"tier"`
}

// LoadSettings reads Settings from the process environment.
func LoadSettings() (Settings, error) {
	return parseSettings(env.Options{})
}

// LoadSettingsFrom reads Settings from the supplied variables instead of the
// process environment.
func LoadSettingsFrom(environ map[string]string) (Settings, error) {
	return parseSettings(env.Options{Environment: environ})
}

func parseSettings(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, cadenceerrors.NewValidationError("environment", fmt.Sprintf("parse settings: %v", err), err)
	}
	if err := validatorInstance().Struct(s); err != nil {
		return Settings{}, convertValidationError(err)
	}
	return s, nil
}
