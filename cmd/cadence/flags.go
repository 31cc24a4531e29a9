package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
	"github.com/alexisbeaulieu97/cadence/internal/environment"
	"github.com/alexisbeaulieu97/cadence/internal/ports"
)

// envFlags overrides the detected environment. Only flags the user set take
// effect; everything else comes from the environment Source.
type envFlags struct {
	reducedMotion bool
	narrow        bool
	tier          string
}

func (f *envFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.reducedMotion, "reduced-motion", false, "Force the reduced-motion preference on or off")
	cmd.Flags().BoolVar(&f.narrow, "narrow", false, "Force a narrow (mobile) viewport on or off")
	cmd.Flags().StringVar(&f.tier, "tier", "", "Capability tier (full or reduced)")
}

func (f *envFlags) environment(cmd *cobra.Command, app *AppContext, logger ports.Logger) motion.EnvironmentState {
	state := environment.FromSettings(app.Settings, environment.WithLogger(logger)).Current()
	if cmd.Flags().Changed("reduced-motion") {
		state.ReducedMotion = f.reducedMotion
	}
	if cmd.Flags().Changed("narrow") {
		state.NarrowViewport = f.narrow
	}
	return state
}

// resolveTier picks the --tier flag, then fallback, then CADENCE_TIER.
func (f *envFlags) resolveTier(cmd *cobra.Command, app *AppContext, fallback motion.Tier) (motion.Tier, error) {
	if cmd.Flags().Changed("tier") {
		return motion.ParseTier(f.tier)
	}
	if fallback != "" {
		return fallback, nil
	}
	return motion.ParseTier(app.Settings.Tier)
}

// catalogFlags selects a catalog by preset name or file path.
type catalogFlags struct {
	preset string
	file   string
}

func (f *catalogFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Built-in catalog preset (see 'cadence presets')")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to a YAML catalog")
	cmd.MarkFlagsMutuallyExclusive("preset", "file")
}

// parseParams turns repeated key=value flags into effect parameters.
func parseParams(raw []string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("parameter %q must look like key=value", item)
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %q is not a number", key, value)
		}
		if _, dup := params[key]; dup {
			return nil, fmt.Errorf("parameter %s given more than once", key)
		}
		params[key] = number
	}
	return params, nil
}

// parseSteps turns name:delay:duration[:after] flags into sequence steps.
// Delays and durations are milliseconds.
func parseSteps(raw []string) ([]motion.SequenceStep, error) {
	steps := make([]motion.SequenceStep, 0, len(raw))
	for _, item := range raw {
		parts := strings.Split(item, ":")
		if len(parts) < 3 || len(parts) > 4 {
			return nil, fmt.Errorf("step %q must look like name:delay:duration[:after]", item)
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			return nil, errors.New("step name cannot be empty")
		}
		delay, err := parseMillis(parts[1])
		if err != nil {
			return nil, fmt.Errorf("step %s delay: %w", name, err)
		}
		duration, err := parseMillis(parts[2])
		if err != nil {
			return nil, fmt.Errorf("step %s duration: %w", name, err)
		}
		step := motion.SequenceStep{Name: name, Delay: delay, Duration: duration}
		if len(parts) == 4 {
			step.After = strings.TrimSpace(parts[3])
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseMillis(value string) (time.Duration, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number of milliseconds", value)
	}
	return millis(ms)
}

// millis converts ms to a Duration. Negative values pass through for the
// scheduler to reject; magnitudes beyond config.MaxMillis are refused here.
func millis(ms int64) (time.Duration, error) {
	if ms > config.MaxMillis || ms < -config.MaxMillis {
		return 0, fmt.Errorf("%dms is outside the %dms limit", ms, config.MaxMillis)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
