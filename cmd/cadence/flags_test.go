package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/config"
	"github.com/alexisbeaulieu97/cadence/internal/domain/motion"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"speed=0.5", " particleCount = 100 "})
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"speed": 0.5, "particleCount": 100}, params)

	_, err = parseParams([]string{"speed=1", "speed=2"})
	require.ErrorContains(t, err, "more than once")

	_, err = parseParams([]string{"=1"})
	require.ErrorContains(t, err, "key=value")
}

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps([]string{"fade:0:400", "chart:100:800:fade"})
	require.NoError(t, err)
	require.Equal(t, []motion.SequenceStep{
		{Name: "fade", Duration: 400 * time.Millisecond},
		{Name: "chart", Delay: 100 * time.Millisecond, Duration: 800 * time.Millisecond, After: "fade"},
	}, steps)

	_, err = parseSteps([]string{":0:400"})
	require.ErrorContains(t, err, "name cannot be empty")

	_, err = parseSteps([]string{"fade:0:1.5"})
	require.ErrorContains(t, err, "milliseconds")

	_, err = parseSteps([]string{"a:1:2:b:c"})
	require.ErrorContains(t, err, "name:delay:duration")

	_, err = parseSteps([]string{"fade:0:9223372036854"})
	require.ErrorContains(t, err, "limit")

	_, err = parseSteps([]string{"fade:-9223372036854:400"})
	require.ErrorContains(t, err, "limit")
}

func TestMillis(t *testing.T) {
	d, err := millis(config.MaxMillis)
	require.NoError(t, err)
	require.Equal(t, time.Hour, d)

	d, err = millis(-5)
	require.NoError(t, err)
	require.Equal(t, -5*time.Millisecond, d)

	_, err = millis(config.MaxMillis + 1)
	require.ErrorContains(t, err, "3600000ms limit")
}

func TestParseOutputFormat(t *testing.T) {
	format, err := parseOutputFormat(" JSON ")
	require.NoError(t, err)
	require.Equal(t, outputJSON, format)

	_, err = parseOutputFormat("xml")
	require.Error(t, err)
}

func TestInvalidSettingsFailBeforeRunning(t *testing.T) {
	_, _, err := executeCommandWithEnv(t, map[string]string{"CADENCE_LOG_LEVEL": "loud"}, "select")
	require.Error(t, err)
	require.Contains(t, err.Error(), "CADENCE_")
}
