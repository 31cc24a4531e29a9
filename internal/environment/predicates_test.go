package environment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cadence/internal/config"
)

func TestManualPredicate(t *testing.T) {
	t.Parallel()

	p := NewManualPredicate("motion", false)
	require.Equal(t, "motion", p.Name())

	var seen []bool
	stop, err := p.Watch(func(v bool) { seen = append(seen, v) })
	require.NoError(t, err)

	p.Set(true)
	p.Set(true)
	require.False(t, p.Toggle())

	stop()
	stop()
	p.Set(true)

	require.Equal(t, []bool{true, false}, seen)
	value, err := p.Matches()
	require.NoError(t, err)
	require.True(t, value)
}

func TestStaticPredicate(t *testing.T) {
	t.Parallel()

	p := NewStaticPredicate("viewport", true)
	value, err := p.Matches()
	require.NoError(t, err)
	require.True(t, value)

	stop, err := p.Watch(func(bool) { t.Fatal("static predicate must not notify") })
	require.NoError(t, err)
	stop()
}

func TestEnvPredicate(t *testing.T) {
	t.Parallel()

	p := &EnvPredicate{load: func() (config.Settings, error) {
		return config.LoadSettingsFrom(map[string]string{"CADENCE_REDUCED_MOTION": "true"})
	}}
	value, err := p.Matches()
	require.NoError(t, err)
	require.True(t, value)

	broken := &EnvPredicate{load: func() (config.Settings, error) {
		return config.LoadSettingsFrom(map[string]string{"CADENCE_REDUCED_MOTION": "maybe"})
	}}
	value, err = broken.Matches()
	require.Error(t, err)
	require.False(t, value)
}

func TestTerminalWidthPredicate(t *testing.T) {
	t.Parallel()

	newPredicate := func(terminal bool, width int, err error) *TerminalWidthPredicate {
		return &TerminalWidthPredicate{
			columns:    80,
			isTerminal: func(int) bool { return terminal },
			size:       func(int) (int, int, error) { return width, 24, err },
		}
	}

	cases := []struct {
		name    string
		pred    *TerminalWidthPredicate
		want    bool
		wantErr bool
	}{
		{name: "narrow terminal", pred: newPredicate(true, 60, nil), want: true},
		{name: "threshold is wide", pred: newPredicate(true, 80, nil), want: false},
		{name: "wide terminal", pred: newPredicate(true, 200, nil), want: false},
		{name: "not a terminal", pred: newPredicate(false, 10, nil), want: false},
		{name: "size error", pred: newPredicate(true, 0, errors.New("ioctl failed")), wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := tc.pred.Matches()
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
