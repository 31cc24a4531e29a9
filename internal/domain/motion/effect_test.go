package motion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectConfigCopiesInput(t *testing.T) {
	t.Parallel()

	input := map[string]float64{"particleCount": 100, "speed": 0.5}
	cfg := NewEffectConfig("particles", input)
	input["particleCount"] = 1

	assert.Equal(t, 100, cfg.Int("particleCount"))

	values := cfg.Values()
	values["speed"] = 9
	v, ok := cfg.Get("speed")
	require.True(t, ok)
	assert.Equal(t, 0.5, v)
}

func TestEffectConfigWithReturnsNewInstance(t *testing.T) {
	t.Parallel()

	base := NewEffectConfig("particles", map[string]float64{"particleCount": 100})
	next := base.With("particleCount", 30)

	assert.Equal(t, 100, base.Int("particleCount"))
	assert.Equal(t, 30, next.Int("particleCount"))
	assert.False(t, base.Equal(next))
	assert.True(t, base.Equal(NewEffectConfig("particles", map[string]float64{"particleCount": 100})))
	assert.False(t, base.Equal(NewEffectConfig("starfield", map[string]float64{"particleCount": 100})))
}

func TestEffectConfigAccessors(t *testing.T) {
	t.Parallel()

	cfg := NewEffectConfig("particles", map[string]float64{"speed": 0.5, "connections": 1, "particleCount": 29.6})
	assert.Equal(t, []string{"connections", "particleCount", "speed"}, cfg.Keys())
	assert.True(t, cfg.Flag("connections"))
	assert.False(t, cfg.Flag("missing"))
	assert.Equal(t, 30, cfg.Int("particleCount"))
	assert.Equal(t, "particles{connections=1,particleCount=29.6,speed=0.5}", cfg.String())
	assert.Equal(t, 3, cfg.Len())
}

func TestEffectConfigJSON(t *testing.T) {
	t.Parallel()

	cfg := NewEffectConfig("waves", map[string]float64{"waveCount": 3})
	data, err := json.Marshal(VariantChoice{Variant: VariantReduced, Config: cfg})
	require.NoError(t, err)
	assert.JSONEq(t, `{"variant":"reduced","config":{"kind":"waves","params":{"waveCount":3}}}`, string(data))
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tier, err := ParseTier("")
	require.NoError(t, err)
	assert.Equal(t, TierFull, tier)

	tier, err = ParseTier(" Reduced ")
	require.NoError(t, err)
	assert.Equal(t, TierReduced, tier)

	_, err = ParseTier("ultra")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestVariantString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "disabled", VariantDisabled.String())
	assert.Equal(t, "reduced", VariantReduced.String())
	assert.Equal(t, "full", VariantFull.String())
	assert.False(t, VariantDisabled.Animated())
	assert.True(t, VariantFull.Animated())
}

func TestTimelineQueries(t *testing.T) {
	t.Parallel()

	tl := Timeline{Entries: []TimelineEntry{
		{Item: 0, Name: "fade", Start: 0, End: 400 * time.Millisecond},
		{Item: 1, Name: "fade", Start: 100 * time.Millisecond, End: 500 * time.Millisecond},
		{Item: 2, Name: "fade", Start: 200 * time.Millisecond, End: 600 * time.Millisecond},
	}}

	assert.Equal(t, 600*time.Millisecond, tl.Total())
	assert.Len(t, tl.ForItem(1), 1)
	assert.Len(t, tl.ActiveAt(450*time.Millisecond), 2)
	assert.Empty(t, tl.ActiveAt(600*time.Millisecond))
	assert.Equal(t, 400*time.Millisecond, tl.Entries[0].Duration())
}
