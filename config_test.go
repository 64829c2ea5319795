package masker

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, "body", cfg.Container)
	assert.Equal(t, 0.5, cfg.Opacity)
	assert.Equal(t, DefaultSample, cfg.Sample)
	assert.Zero(t, cfg.Duration)
	assert.Zero(t, cfg.FadeIn)
	assert.Zero(t, cfg.FadeOut)
	assert.False(t, cfg.Volatile)
	assert.Equal(t, "fixed", cfg.Style["position"])
}

func TestDefaultsReturnsCopy(t *testing.T) {
	cfg := Defaults()
	cfg.Style["position"] = "absolute"
	cfg.Opacity = 1

	again := Defaults()
	assert.Equal(t, "fixed", again.Style["position"])
	assert.Equal(t, 0.5, again.Opacity)
}

func TestConfigForDecodesOptions(t *testing.T) {
	cfg, err := configFor(Options{
		"id":       "overlay",
		"opacity":  0.8,
		"duration": 1500,
		"fadeIn":   "250ms",
		"fadeOut":  100.0,
		"volatile": true,
		"style": map[string]any{
			"backgroundColor": "#102030",
			"top":             20,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "overlay", cfg.ID)
	assert.Equal(t, 0.8, cfg.Opacity)
	assert.Equal(t, 1500*time.Millisecond, cfg.Duration)
	assert.Equal(t, 250*time.Millisecond, cfg.FadeIn)
	assert.Equal(t, 100*time.Millisecond, cfg.FadeOut)
	assert.True(t, cfg.Volatile)

	// Style merges over the defaults by property.
	assert.Equal(t, "#102030", cfg.Style["background-color"])
	assert.Equal(t, 20, cfg.Style["top"])
	assert.Equal(t, "fixed", cfg.Style["position"])
	assert.NotContains(t, cfg.Style, "backgroundColor")

	// The process defaults are untouched.
	assert.Equal(t, "black", Defaults().Style["background-color"])
}

func TestConfigForNilOptions(t *testing.T) {
	cfg, err := configFor(nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestConfigForBadDuration(t *testing.T) {
	_, err := configFor(Options{"fadeIn": "soon"})
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(ResetDefaults)

	doc := `
opacity: 0.7
fadeIn: 200ms
fadeOut: 150
volatile: true
style:
  background-color: "#102030"
  zIndex: 2000
`
	require.NoError(t, LoadDefaults(strings.NewReader(doc)))

	cfg := Defaults()
	assert.Equal(t, 0.7, cfg.Opacity)
	assert.Equal(t, 200*time.Millisecond, cfg.FadeIn)
	assert.Equal(t, 150*time.Millisecond, cfg.FadeOut)
	assert.True(t, cfg.Volatile)
	assert.Equal(t, "body", cfg.Container)
	assert.Equal(t, "#102030", cfg.Style["background-color"])
	assert.Equal(t, 2000, cfg.Style["z-index"])
	assert.Equal(t, "100%", cfg.Style["width"])

	// New masks pick the loaded defaults up.
	m, err := New(newTestScene(), nil)
	require.NoError(t, err)
	require.NoError(t, m.Render())
	assert.InDelta(t, 0.7, m.Node().Opacity(), 1e-9)
}

func TestLoadDefaultsEmpty(t *testing.T) {
	t.Cleanup(ResetDefaults)
	require.NoError(t, LoadDefaults(strings.NewReader("")))
	assert.Equal(t, builtinDefaults(), Defaults())
}

func TestLoadDefaultsInvalid(t *testing.T) {
	t.Cleanup(ResetDefaults)
	assert.Error(t, LoadDefaults(strings.NewReader("opacity: [1, 2")))
	assert.Error(t, LoadDefaults(strings.NewReader("fadeIn: later")))
	assert.Equal(t, builtinDefaults(), Defaults())
}

func TestSetDefaults(t *testing.T) {
	t.Cleanup(ResetDefaults)

	cfg := Defaults()
	cfg.Container = "#stage"
	SetDefaults(cfg)
	cfg.Style["position"] = "absolute"

	assert.Equal(t, "#stage", Defaults().Container)
	assert.Equal(t, "fixed", Defaults().Style["position"])
}
