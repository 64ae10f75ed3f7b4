package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrollscene/internal/scroll"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scrollscene.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPresets(t *testing.T) {
	snappy, err := Preset("")
	require.NoError(t, err)
	assert.Equal(t, 0.12, snappy.Scroll.Lerp)
	assert.Equal(t, 0.0005, snappy.Stars.DriftY)
	assert.Zero(t, snappy.Stars.ScrollLift)
	assert.NoError(t, snappy.Validate())

	classic, err := Preset("classic")
	require.NoError(t, err)
	assert.Equal(t, 0.1, classic.Scroll.Lerp)
	assert.Equal(t, 0.0001, classic.Stars.DriftX)
	assert.Equal(t, 0.0005, classic.Stars.ScrollLift)
	assert.NoError(t, classic.Validate())

	_, err = Preset("turbo")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestLoadLayering(t *testing.T) {
	path := writeConfig(t, `{
		"scroll": {"lerp": 0.2, "wheelMultiplier": 2},
		"contact": {"timeout": "3s", "endpoint": "http://example.test/form"},
		"stars": {"count": 500}
	}`)
	t.Setenv("SCROLLSCENE_SCROLL_LERP", "0.3")
	t.Setenv("SCROLLSCENE_STARS_COLOR", "#ff0000")

	cfg, err := Load("snappy", path)
	require.NoError(t, err)

	assert.Equal(t, 0.3, cfg.Scroll.Lerp, "env beats file")
	assert.Equal(t, 2.0, cfg.Scroll.WheelMultiplier, "file beats preset")
	assert.Equal(t, 500, cfg.Stars.Count)
	assert.Equal(t, "#ff0000", cfg.Stars.Color)
	assert.Equal(t, Duration(3*time.Second), cfg.Contact.Timeout)
	assert.Equal(t, "http://example.test/form", cfg.Contact.Endpoint)
	assert.Equal(t, scroll.ModeLerp, cfg.Scroll.Mode, "untouched fields keep the preset")
	assert.Equal(t, 75.0, cfg.Camera.Fov)
}

func TestLoadEnvDuration(t *testing.T) {
	t.Setenv("SCROLLSCENE_CONTACT_TIMEOUT", "250ms")
	t.Setenv("SCROLLSCENE_SCROLL_MODE", "spring")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Duration(250*time.Millisecond), cfg.Contact.Timeout)
	assert.Equal(t, scroll.ModeSpring, cfg.Scroll.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load("", writeConfig(t, `{"scroll":`))
	assert.Error(t, err)

	_, err = Load("", writeConfig(t, `{"camera": {"near": 5, "far": 1}}`))
	assert.Error(t, err)

	t.Setenv("SCROLLSCENE_STARS_COUNT", "many")
	_, err = Load("", "")
	assert.Error(t, err)
}

func TestValidateRejectsBadColor(t *testing.T) {
	cfg := Snappy()
	cfg.Stars.Color = "chartreuse-ish"
	assert.Error(t, cfg.Validate())
}

func TestDerivedOptions(t *testing.T) {
	cfg := Classic()

	p := cfg.ParallaxOptions()
	assert.Equal(t, ".parallax-layer", p.Selector)
	assert.Equal(t, "none", p.Ease)
	assert.Equal(t, 0.5, p.Scrub)

	f := cfg.FieldBinding()
	assert.Equal(t, "top top", f.Start)
	assert.Equal(t, "bottom bottom", f.End)
	assert.InDelta(t, 1.5708, f.MaxRotation, 1e-4)

	fo := cfg.FieldOptions()
	assert.Equal(t, 3000, fo.Count)
	assert.Equal(t, uint8(255), fo.Color.R)

	r := cfg.RenderLoopOptions()
	assert.Equal(t, 0.0001, r.Drift.X)
	assert.Equal(t, 0.0002, r.Drift.Y)

	assert.Equal(t, 0.1, cfg.CursorOptions().Duration)
	assert.Contains(t, cfg.String(), `"timeout":"10s"`)
}
