package colorscheme

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shade/internal/domain/entity"
)

// mockDetector implements port.BrightnessDetector for testing.
type mockDetector struct {
	name     string
	priority int
	mode     entity.Brightness
	ok       bool
	calls    int
}

func (m *mockDetector) Name() string  { return m.name }
func (m *mockDetector) Priority() int { return m.priority }
func (m *mockDetector) Detect(context.Context) (entity.Brightness, bool) {
	m.calls++
	return m.mode, m.ok
}

func TestResolver_PriorityOrder(t *testing.T) {
	low := &mockDetector{name: "low", priority: 1, mode: entity.BrightnessLight, ok: true}
	high := &mockDetector{name: "high", priority: 50, mode: entity.BrightnessDark, ok: true}

	r := NewResolver(low, high)
	pref := r.Resolve(context.Background())

	assert.Equal(t, Preference{Brightness: entity.BrightnessDark, Source: "high"}, pref)
	assert.True(t, pref.Found())
	assert.Equal(t, 0, low.calls, "lower priority detector should not be asked")
}

func TestResolver_SkipsDetectorsWithoutAnswer(t *testing.T) {
	silent := &mockDetector{name: "silent", priority: 50}
	fallback := &mockDetector{name: "fallback", priority: 1, mode: entity.BrightnessLight, ok: true}

	r := NewResolver(silent)
	r.RegisterDetector(fallback)

	assert.Equal(t, Preference{Brightness: entity.BrightnessLight, Source: "fallback"}, r.Resolve(context.Background()))
	assert.Equal(t, 1, silent.calls)
}

func TestResolver_NoAnswer(t *testing.T) {
	r := NewResolver(&mockDetector{name: "silent"})

	pref := r.Resolve(context.Background())

	assert.False(t, pref.Found())
	assert.Equal(t, entity.DefaultBrightness, pref.Brightness)
}

func TestEnvDetector(t *testing.T) {
	tests := []struct {
		value  string
		want   entity.Brightness
		wantOK bool
	}{
		{"", entity.DefaultBrightness, false},
		{"Adwaita:dark", entity.BrightnessDark, true},
		{"Breeze-Dark", entity.BrightnessDark, true},
		{"Adwaita", entity.BrightnessLight, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("GTK_THEME", tt.value)

			mode, ok := NewEnvDetector().Detect(context.Background())
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		raw    string
		want   entity.Brightness
		wantOK bool
	}{
		{"'prefer-dark'\n", entity.BrightnessDark, true},
		{"'prefer-light'\n", entity.BrightnessLight, true},
		{"'default'\n", entity.DefaultBrightness, false},
		{"garbage", entity.DefaultBrightness, false},
	}

	for _, tt := range tests {
		mode, ok := parseColorScheme(tt.raw)
		assert.Equal(t, tt.want, mode, tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
	}
}

func TestGsettingsDetector(t *testing.T) {
	d := &GsettingsDetector{
		lookPath: func(string) (string, error) { return "/usr/bin/gsettings", nil },
		output:   func(context.Context) ([]byte, error) { return []byte("'prefer-dark'\n"), nil },
	}
	mode, ok := d.Detect(context.Background())
	assert.True(t, ok)
	assert.Equal(t, entity.BrightnessDark, mode)

	d.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	_, ok = d.Detect(context.Background())
	assert.False(t, ok)

	d.lookPath = func(string) (string, error) { return "/usr/bin/gsettings", nil }
	d.output = func(context.Context) ([]byte, error) { return nil, errors.New("exit status 1") }
	_, ok = d.Detect(context.Background())
	assert.False(t, ok)
}
