package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseToggleStyle(t *testing.T) {
	for _, style := range ToggleStyles() {
		got, err := ParseToggleStyle(string(style))
		assert.NoError(t, err)
		assert.Equal(t, style, got)
	}

	got, err := ParseToggleStyle("Segmented")
	assert.NoError(t, err)
	assert.Equal(t, ToggleStyleSegmented, got)

	got, err = ParseToggleStyle("cupertino")
	assert.True(t, errors.Is(err, ErrUnknownToggleStyle))
	assert.Equal(t, DefaultToggleStyle, got)
}

func TestToggleStyle_NextCyclesThroughAll(t *testing.T) {
	styles := ToggleStyles()
	current := styles[0]
	visited := map[ToggleStyle]bool{}

	for range styles {
		visited[current] = true
		current = current.Next()
	}

	assert.Len(t, visited, len(styles))
	assert.Equal(t, styles[0], current, "cycle should wrap around")
	assert.Equal(t, styles[0], ToggleStyle("bogus").Next())
}
