package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/domain/entity"
)

// Toggle glyphs
const (
	switchOn   = "━━●"
	switchOff  = "●━━"
	checkOn    = "[x]"
	checkOff   = "[ ]"
	radioOn    = "(•)"
	radioOff   = "( )"
	iconOn     = "☾"
	iconOff    = "☀"
	segmentOff = "OFF"
	segmentOn  = "ON"
)

// Toggle renders a boolean control in the requested style.
// Every style shows the same value; unknown styles fall back to a switch.
func (t *Theme) Toggle(style entity.ToggleStyle, on bool, label string) string {
	var control string
	switch style {
	case entity.ToggleStyleCheckbox:
		control = t.glyph(on, checkOn, checkOff)
	case entity.ToggleStyleRadio:
		control = t.glyph(on, radioOn, radioOff)
	case entity.ToggleStyleIcon:
		control = t.glyph(on, iconOn, iconOff)
	case entity.ToggleStyleSegmented:
		control = t.segmented(on)
	default:
		control = t.glyph(on, switchOn, switchOff)
	}

	if label == "" {
		return control
	}
	return control + " " + t.Normal.Render(label)
}

func (t *Theme) glyph(on bool, onGlyph, offGlyph string) string {
	if on {
		return t.Highlight.Render(onGlyph)
	}
	return t.Subtle.Render(offGlyph)
}

func (t *Theme) segmented(on bool) string {
	active := t.Badge
	inactive := t.BadgeMuted

	off, onSeg := active, inactive
	if on {
		off, onSeg = inactive, active
	}

	var b strings.Builder
	b.WriteString(off.Render(segmentOff))
	b.WriteString(onSeg.Render(segmentOn))
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Render(b.String())
}
