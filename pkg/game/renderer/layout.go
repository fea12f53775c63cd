// Package renderer holds what the frontends share: the Renderer contract,
// text styles and the layout maths for camera and text wrapping.
package renderer

import (
	"strings"

	"cvquest/pkg/engine/input"
	"cvquest/pkg/engine/world"
)

// Camera returns the top-left world offset that centres focus in a view of
// viewW×viewH, clamped so the view never leaves a world of worldW×worldH.
// A world smaller than the view is centred instead.
func Camera(focus world.Vec, viewW, viewH, worldW, worldH float64) world.Vec {
	return world.Vec{
		X: clampAxis(focus.X-viewW/2, viewW, worldW),
		Y: clampAxis(focus.Y-viewH/2, viewH, worldH),
	}
}

func clampAxis(v, view, size float64) float64 {
	if size <= view {
		return -(view - size) / 2
	}
	if v < 0 {
		return 0
	}
	if v > size-view {
		return size - view
	}
	return v
}

// Wrap breaks s into lines no wider than maxWidth. Existing newlines are kept
// and a single word wider than maxWidth gets a line of its own.
func Wrap(s string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if measure(line+" "+w) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}

// FacingGlyph returns an arrow for a facing, used where sprites are absent
func FacingGlyph(f world.Facing) string {
	switch f {
	case world.Up:
		return "▲"
	case world.Right:
		return "▶"
	case world.Left:
		return "◀"
	default:
		return "▼"
	}
}

// panelActions are listed in the help panel with their current keys
var panelActions = []input.Action{
	input.ActionInventory,
	input.ActionQuestLog,
	input.ActionHelp,
	input.ActionMenu,
}

// BindingHints returns "Action: key, key" lines for the panel toggles
func BindingHints() []string {
	byAction := input.GetBindingsByAction()
	lines := make([]string, 0, len(panelActions))
	for _, a := range panelActions {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		lines = append(lines, input.ActionName(a)+": "+strings.Join(codes, ", "))
	}
	return lines
}
