package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	engineinput "cvquest/pkg/engine/input"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/gameplay"
	"cvquest/pkg/game/i18n"
)

func makeScene(t *testing.T) *gameplay.Scene {
	t.Helper()
	require.NoError(t, i18n.Load("en"))
	bundle := &content.Bundle{
		CV: content.CV{
			Personal: content.Personal{Name: "Tester", Title: "Dev"},
			NPCs: []content.NPC{{
				ID: "guide", Name: "Career Guide", Dialogue: "Hello there",
				Quest: "Meet", Tile: content.Tile{Col: 2, Row: 2},
			}},
		},
		Map: content.Map{Width: 5, Height: 4, TileSize: 32, Tiles: content.BorderTiles(5, 4)},
	}
	s, err := gameplay.NewScene(config.Default(), bundle, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestRender_Map(t *testing.T) {
	r := New(config.Default(), nil)
	s := makeScene(t)

	out := color.ClearCode(r.Render(s.Snapshot(), 5, 4))
	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 6)

	assert.Equal(t, "Tester · Dev", lines[0])
	assert.Equal(t, "▒▒▒▒▒▒▒▒▒▒", lines[2])
	assert.Equal(t, "▒▒▼ · · ▒▒", lines[3])
	assert.Equal(t, "▒▒· C!· ▒▒", lines[4])
	assert.Contains(t, out, "HOW TO PLAY", "help is open on start")
}

func TestRender_DialogueAndPanels(t *testing.T) {
	r := New(config.Default(), nil)
	s := makeScene(t)
	s.Interact(s.NPCs()[0])
	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionContinue})
	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionInventory})

	out := color.ClearCode(r.Render(s.Snapshot(), 5, 4))
	assert.Contains(t, out, "CAREER GUIDE\n")
	assert.Contains(t, out, "Hello there\n")
	assert.Contains(t, out, "▼")
	assert.Contains(t, out, "SKILLS COLLECTED\n- No skills yet. Talk to people!")
}

func TestIndicatorGlyph(t *testing.T) {
	assert.Equal(t, "…", indicatorGlyph("..."))
	assert.Equal(t, "!", indicatorGlyph("!"))
	assert.Equal(t, "?", npcInitial(""))
}
