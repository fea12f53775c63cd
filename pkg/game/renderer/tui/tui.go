// Package tui is the terminal frontend. It reads raw keys and redraws the
// whole frame with ANSI colours on every tick.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"go.uber.org/zap"

	"cvquest/pkg/engine/input"
	"cvquest/pkg/engine/terminal"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/gameplay"
	"cvquest/pkg/game/i18n"
	"cvquest/pkg/game/renderer"
)

// Icons, two columns per map cell
const (
	IconWall  = "▒▒"
	IconFloor = "· "
	IconPath  = "* "
	IconVoid  = "  "
)

// Rows kept below the map for dialogue, panels and notifications
const reservedRows = 14

// cellWidth is how many terminal columns one map cell takes
const cellWidth = 2

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer

	colorWall         color.Style
	colorFloor        color.Style
	colorPath         color.Style
	colorPlayer       color.Style
	colorNPC          color.Style
	colorNPCHighlight color.Style
	colorIndicator    color.Style
	colorSpeaker      color.Style
	colorSubtle       color.Style
	colorTitle        color.Style
	colorNotification color.Style
}

// New creates a new TUI renderer writing to stdout
func New(cfg config.Config, log *zap.Logger) *TUIRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	t := &TUIRenderer{cfg: cfg, log: log, out: os.Stdout}
	t.Init()
	return t
}

// Init initializes the TUI colours
func (t *TUIRenderer) Init() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgBlue}
	t.colorPath = color.Style{color.FgYellow}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorNPC = color.Style{color.FgCyan, color.OpBold}
	t.colorNPCHighlight = color.Style{color.FgGreen, color.OpBold}
	t.colorIndicator = color.Style{color.FgYellow, color.OpBold}
	t.colorSpeaker = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorTitle = color.Style{color.FgMagenta}
	t.colorNotification = color.Style{color.FgGreen}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleWall:
		return t.colorWall.Sprint(text)
	case renderer.StyleFloor:
		return t.colorFloor.Sprint(text)
	case renderer.StylePath:
		return t.colorPath.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleNPC:
		return t.colorNPC.Sprint(text)
	case renderer.StyleNPCHighlighted:
		return t.colorNPCHighlight.Sprint(text)
	case renderer.StyleIndicator:
		return t.colorIndicator.Sprint(text)
	case renderer.StyleSpeaker:
		return t.colorSpeaker.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleTitle:
		return t.colorTitle.Sprint(text)
	case renderer.StyleNotification:
		return t.colorNotification.Sprint(text)
	default:
		return text
	}
}

// GetViewportSize returns how many map cells fit, as (rows, cols)
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	cols, rows = terminal.Viewport(cellWidth, reservedRows)
	return rows, cols
}

// Run puts stdin in raw mode and drives scene until quit or ctx ends
func (t *TUIRenderer) Run(ctx context.Context, scene *gameplay.Scene) error {
	restore, err := input.RawMode()
	if err != nil {
		return fmt.Errorf("tui: raw mode: %w", err)
	}
	defer restore()
	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)

	intents := make(chan input.Intent, 16)
	readErr := make(chan error, 1)
	// the reader stays blocked on stdin after Run returns; the process exits soon after
	go t.readKeys(input.NewKeyReader(os.Stdin), intents, readErr)

	tick := gameplay.TickRate()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	t.log.Info("frontend starting", zap.String("frontend", config.FrontendTUI))
	defer t.log.Info("frontend stopped", zap.String("frontend", config.FrontendTUI))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("tui: read key: %w", err)
		case intent := <-intents:
			scene.ProcessIntent(intent)
		case <-ticker.C:
			scene.Update(tick)
			rows, cols := t.GetViewportSize()
			t.draw(t.Render(scene.Snapshot(), cols, rows))
		}
		if scene.Quit() {
			return nil
		}
	}
}

func (t *TUIRenderer) readKeys(keys *input.KeyReader, intents chan<- input.Intent, errs chan<- error) {
	for {
		intent, err := keys.ReadIntent()
		if err != nil {
			errs <- err
			return
		}
		if intent.Action != input.ActionNone {
			intents <- intent
		}
	}
}

// draw repaints the screen. Raw mode needs explicit carriage returns.
func (t *TUIRenderer) draw(frame string) {
	terminal.Home(t.out)
	_, _ = io.WriteString(t.out, strings.ReplaceAll(frame, "\n", "\r\n"))
}

// Render builds one frame: the map window around the player, then dialogue,
// panels and notifications.
func (t *TUIRenderer) Render(v gameplay.View, cols, rows int) string {
	var b strings.Builder

	header := v.Personal.Name
	if v.Personal.Title != "" {
		header += " · " + v.Personal.Title
	}
	b.WriteString(t.StyleText(header, renderer.StyleSubtle) + "\n\n")

	t.renderMap(&b, v, cols, rows)
	b.WriteString("\n")

	for _, n := range v.Notifications {
		b.WriteString(t.StyleText(n, renderer.StyleNotification) + "\n")
	}

	if v.Dialogue.Active {
		t.renderDialogue(&b, v.Dialogue, cols*cellWidth)
	}
	if v.Help {
		lines := append([]string{i18n.T("HELP_MOVE"), i18n.T("HELP_TALK")}, renderer.BindingHints()...)
		t.renderPanel(&b, i18n.T("HELP_TITLE"), lines)
	}
	if v.Inventory {
		lines := make([]string, 0, len(v.Skills))
		for _, s := range v.Skills {
			lines = append(lines, s.Name)
		}
		if len(lines) == 0 {
			lines = append(lines, i18n.T("INVENTORY_EMPTY"))
		}
		t.renderPanel(&b, i18n.T("INVENTORY_TITLE"), lines)
	}
	if v.QuestLog {
		lines := make([]string, 0, len(v.Quests))
		for _, q := range v.Quests {
			lines = append(lines, i18n.T("QUEST_PROGRESS", q.Title, q.Done, q.Total))
		}
		t.renderPanel(&b, i18n.T("QUEST_LOG_TITLE"), lines)
	}
	return b.String()
}

func (t *TUIRenderer) renderMap(b *strings.Builder, v gameplay.View, cols, rows int) {
	grid := v.Grid
	off := renderer.Camera(
		world.Vec{X: float64(v.Player.Cell.Col) + 0.5, Y: float64(v.Player.Cell.Row) + 0.5},
		float64(cols), float64(rows),
		float64(grid.Width()), float64(grid.Height()),
	)
	startCol := int(math.Floor(off.X))
	startRow := int(math.Floor(off.Y))

	npcs := make(map[world.Cell]gameplay.NPCView, len(v.NPCs))
	for _, n := range v.NPCs {
		npcs[n.Cell] = n
	}
	path := make(map[world.Cell]bool, len(v.Player.Path))
	for _, p := range v.Player.Path {
		path[grid.WorldToCell(p)] = true
	}

	for row := startRow; row < startRow+rows && row < grid.Height(); row++ {
		if row < 0 {
			continue
		}
		for col := startCol; col < startCol+cols && col < grid.Width(); col++ {
			b.WriteString(t.renderCell(world.Cell{Col: col, Row: row}, v, npcs, path))
		}
		b.WriteString("\n")
	}
}

// renderCell returns the two-column picture of one cell
func (t *TUIRenderer) renderCell(c world.Cell, v gameplay.View, npcs map[world.Cell]gameplay.NPCView, path map[world.Cell]bool) string {
	grid := v.Grid
	if !grid.InBounds(c) {
		return IconVoid
	}
	if c == v.Player.Cell {
		return t.StyleText(renderer.FacingGlyph(v.Player.Facing)+" ", renderer.StylePlayer)
	}
	if n, ok := npcs[c]; ok {
		style := renderer.StyleNPC
		if n.Highlighted {
			style = renderer.StyleNPCHighlighted
		}
		return t.StyleText(npcInitial(n.Name), style) + t.StyleText(indicatorGlyph(n.Indicator), renderer.StyleIndicator)
	}
	if path[c] {
		return t.StyleText(IconPath, renderer.StylePath)
	}
	if grid.IsWalkable(c) {
		return t.StyleText(IconFloor, renderer.StyleFloor)
	}
	return t.StyleText(IconWall, renderer.StyleWall)
}

func (t *TUIRenderer) renderDialogue(b *strings.Builder, d gameplay.DialogueView, width int) {
	b.WriteString(t.StyleText(d.Speaker, renderer.StyleSpeaker) + "\n")
	runes := func(s string) float64 { return float64(len([]rune(s))) }
	for _, line := range renderer.Wrap(d.Text, float64(max(width, 20)), runes) {
		b.WriteString(line + "\n")
	}
	if d.Awaiting {
		b.WriteString(t.StyleText(i18n.T("CONTINUE_PROMPT"), renderer.StyleSubtle) + "\n")
	}
}

func (t *TUIRenderer) renderPanel(b *strings.Builder, title string, lines []string) {
	b.WriteString(t.StyleText(title, renderer.StyleTitle) + "\n")
	for _, l := range lines {
		b.WriteString("- " + l + "\n")
	}
}

func npcInitial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}

// indicatorGlyph squeezes an indicator into one column
func indicatorGlyph(ind string) string {
	if ind == entities.IndicatorTalked {
		return "…"
	}
	return ind
}
