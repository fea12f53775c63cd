package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/gameplay"
	"cvquest/pkg/game/i18n"
	"cvquest/pkg/game/renderer"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.scene == nil || e.sansFontSource == nil {
		return
	}

	v := e.scene.Snapshot()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	mapW, mapH := v.Grid.PixelSize()
	e.camera = renderer.Camera(v.Player.Pos, float64(w), float64(h), mapW, mapH)

	e.drawTiles(screen, v, w, h)
	e.drawPath(screen, v.Player.Path)
	for _, n := range v.NPCs {
		e.drawNPC(screen, n)
	}
	e.drawPlayer(screen, v.Player)

	e.drawHeader(screen, v)
	e.drawNotifications(screen, v.Notifications, w)
	if v.Help {
		e.drawHelp(screen, w, h)
	}
	if v.Inventory {
		e.drawInventory(screen, v, w)
	}
	if v.QuestLog {
		e.drawQuestLog(screen, v)
	}
	if v.Dialogue.Active {
		e.drawDialogue(screen, v.Dialogue, w, h)
	}
}

// toScreen maps a world position to window pixels
func (e *EbitenRenderer) toScreen(p world.Vec) (float32, float32) {
	s := p.Sub(e.camera)
	return float32(s.X), float32(s.Y)
}

// drawTiles draws only the cells inside the view
func (e *EbitenRenderer) drawTiles(screen *ebiten.Image, v gameplay.View, w, h int) {
	grid := v.Grid
	tile := grid.TileSize()
	first := grid.WorldToCell(e.camera)
	last := grid.WorldToCell(e.camera.Add(world.Vec{X: float64(w), Y: float64(h)}))

	for row := max(first.Row, 0); row <= min(last.Row, grid.Height()-1); row++ {
		for col := max(first.Col, 0); col <= min(last.Col, grid.Width()-1); col++ {
			c := world.Cell{Col: col, Row: row}
			x, y := e.toScreen(world.Vec{X: float64(col) * tile, Y: float64(row) * tile})
			size := float32(tile)
			if grid.IsWalkable(c) {
				vector.DrawFilledRect(screen, x, y, size, size, colorFloor, false)
				vector.StrokeRect(screen, x, y, size, size, 1, colorFloorLine, false)
				continue
			}
			vector.DrawFilledRect(screen, x, y, size, size, colorWall, false)
			vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 1, colorWallEdge, false)
		}
	}
}

func (e *EbitenRenderer) drawPath(screen *ebiten.Image, path []world.Vec) {
	for _, p := range path {
		x, y := e.toScreen(p)
		vector.DrawFilledCircle(screen, x, y, pathDotRadius, colorPath, true)
	}
}

func (e *EbitenRenderer) drawNPC(screen *ebiten.Image, n gameplay.NPCView) {
	x, y := e.toScreen(n.Pos)
	body := colorNPC
	if n.Highlighted {
		body = colorNPCHighlight
	}
	vector.DrawFilledCircle(screen, x, y, npcRadius, body, true)

	// indicator floats above the head
	iy := y - npcRadius - 12
	if n.Indicator == entities.IndicatorDone {
		drawCheck(screen, x, iy, 12, colorIndicatorDone)
	} else {
		e.drawCentredText(screen, n.Indicator, float64(x), float64(iy)-8, colorIndicator, e.getMonoFontFace())
	}

	if n.Highlighted {
		e.drawCentredText(screen, n.Name, float64(x), float64(y)+npcRadius+4, colorText, e.getLabelFontFace())
	}
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, p gameplay.PlayerView) {
	x, y := e.toScreen(p.Pos)
	vector.DrawFilledCircle(screen, x, y, playerRadius, colorPlayer, true)

	// facing marker
	d := p.Facing.Vec()
	tip := float32(playerRadius + 5)
	vector.StrokeLine(screen, x, y, x+float32(d.X)*tip, y+float32(d.Y)*tip, 3, colorBackground, true)
}

func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, v gameplay.View) {
	title := v.Personal.Name
	if v.Personal.Title != "" {
		title = fmt.Sprintf("%s · %s", v.Personal.Name, v.Personal.Title)
	}
	e.drawColoredTextWithFace(screen, title, 12, 8, colorSubtle, e.getLabelFontFace())
}

func (e *EbitenRenderer) drawNotifications(screen *ebiten.Image, notes []string, w int) {
	face := e.getSansFontFace()
	y := 32.0
	for _, n := range notes {
		e.drawCentredText(screen, n, float64(w)/2, y, colorNotification, face)
		y += face.Size + 8
	}
}

func (e *EbitenRenderer) drawDialogue(screen *ebiten.Image, d gameplay.DialogueView, w, h int) {
	x := float32(dialogueMargin)
	y := float32(h - dialogueHeight - dialogueMargin)
	bw := float32(w - dialogueMargin*2)
	drawPanel(screen, x, y, bw, dialogueHeight, colorPanelBackground, colorAction)

	e.drawColoredTextWithFace(screen, d.Speaker, int(x)+panelPadding, int(y)+panelPadding-4, colorAction, e.getTitleFontFace())

	face := e.getSansFontFace()
	lineH := face.Size + 6
	maxW := float64(bw) - panelPadding*2
	ty := float64(y) + panelPadding + titleFontSize + 4
	for _, line := range renderer.Wrap(d.Text, maxW, e.measure(face)) {
		if ty > float64(y)+dialogueHeight-lineH {
			break
		}
		e.drawColoredTextWithFace(screen, line, int(x)+panelPadding, int(ty), colorText, face)
		ty += lineH
	}

	if d.Awaiting {
		prompt := i18n.T("CONTINUE_PROMPT")
		pw, _ := text.Measure(prompt, face, 0)
		e.drawColoredTextWithFace(screen, prompt, int(x+bw)-panelPadding-int(pw), int(y)+dialogueHeight-panelPadding-int(face.Size), colorAction, face)
	}
}

func (e *EbitenRenderer) drawHelp(screen *ebiten.Image, w, h int) {
	lines := []string{i18n.T("HELP_MOVE"), i18n.T("HELP_TALK"), i18n.T("HELP_PANELS")}
	e.drawListPanel(screen, i18n.T("HELP_TITLE"), lines, float32(w)/2-220, float32(h)/2-80, 440)
}

func (e *EbitenRenderer) drawInventory(screen *ebiten.Image, v gameplay.View, w int) {
	lines := make([]string, 0, len(v.Skills))
	for _, s := range v.Skills {
		if s.Level != "" {
			lines = append(lines, fmt.Sprintf("%s (%s)", s.Name, s.Level))
			continue
		}
		lines = append(lines, s.Name)
	}
	if len(lines) == 0 {
		lines = append(lines, i18n.T("INVENTORY_EMPTY"))
	}
	e.drawListPanel(screen, i18n.T("INVENTORY_TITLE"), lines, float32(w)-300, 60, 280)
}

func (e *EbitenRenderer) drawQuestLog(screen *ebiten.Image, v gameplay.View) {
	lines := make([]string, 0, len(v.Quests))
	for _, q := range v.Quests {
		line := i18n.T("QUEST_PROGRESS", q.Title, q.Done, q.Total)
		if q.Complete {
			line += " - " + q.Reward
		}
		lines = append(lines, line)
	}
	e.drawListPanel(screen, i18n.T("QUEST_LOG_TITLE"), lines, 20, 60, 360)
}

// drawListPanel draws a titled panel sized to its lines
func (e *EbitenRenderer) drawListPanel(screen *ebiten.Image, title string, lines []string, x, y, w float32) {
	face := e.getSansFontFace()
	lineH := float32(face.Size + 6)
	h := panelPadding*2 + titleFontSize + 8 + lineH*float32(len(lines))
	drawPanel(screen, x, y, w, h, colorPanelBackground, colorPanelBorder)

	e.drawColoredTextWithFace(screen, title, int(x)+panelPadding, int(y)+panelPadding-4, colorAction, e.getTitleFontFace())
	ly := y + panelPadding + titleFontSize + 8
	for _, line := range lines {
		e.drawColoredTextWithFace(screen, line, int(x)+panelPadding, int(ly), colorText, face)
		ly += lineH
	}
}

// drawColoredTextWithFace draws text with its top-left corner at (x, y)
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawCentredText draws text horizontally centred on cx with its top at y
func (e *EbitenRenderer) drawCentredText(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	tw, _ := text.Measure(str, face, 0)
	e.drawColoredTextWithFace(screen, str, int(cx-tw/2), int(y), col, face)
}

func (e *EbitenRenderer) measure(face *text.GoTextFace) func(string) float64 {
	return func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}
}
