// Package ebiten is the windowed frontend, drawn with Ebitengine.
package ebiten

import "image/color"

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}
	colorWall            = color.RGBA{60, 60, 80, 255}
	colorWallEdge        = color.RGBA{90, 90, 115, 255}
	colorFloor           = color.RGBA{44, 62, 80, 255}
	colorFloorLine       = color.RGBA{52, 73, 94, 255}
	colorPath            = color.RGBA{255, 220, 100, 160}
	colorPlayer          = color.RGBA{0, 255, 0, 255}
	colorNPC             = color.RGBA{100, 150, 255, 255}
	colorNPCHighlight    = color.RGBA{170, 255, 170, 255}
	colorIndicator       = color.RGBA{255, 220, 100, 255}
	colorIndicatorDone   = color.RGBA{100, 255, 150, 255}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorAction          = color.RGBA{180, 150, 250, 255}
	colorPanelBackground = color.RGBA{30, 30, 50, 220}
	colorPanelBorder     = color.RGBA{100, 100, 130, 255}
	colorNotification    = color.RGBA{100, 255, 150, 255}
)

// Layout constants, in logical pixels
const (
	baseFontSize   = 16.0
	titleFontSize  = 18.0
	labelFontSize  = 12.0
	panelPadding   = 16
	panelRadius    = 8
	dialogueHeight = 150
	dialogueMargin = 20
	npcRadius      = 12
	playerRadius   = 11
	pathDotRadius  = 3
)
