package ebiten

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/gameplay"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	cfg config.Config
	log *zap.Logger

	ctx   context.Context
	scene *gameplay.Scene

	// Window dimensions, updated by Layout
	windowWidth  int
	windowHeight int

	// Font sources for text rendering
	sansFontSource *text.GoTextFaceSource
	boldFontSource *text.GoTextFaceSource
	monoFontSource *text.GoTextFaceSource

	// Cached font faces
	cachedSansFace  *text.GoTextFace
	cachedTitleFace *text.GoTextFace
	cachedLabelFace *text.GoTextFace
	cachedMonoFace  *text.GoTextFace

	// Top-left world position of the view, recomputed every Draw
	camera world.Vec

	windowOpenedLogged bool
}
