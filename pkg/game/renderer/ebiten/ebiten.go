package ebiten

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"cvquest/pkg/game/config"
	"cvquest/pkg/game/gameplay"
)

// New creates a new Ebiten renderer
func New(cfg config.Config, log *zap.Logger) *EbitenRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &EbitenRenderer{
		cfg:          cfg,
		log:          log,
		windowWidth:  cfg.Window.Width,
		windowHeight: cfg.Window.Height,
	}
}

// Run opens the window and drives scene until the player quits, the window
// closes or ctx is cancelled.
func (e *EbitenRenderer) Run(ctx context.Context, scene *gameplay.Scene) error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.ctx = ctx
	e.scene = scene

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(e.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	e.log.Info("frontend starting", zap.String("frontend", config.FrontendEbiten))
	err := ebiten.RunGame(e)
	e.log.Info("frontend stopped", zap.String("frontend", config.FrontendEbiten))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout tracks the window size so the view grows with it
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
