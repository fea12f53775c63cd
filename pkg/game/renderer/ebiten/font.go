package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("ebiten: load sans font: %w", err)
	}
	if e.boldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("ebiten: load bold font: %w", err)
	}
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("ebiten: load mono font: %w", err)
	}
	return nil
}

// getSansFontFace returns a cached sans-serif font face for UI text
func (e *EbitenRenderer) getSansFontFace() *text.GoTextFace {
	if e.cachedSansFace == nil {
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: baseFontSize}
	}
	return e.cachedSansFace
}

// getTitleFontFace returns a cached bold face for speaker names and panel titles
func (e *EbitenRenderer) getTitleFontFace() *text.GoTextFace {
	if e.cachedTitleFace == nil {
		e.cachedTitleFace = &text.GoTextFace{Source: e.boldFontSource, Size: titleFontSize}
	}
	return e.cachedTitleFace
}

// getLabelFontFace returns a small face for NPC names
func (e *EbitenRenderer) getLabelFontFace() *text.GoTextFace {
	if e.cachedLabelFace == nil {
		e.cachedLabelFace = &text.GoTextFace{Source: e.sansFontSource, Size: labelFontSize}
	}
	return e.cachedLabelFace
}

// getMonoFontFace returns a monospace face for indicators
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.cachedMonoFace == nil {
		e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: baseFontSize}
	}
	return e.cachedMonoFace
}
