package renderer

import (
	"context"

	"cvquest/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleWall
	StyleFloor
	StylePath
	StylePlayer
	StyleNPC
	StyleNPCHighlighted
	StyleIndicator
	StyleSpeaker
	StyleSubtle
	StyleTitle
	StyleNotification
)

// Renderer is a frontend that drives a scene until the player quits or ctx
// is cancelled. Implementations own the loop goroutine: every call into the
// scene happens there.
type Renderer interface {
	Run(ctx context.Context, scene *gameplay.Scene) error
}
