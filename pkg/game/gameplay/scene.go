// Package gameplay ties the engine pieces into the CV world: the player walks,
// talks to NPCs and collects skills and quests.
package gameplay

import (
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"cvquest/pkg/engine/dialogue"
	"cvquest/pkg/engine/motion"
	"cvquest/pkg/engine/pathfind"
	"cvquest/pkg/engine/timer"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/physics"
	"cvquest/pkg/game/state"
)

// playerSizeRatio is the player collision box relative to a tile
const playerSizeRatio = 0.75

// Scene is one running game. It is not safe for concurrent use: frontends
// call it from their loop goroutine only.
type Scene struct {
	cfg config.Config
	log *zap.Logger

	cv   content.CV
	grid *world.Grid

	finder *pathfind.Finder
	phys   *physics.World
	point  *motion.PointBody
	player *entities.Player
	npcs   []*entities.NPC

	dialogue *dialogue.Machine
	timers   *timer.Scheduler
	progress *state.Progress
	notes    *state.Notifications
	panels   *state.Panels

	held            world.Vec
	quit            bool
	goals           mapset.Set[string]
	pendingInteract timer.ID

	reloads chan *content.Bundle
}

// NewScene builds a scene from loaded content
func NewScene(cfg config.Config, bundle *content.Bundle, log *zap.Logger) (*Scene, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if bundle == nil {
		return nil, fmt.Errorf("gameplay: nil content bundle")
	}

	s := &Scene{
		cfg:      cfg,
		log:      log,
		dialogue: dialogue.New(dialogue.WithRevealDelay(cfg.TypewriterDelay)),
		timers:   timer.New(),
		progress: state.NewProgress(),
		notes:    state.NewNotifications(cfg.NotificationTTL),
		panels:   state.NewPanels(),
		goals:    mapset.New[string](),
		reloads:  make(chan *content.Bundle, 1),
	}
	if err := s.load(bundle, nil); err != nil {
		return nil, err
	}

	log.Info("scene ready",
		zap.Int("cols", s.grid.Width()),
		zap.Int("rows", s.grid.Height()),
		zap.Int("npcs", len(s.npcs)),
		zap.Bool("physics", s.phys != nil),
	)
	return s, nil
}

// Reload swaps in new content. Progress survives; any walk in flight stops.
func (s *Scene) Reload(bundle *content.Bundle) error {
	if bundle == nil {
		return fmt.Errorf("gameplay: nil content bundle")
	}
	s.cancelPending()
	pos := s.player.Position()
	if err := s.load(bundle, &pos); err != nil {
		return err
	}
	s.log.Info("content reloaded",
		zap.Uint64("generation", s.grid.Generation()),
		zap.Int("npcs", len(s.npcs)),
	)
	return nil
}

// QueueReload hands new content to the loop goroutine. It is safe to call
// from any goroutine; the newest bundle wins if Update has not run yet.
func (s *Scene) QueueReload(bundle *content.Bundle) {
	for {
		select {
		case s.reloads <- bundle:
			return
		default:
		}
		select {
		case <-s.reloads:
		default:
		}
	}
}

func (s *Scene) applyQueuedReload() {
	select {
	case b := <-s.reloads:
		if err := s.Reload(b); err != nil {
			s.log.Error("content reload failed", zap.Error(err))
		}
	default:
	}
}

// load builds the grid and everything on it. keep is the player position to
// preserve across a reload, if it is still walkable.
func (s *Scene) load(bundle *content.Bundle, keep *world.Vec) error {
	tileSize := bundle.Map.TileSize
	if tileSize <= 0 {
		tileSize = s.cfg.TileSize
	}
	grid, err := world.Build(bundle.Map.Tiles, tileSize)
	if err != nil {
		return fmt.Errorf("gameplay: build grid: %w", err)
	}

	start, err := entities.StartPosition(grid)
	if err != nil {
		return fmt.Errorf("gameplay: %w", err)
	}
	if keep != nil && grid.IsWalkable(grid.WorldToCell(*keep)) {
		start = *keep
	}

	s.cv = bundle.CV
	s.grid = grid
	s.finder = pathfind.New(grid)
	s.npcs = entities.NewNPCs(bundle.CV, grid)

	if s.player != nil && s.phys == nil && !s.cfg.Physics {
		// same body, new map: the mover stops and paths against the new grid
		s.player.Mover.SetFinder(s.finder)
		s.point.SetPosition(start)
		s.point.SetVelocity(world.Vec{})
		return nil
	}
	s.spawnPlayer(start)
	return nil
}

func (s *Scene) spawnPlayer(pos world.Vec) {
	var body motion.Body
	s.phys, s.point = nil, nil
	if s.cfg.Physics {
		s.phys = physics.NewWorld(s.grid)
		body = s.phys.AddPlayer(pos, s.grid.TileSize()*playerSizeRatio)
	} else {
		s.point = motion.NewPointBody(pos)
		body = s.point
	}

	mover := motion.NewMover(body, s.finder,
		motion.WithSpeed(s.cfg.PlayerSpeed),
		motion.WithArrivalThreshold(s.cfg.ArrivalThreshold),
		motion.WithGeneration(func() uint64 { return s.grid.Generation() }),
	)
	s.player = entities.NewPlayer(body, mover)
}

// Grid returns the current walkability grid
func (s *Scene) Grid() *world.Grid {
	return s.grid
}

// Player returns the player entity
func (s *Scene) Player() *entities.Player {
	return s.player
}

// NPCs returns the placed NPCs
func (s *Scene) NPCs() []*entities.NPC {
	return s.npcs
}

// Dialogue returns the dialogue machine
func (s *Scene) Dialogue() *dialogue.Machine {
	return s.dialogue
}

// Progress returns collected skills and quests
func (s *Scene) Progress() *state.Progress {
	return s.progress
}

// Panels returns overlay visibility
func (s *Scene) Panels() *state.Panels {
	return s.panels
}

// Quit reports whether the player asked to leave
func (s *Scene) Quit() bool {
	return s.quit
}

// TickRate is the fixed step frontends should drive Update with
func TickRate() time.Duration {
	return time.Second / 60
}
