package gameplay

import (
	"go.uber.org/zap"

	engineinput "cvquest/pkg/engine/input"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/devtools"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (s *Scene) ProcessIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionContinue:
		if s.dialogue.IsActive() {
			s.dialogue.Input()
			return
		}
		if npc := s.nearestInRange(); npc != nil {
			s.Interact(npc)
		}

	case engineinput.ActionPointer:
		if s.dialogue.IsActive() {
			s.dialogue.Input()
			return
		}
		s.panels.Hide(state.PanelHelp)
		if npc := entities.NPCAt(s.npcs, intent.Point, s.cfg.ClickRadius); npc != nil {
			s.Interact(npc)
			return
		}
		s.cancelPending()
		if !s.player.Mover.MoveTo(intent.Point) {
			s.log.Debug("no path", zap.Stringer("target", s.grid.WorldToCell(intent.Point)))
		}

	case engineinput.ActionMoveUp, engineinput.ActionMoveDown,
		engineinput.ActionMoveLeft, engineinput.ActionMoveRight:
		if s.dialogue.IsActive() {
			return
		}
		f, _ := engineinput.FacingOf(intent.Action)
		s.StepCell(f)

	case engineinput.ActionInventory, engineinput.ActionMenu:
		s.panels.Toggle(state.PanelInventory)

	case engineinput.ActionQuestLog:
		s.panels.Toggle(state.PanelQuestLog)

	case engineinput.ActionHelp:
		s.panels.Toggle(state.PanelHelp)

	case engineinput.ActionQuit:
		s.quit = true

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(s.grid, s.player.Mover.Path(), s.marks(), s.markNames())
		if err != nil {
			s.log.Warn("map dump failed", zap.Error(err))
			return
		}
		s.log.Info("map dumped", zap.String("file", path))
	}
}

// SetHeld records the directional input held this tick. A zero vector means
// no key is down.
func (s *Scene) SetHeld(dir world.Vec) {
	s.held = dir
}

// StepCell walks one tile in direction f. Terminals have no key-up events,
// so they move by whole cells instead of holding a direction.
func (s *Scene) StepCell(f world.Facing) {
	s.cancelPending()
	s.panels.Hide(state.PanelHelp)
	from := s.grid.WorldToCell(s.player.Position())
	to := from.Step(f)
	if !s.grid.IsWalkable(to) {
		return
	}
	s.player.Mover.MoveTo(s.grid.CellToWorld(to))
}

func (s *Scene) nearestInRange() *entities.NPC {
	var best *entities.NPC
	bestDist := 0.0
	pos := s.player.Position()
	for _, n := range s.npcs {
		if !n.InRange(pos, s.cfg.InteractionRadius) {
			continue
		}
		if d := n.Pos.Dist(pos); best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
