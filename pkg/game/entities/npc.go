// Package entities contains the player and NPC types for the CV world.
// They are plain data holders; drawing and physics live elsewhere.
package entities

import (
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/state"
)

// Indicator glyphs shown above an NPC
const (
	IndicatorQuest    = "!"
	IndicatorQuestion = "?"
	IndicatorTalked   = "..."
	IndicatorDone     = "✓"
)

// NPC is a character placed on the map
type NPC struct {
	Data        content.NPC
	Pos         world.Vec
	Highlighted bool
}

// NewNPC places data at the centre of its tile
func NewNPC(data content.NPC, grid *world.Grid) *NPC {
	return &NPC{
		Data: data,
		Pos:  grid.CellToWorld(world.Cell{Col: data.Tile.Col, Row: data.Tile.Row}),
	}
}

// NewNPCs places every NPC in cv
func NewNPCs(cv content.CV, grid *world.Grid) []*NPC {
	npcs := make([]*NPC, 0, len(cv.NPCs))
	for _, d := range cv.NPCs {
		npcs = append(npcs, NewNPC(d, grid))
	}
	return npcs
}

// ID returns the NPC id
func (n *NPC) ID() string {
	return n.Data.ID
}

// InRange reports whether p is within radius of the NPC
func (n *NPC) InRange(p world.Vec, radius float64) bool {
	return n.Pos.Dist(p) <= radius
}

// Hit reports whether a click at p selects this NPC
func (n *NPC) Hit(p world.Vec, radius float64) bool {
	return n.Pos.Dist(p) < radius
}

// TalkedTo reports whether the player finished this NPC's conversation
func (n *NPC) TalkedTo(p *state.Progress) bool {
	return n.Data.Quest != "" && p.HasQuest(n.Data.Quest)
}

// GaveSkill reports whether the player holds this NPC's skill
func (n *NPC) GaveSkill(p *state.Progress) bool {
	return n.Data.Skill != "" && p.HasSkill(n.Data.Skill)
}

// Indicator returns the glyph shown above the NPC
func (n *NPC) Indicator(p *state.Progress) string {
	switch {
	case n.TalkedTo(p) && n.GaveSkill(p):
		return IndicatorDone
	case n.TalkedTo(p):
		return IndicatorTalked
	case n.Data.Quest != "":
		return IndicatorQuest
	default:
		return IndicatorQuestion
	}
}

// NPCAt returns the first NPC hit by a click at p
func NPCAt(npcs []*NPC, p world.Vec, radius float64) *NPC {
	for _, n := range npcs {
		if n.Hit(p, radius) {
			return n
		}
	}
	return nil
}

// FindNPC returns the NPC with id
func FindNPC(npcs []*NPC, id string) *NPC {
	for _, n := range npcs {
		if n.ID() == id {
			return n
		}
	}
	return nil
}
