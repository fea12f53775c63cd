package gameplay

import (
	"strings"

	"cvquest/pkg/engine/dialogue"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/devtools"
	"cvquest/pkg/game/state"
)

// PlayerView is what a renderer needs to draw the player
type PlayerView struct {
	Pos       world.Vec
	Cell      world.Cell
	Facing    world.Facing
	Animation string
	Moving    bool
	Path      []world.Vec
}

// NPCView is one NPC as drawn
type NPCView struct {
	ID          string
	Name        string
	Pos         world.Vec
	Cell        world.Cell
	Indicator   string
	Highlighted bool
}

// DialogueView is the open conversation, if any
type DialogueView struct {
	Active   bool
	Speaker  string
	Text     string
	Awaiting bool
}

// QuestView is a CV quest with progress
type QuestView struct {
	Title       string
	Description string
	Reward      string
	Done        int
	Total       int
	Complete    bool
}

// View is a read-only copy of everything visible this frame
type View struct {
	Grid          *world.Grid
	Player        PlayerView
	NPCs          []NPCView
	Dialogue      DialogueView
	Inventory     bool
	QuestLog      bool
	Help          bool
	Skills        []content.Skill
	Quests        []QuestView
	Notifications []string
	Personal      content.Personal
}

// Snapshot copies the scene state for drawing
func (s *Scene) Snapshot() View {
	m := s.player.Mover
	pos := s.player.Position()
	v := View{
		Grid: s.grid,
		Player: PlayerView{
			Pos:       pos,
			Cell:      s.grid.WorldToCell(pos),
			Facing:    m.Facing(),
			Animation: m.Animation(),
			Moving:    m.IsMoving(),
			Path:      append([]world.Vec(nil), m.Path()...),
		},
		Inventory: s.panels.IsOpen(state.PanelInventory),
		QuestLog:  s.panels.IsOpen(state.PanelQuestLog),
		Help:      s.panels.IsOpen(state.PanelHelp),
		Personal:  s.cv.Personal,
	}

	for _, n := range s.npcs {
		v.NPCs = append(v.NPCs, NPCView{
			ID:          n.ID(),
			Name:        n.Data.Name,
			Pos:         n.Pos,
			Cell:        s.grid.WorldToCell(n.Pos),
			Indicator:   n.Indicator(s.progress),
			Highlighted: n.Highlighted,
		})
	}

	if s.dialogue.IsActive() {
		v.Dialogue = DialogueView{
			Active:   true,
			Speaker:  strings.ToUpper(s.dialogue.Speaker()),
			Text:     s.dialogue.Revealed(),
			Awaiting: s.dialogue.State() == dialogue.AwaitingAdvance,
		}
	}

	for _, name := range s.progress.Skills() {
		sk, ok := s.cv.Skill(name)
		if !ok {
			sk = content.Skill{Name: name}
		}
		v.Skills = append(v.Skills, sk)
	}

	for _, q := range s.cv.Quests {
		done, total, complete := s.progress.QuestStatus(q)
		v.Quests = append(v.Quests, QuestView{
			Title:       q.Title,
			Description: q.Description,
			Reward:      q.Reward,
			Done:        done,
			Total:       total,
			Complete:    complete,
		})
	}

	for _, n := range s.notes.Active() {
		v.Notifications = append(v.Notifications, n.Text)
	}
	return v
}

// DumpMap renders the grid with the player, NPCs and current path as ASCII
func (s *Scene) DumpMap() string {
	var b strings.Builder
	_ = devtools.DumpMap(&b, s.grid, s.player.Mover.Path(), s.marks())
	b.WriteString(devtools.Legend(s.markNames()))
	return b.String()
}

// marks labels NPCs A, B, C... in content order and the player '@'
func (s *Scene) marks() devtools.Marks {
	marks := devtools.Marks{}
	for i, n := range s.npcs {
		marks[s.grid.WorldToCell(n.Pos)] = npcMark(i)
	}
	marks[s.grid.WorldToCell(s.player.Position())] = devtools.SymbolPlayer
	return marks
}

func (s *Scene) markNames() map[rune]string {
	names := map[rune]string{devtools.SymbolPlayer: "player"}
	for i, n := range s.npcs {
		names[npcMark(i)] = n.Data.Name
	}
	return names
}

func npcMark(i int) rune {
	return rune('A' + i%26)
}
