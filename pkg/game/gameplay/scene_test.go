package gameplay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	engineinput "cvquest/pkg/engine/input"
	"cvquest/pkg/engine/world"
	"cvquest/pkg/game/config"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/i18n"
)

const frame = 16 * time.Millisecond

// makeBundle builds a 7x7 bordered room with one NPC in the far corner
func makeBundle(t *testing.T) *content.Bundle {
	t.Helper()
	return &content.Bundle{
		CV: content.CV{
			Personal: content.Personal{Name: "Tester"},
			Skills:   []content.Skill{{Name: "Go", Category: "Backend"}},
			NPCs: []content.NPC{{
				ID:       "guide",
				Name:     "Career Guide",
				Dialogue: "Hi!",
				Skill:    "Go",
				Quest:    "Meet the Guide",
				Tile:     content.Tile{Col: 5, Row: 5},
			}},
			Quests: []content.Quest{{
				ID:           "all",
				Title:        "Everything",
				Requirements: []string{"Go", "Meet the Guide"},
				Reward:       "Badge",
			}},
		},
		Map: content.Map{Width: 7, Height: 7, TileSize: 32, Tiles: content.BorderTiles(7, 7)},
	}
}

func makeScene(t *testing.T, mutate ...func(*config.Config)) *Scene {
	t.Helper()
	require.NoError(t, i18n.Load("en"))
	cfg := config.Default()
	for _, fn := range mutate {
		fn(&cfg)
	}
	s, err := NewScene(cfg, makeBundle(t), zap.NewNop())
	require.NoError(t, err)
	return s
}

func cellCentre(s *Scene, col, row int) world.Vec {
	return s.Grid().CellToWorld(world.Cell{Col: col, Row: row})
}

// runUntil ticks the scene until cond holds or maxTicks pass
func runUntil(s *Scene, maxTicks int, cond func() bool) bool {
	for i := 0; i < maxTicks; i++ {
		if cond() {
			return true
		}
		s.Update(frame)
	}
	return cond()
}

func pointer(p world.Vec) engineinput.Intent {
	return engineinput.Intent{Action: engineinput.ActionPointer, Point: p}
}

func TestNewScene(t *testing.T) {
	s := makeScene(t)
	assert.Equal(t, cellCentre(s, 1, 1), s.Player().Position())
	assert.Len(t, s.NPCs(), 1)
	assert.True(t, s.Snapshot().Help, "help starts open")
	assert.False(t, s.Quit())
}

func TestNewScene_NilBundle(t *testing.T) {
	_, err := NewScene(config.Default(), nil, nil)
	assert.Error(t, err)
}

func TestPointer_WalksToCell(t *testing.T) {
	s := makeScene(t)
	target := cellCentre(s, 4, 3)

	s.ProcessIntent(pointer(target))
	require.True(t, s.Player().Mover.IsMoving())
	assert.False(t, s.Snapshot().Help, "clicking dismisses help")

	ok := runUntil(s, 600, func() bool { return !s.Player().Mover.IsMoving() })
	require.True(t, ok)
	assert.Equal(t, world.Cell{Col: 4, Row: 3}, s.Grid().WorldToCell(s.Player().Position()))
}

func TestInteract_WalksThenTalks(t *testing.T) {
	s := makeScene(t)
	npc := s.NPCs()[0]

	s.ProcessIntent(pointer(npc.Pos))
	assert.True(t, s.Player().Mover.IsMoving())
	assert.False(t, s.Dialogue().IsActive(), "too far away to talk yet")

	ok := runUntil(s, 600, func() bool { return s.Dialogue().IsActive() })
	require.True(t, ok, "re-check should open the dialogue after arriving")
	assert.Equal(t, "Career Guide", s.Dialogue().Speaker())
	assert.False(t, s.Player().Mover.IsMoving())
}

func TestInteract_InRangeTalksImmediately(t *testing.T) {
	s := makeScene(t)
	npc := s.NPCs()[0]
	s.point.SetPosition(cellCentre(s, 4, 5))

	s.Interact(npc)
	assert.True(t, s.Dialogue().IsActive())
}

func TestInteract_RecheckCancelledByNewClick(t *testing.T) {
	s := makeScene(t)
	s.ProcessIntent(pointer(s.NPCs()[0].Pos))
	s.ProcessIntent(pointer(cellCentre(s, 1, 5)))

	for i := 0; i < 400; i++ {
		s.Update(frame)
	}
	assert.False(t, s.Dialogue().IsActive())
	assert.Equal(t, world.Cell{Col: 1, Row: 5}, s.Grid().WorldToCell(s.Player().Position()))
}

func TestDialogueCompletion_GrantsOnce(t *testing.T) {
	s := makeScene(t)
	npc := s.NPCs()[0]
	s.point.SetPosition(cellCentre(s, 4, 5))
	assert.Equal(t, entities.IndicatorQuest, s.Snapshot().NPCs[0].Indicator)

	s.Interact(npc)
	view := s.Snapshot()
	assert.Equal(t, "CAREER GUIDE", view.Dialogue.Speaker)

	cont := engineinput.Intent{Action: engineinput.ActionContinue}
	s.ProcessIntent(cont) // skip reveal
	assert.Equal(t, "Hi!", s.Snapshot().Dialogue.Text)
	assert.True(t, s.Snapshot().Dialogue.Awaiting)
	assert.False(t, s.Progress().HasSkill("Go"), "skipping does not complete")

	s.ProcessIntent(cont) // advance
	s.Update(frame)

	assert.True(t, s.Progress().HasSkill("Go"))
	assert.True(t, s.Progress().HasQuest("Meet the Guide"))
	view = s.Snapshot()
	assert.Equal(t, []string{
		"Skill Acquired: Go!",
		"Quest Completed: Meet the Guide!",
		"Everything complete! Reward: Badge",
	}, view.Notifications)
	assert.Equal(t, entities.IndicatorDone, view.NPCs[0].Indicator)
	require.Len(t, view.Quests, 1)
	assert.True(t, view.Quests[0].Complete)
	require.Len(t, view.Skills, 1)
	assert.Equal(t, "Backend", view.Skills[0].Category)

	// talking again grants nothing new
	s.Interact(npc)
	s.ProcessIntent(cont)
	s.ProcessIntent(cont)
	s.Update(frame)
	assert.Len(t, s.Snapshot().Notifications, 3)
}

func TestDialogue_FreezesMovement(t *testing.T) {
	s := makeScene(t)
	s.point.SetPosition(cellCentre(s, 4, 5))
	s.Interact(s.NPCs()[0])
	before := s.Player().Position()

	s.SetHeld(world.Vec{X: -1})
	for i := 0; i < 10; i++ {
		s.Update(frame)
	}
	assert.Equal(t, before, s.Player().Position())
	assert.True(t, s.point.Velocity().IsZero())
}

func TestHeldDirection_CancelsPath(t *testing.T) {
	s := makeScene(t)
	s.ProcessIntent(pointer(cellCentre(s, 5, 1)))
	require.True(t, s.Player().Mover.IsMoving())

	s.SetHeld(world.Vec{Y: 1})
	s.Update(frame)
	assert.False(t, s.Player().Mover.IsMoving())
	assert.Equal(t, world.Down, s.Player().Mover.Facing())
	assert.Equal(t, "walk_down", s.Player().Mover.Animation())

	s.SetHeld(world.Vec{})
	s.Update(frame)
	assert.Equal(t, "idle_down", s.Player().Mover.Animation())
}

func TestHeldDirection_StopsAtWalls(t *testing.T) {
	s := makeScene(t)
	s.SetHeld(world.Vec{X: -1, Y: -1})
	for i := 0; i < 120; i++ {
		s.Update(frame)
	}
	c := s.Grid().WorldToCell(s.Player().Position())
	assert.Equal(t, world.Cell{Col: 1, Row: 1}, c)
}

func TestStepCell(t *testing.T) {
	s := makeScene(t)

	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionMoveUp})
	assert.False(t, s.Player().Mover.IsMoving(), "wall above the start tile")

	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionMoveRight})
	require.True(t, s.Player().Mover.IsMoving())
	runUntil(s, 200, func() bool { return !s.Player().Mover.IsMoving() })
	assert.Equal(t, world.Cell{Col: 2, Row: 1}, s.Grid().WorldToCell(s.Player().Position()))
}

func TestContinue_TalksToNearbyNPC(t *testing.T) {
	s := makeScene(t)
	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionContinue})
	assert.False(t, s.Dialogue().IsActive(), "nobody nearby")

	s.point.SetPosition(cellCentre(s, 5, 4))
	s.Update(frame)
	assert.True(t, s.Snapshot().NPCs[0].Highlighted)
	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionContinue})
	assert.True(t, s.Dialogue().IsActive())
}

func TestPanelsAndQuit(t *testing.T) {
	s := makeScene(t)
	tests := []struct {
		action engineinput.Action
		check  func(View) bool
	}{
		{engineinput.ActionInventory, func(v View) bool { return v.Inventory }},
		{engineinput.ActionQuestLog, func(v View) bool { return v.QuestLog }},
		{engineinput.ActionHelp, func(v View) bool { return !v.Help }},
	}
	for _, tt := range tests {
		t.Run(engineinput.ActionName(tt.action), func(t *testing.T) {
			s.ProcessIntent(engineinput.Intent{Action: tt.action})
			assert.True(t, tt.check(s.Snapshot()))
		})
	}

	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionMenu})
	assert.False(t, s.Snapshot().Inventory, "menu toggles the inventory")

	s.ProcessIntent(engineinput.Intent{Action: engineinput.ActionQuit})
	assert.True(t, s.Quit())
}

func TestReload_KeepsProgressStopsWalk(t *testing.T) {
	s := makeScene(t)
	s.Progress().CollectSkill("Go")
	s.ProcessIntent(pointer(cellCentre(s, 5, 5)))
	s.Update(frame)
	gen := s.Grid().Generation()

	b := makeBundle(t)
	b.CV.NPCs[0].Tile = content.Tile{Col: 3, Row: 3}
	require.NoError(t, s.Reload(b))

	assert.NotEqual(t, gen, s.Grid().Generation())
	assert.False(t, s.Player().Mover.IsMoving())
	assert.True(t, s.Progress().HasSkill("Go"))
	assert.Equal(t, cellCentre(s, 3, 3), s.NPCs()[0].Pos)
}

func TestDumpMap(t *testing.T) {
	s := makeScene(t)
	dump := s.DumpMap()
	lines := strings.Split(dump, "\n")
	assert.Equal(t, "#######", lines[0])
	assert.Equal(t, "#@....#", lines[1])
	assert.Equal(t, "#....A#", lines[5])
	assert.Contains(t, dump, "A Career Guide")
}

func TestPhysicsBody_FollowsPath(t *testing.T) {
	s := makeScene(t, func(c *config.Config) { c.Physics = true })
	require.NotNil(t, s.phys)
	target := cellCentre(s, 4, 1)

	s.ProcessIntent(pointer(target))
	ok := runUntil(s, 600, func() bool { return !s.Player().Mover.IsMoving() })
	require.True(t, ok)
	assert.InDelta(t, target.X, s.Player().Position().X, 8)
	assert.InDelta(t, target.Y, s.Player().Position().Y, 8)
}

func TestQueueReload_AppliedOnUpdate(t *testing.T) {
	s := makeScene(t)
	gen := s.Grid().Generation()

	first := makeBundle(t)
	second := makeBundle(t)
	second.CV.NPCs[0].Tile = content.Tile{Col: 2, Row: 4}
	s.QueueReload(first)
	s.QueueReload(second)
	assert.Equal(t, gen, s.Grid().Generation(), "nothing changes before Update")

	s.Update(frame)
	assert.NotEqual(t, gen, s.Grid().Generation())
	assert.Equal(t, cellCentre(s, 2, 4), s.NPCs()[0].Pos, "newest bundle wins")
}

func TestSnapshot_PathIsACopy(t *testing.T) {
	s := makeScene(t)
	s.ProcessIntent(pointer(cellCentre(s, 5, 1)))

	v := s.Snapshot()
	require.NotEmpty(t, v.Player.Path)
	want := append([]world.Vec(nil), s.Player().Mover.Path()...)

	v.Player.Path[0] = world.Vec{X: -1, Y: -1}
	assert.Equal(t, want, s.Player().Mover.Path())
}
