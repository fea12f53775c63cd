package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cvquest/pkg/game/content"
)

func TestProgress_GrantsOnce(t *testing.T) {
	p := NewProgress()

	assert.True(t, p.CollectSkill("React"))
	assert.False(t, p.CollectSkill("React"))
	assert.False(t, p.CollectSkill(""))
	assert.True(t, p.CollectSkill("Leadership"))

	assert.True(t, p.CompleteQuest("Meet the Career Guide"))
	assert.False(t, p.CompleteQuest("Meet the Career Guide"))

	assert.Equal(t, []string{"React", "Leadership"}, p.Skills())
	assert.Equal(t, []string{"Meet the Career Guide"}, p.Quests())
	assert.True(t, p.HasSkill("React"))
	assert.False(t, p.HasQuest("React"))
	assert.True(t, p.Has("React"))
}

func TestProgress_QuestStatus(t *testing.T) {
	q := content.Quest{ID: "collect", Requirements: []string{"React", "Meet A", "Leadership"}}
	p := NewProgress()

	done, total, complete := p.QuestStatus(q)
	assert.Equal(t, 0, done)
	assert.Equal(t, 3, total)
	assert.False(t, complete)

	p.CollectSkill("React")
	p.CompleteQuest("Meet A")
	p.CollectSkill("Leadership")

	done, _, complete = p.QuestStatus(q)
	assert.Equal(t, 3, done)
	assert.True(t, complete)

	_, _, complete = p.QuestStatus(content.Quest{})
	assert.False(t, complete, "a quest with no requirements never completes")
}

func TestNotifications_Expire(t *testing.T) {
	n := NewNotifications(time.Second)
	n.Push("a")
	n.Tick(600 * time.Millisecond)
	n.Push("b")

	assert.Len(t, n.Active(), 2)

	n.Tick(400 * time.Millisecond)
	active := n.Active()
	if assert.Len(t, active, 1) {
		assert.Equal(t, "b", active[0].Text)
	}

	n.Tick(time.Second)
	assert.Empty(t, n.Active())
}

func TestNotifications_Cap(t *testing.T) {
	n := NewNotifications(time.Minute)
	for _, s := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		n.Push(s)
	}
	active := n.Active()
	assert.Len(t, active, maxNotifications)
	assert.Equal(t, "3", active[0].Text)
}

func TestPanels(t *testing.T) {
	p := NewPanels()
	assert.True(t, p.IsOpen(PanelHelp))
	assert.False(t, p.IsOpen(PanelInventory))

	assert.True(t, p.Toggle(PanelInventory))
	assert.False(t, p.Toggle(PanelInventory))

	p.Hide(PanelHelp)
	assert.False(t, p.IsOpen(PanelHelp))
	p.Show(PanelQuestLog)
	assert.True(t, p.IsOpen(PanelQuestLog))
}
