// Package state tracks player progress and transient UI state.
package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"cvquest/pkg/game/content"
)

// Progress records what the player has collected and completed
type Progress struct {
	skills mapset.Set[string]
	quests mapset.Set[string]

	// insertion order, for display
	skillOrder []string
	questOrder []string
}

// NewProgress creates empty progress
func NewProgress() *Progress {
	return &Progress{
		skills: mapset.New[string](),
		quests: mapset.New[string](),
	}
}

// CollectSkill records a skill. It returns false if it was already collected.
func (p *Progress) CollectSkill(name string) bool {
	if name == "" || p.skills.Has(name) {
		return false
	}
	p.skills.Put(name)
	p.skillOrder = append(p.skillOrder, name)
	return true
}

// CompleteQuest records a quest. It returns false if it was already complete.
func (p *Progress) CompleteQuest(name string) bool {
	if name == "" || p.quests.Has(name) {
		return false
	}
	p.quests.Put(name)
	p.questOrder = append(p.questOrder, name)
	return true
}

// HasSkill checks if a skill has been collected
func (p *Progress) HasSkill(name string) bool {
	return p.skills.Has(name)
}

// HasQuest checks if a quest has been completed
func (p *Progress) HasQuest(name string) bool {
	return p.quests.Has(name)
}

// Skills returns collected skills in the order they were collected
func (p *Progress) Skills() []string {
	return append([]string(nil), p.skillOrder...)
}

// Quests returns completed quests in the order they were completed
func (p *Progress) Quests() []string {
	return append([]string(nil), p.questOrder...)
}

// Has reports whether a requirement is met, whether it names a skill or a quest
func (p *Progress) Has(requirement string) bool {
	return p.HasSkill(requirement) || p.HasQuest(requirement)
}

// QuestStatus counts met requirements of q
func (p *Progress) QuestStatus(q content.Quest) (done, total int, complete bool) {
	total = len(q.Requirements)
	for _, req := range q.Requirements {
		if p.Has(req) {
			done++
		}
	}
	return done, total, total > 0 && done == total
}

// Notification is a transient message shown on screen
type Notification struct {
	Text      string
	Remaining time.Duration
}

// Notifications is a FIFO of messages that expire
type Notifications struct {
	ttl   time.Duration
	items []Notification
}

// maxNotifications caps how many messages are on screen at once
const maxNotifications = 5

// NewNotifications creates a queue whose messages live for ttl
func NewNotifications(ttl time.Duration) *Notifications {
	return &Notifications{ttl: ttl}
}

// Push adds a message, dropping the oldest beyond the cap
func (n *Notifications) Push(text string) {
	n.items = append(n.items, Notification{Text: text, Remaining: n.ttl})
	if len(n.items) > maxNotifications {
		n.items = n.items[len(n.items)-maxNotifications:]
	}
}

// Tick ages every message and drops expired ones
func (n *Notifications) Tick(dt time.Duration) {
	kept := n.items[:0]
	for _, it := range n.items {
		it.Remaining -= dt
		if it.Remaining > 0 {
			kept = append(kept, it)
		}
	}
	n.items = kept
}

// Active returns live messages, oldest first
func (n *Notifications) Active() []Notification {
	return append([]Notification(nil), n.items...)
}

// Panel identifies a toggleable overlay
type Panel int

const (
	PanelInventory Panel = iota
	PanelQuestLog
	PanelHelp
)

// Panels tracks which overlays are open
type Panels struct {
	open map[Panel]bool
}

// NewPanels creates panel state with help shown, as on first launch
func NewPanels() *Panels {
	return &Panels{open: map[Panel]bool{PanelHelp: true}}
}

// Toggle flips a panel and returns its new visibility
func (p *Panels) Toggle(panel Panel) bool {
	p.open[panel] = !p.open[panel]
	return p.open[panel]
}

// Show opens a panel
func (p *Panels) Show(panel Panel) {
	p.open[panel] = true
}

// Hide closes a panel
func (p *Panels) Hide(panel Panel) {
	p.open[panel] = false
}

// IsOpen reports whether a panel is visible
func (p *Panels) IsOpen(panel Panel) bool {
	return p.open[panel]
}
