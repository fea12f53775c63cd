package gameplay

import (
	"go.uber.org/zap"

	"cvquest/pkg/engine/dialogue"
	"cvquest/pkg/game/content"
	"cvquest/pkg/game/entities"
	"cvquest/pkg/game/i18n"
)

// Interact talks to npc when the player is standing still nearby. Otherwise
// the player walks over and the scene checks again every InteractRecheck
// while the walk lasts.
func (s *Scene) Interact(npc *entities.NPC) {
	if npc == nil || s.dialogue.IsActive() {
		return
	}
	s.cancelPending()

	if s.canInteract(npc) {
		s.talk(npc)
		return
	}
	if !s.player.Mover.MoveTo(npc.Pos) {
		s.log.Debug("npc unreachable", zap.String("npc", npc.ID()))
		return
	}
	s.scheduleRecheck(npc.ID())
}

func (s *Scene) canInteract(npc *entities.NPC) bool {
	return s.player.Mover.CanReach(npc.Pos, s.cfg.InteractionRadius)
}

func (s *Scene) scheduleRecheck(id string) {
	s.pendingInteract = s.timers.After(s.cfg.InteractRecheck, func() {
		s.pendingInteract = 0
		npc := entities.FindNPC(s.npcs, id)
		if npc == nil || s.dialogue.IsActive() {
			return
		}
		switch {
		case s.canInteract(npc):
			s.talk(npc)
		case s.player.Mover.IsMoving():
			s.scheduleRecheck(id)
		}
	})
}

func (s *Scene) cancelPending() {
	if s.pendingInteract != 0 {
		s.timers.Cancel(s.pendingInteract)
		s.pendingInteract = 0
	}
}

func (s *Scene) talk(npc *entities.NPC) {
	s.player.Mover.Stop()
	if !s.dialogue.Show(dialogue.Request{
		Speaker: npc.Data.Name,
		Text:    npc.Data.Dialogue,
		Tag:     npc.ID(),
	}) {
		return
	}
	s.log.Info("dialogue started", zap.String("npc", npc.ID()))
}

// handleDialogueEvents grants rewards for every finished conversation
func (s *Scene) handleDialogueEvents() {
	for _, ev := range s.dialogue.Events() {
		npc := entities.FindNPC(s.npcs, ev.Tag)
		if npc == nil {
			s.log.Warn("dialogue finished for unknown npc", zap.String("tag", ev.Tag))
			continue
		}
		s.grant(npc.Data)
	}
}

func (s *Scene) grant(data content.NPC) {
	if data.Skill != "" && s.progress.CollectSkill(data.Skill) {
		s.notes.Push(i18n.T("SKILL_ACQUIRED", data.Skill))
		s.log.Info("skill acquired", zap.String("skill", data.Skill), zap.String("npc", data.ID))
	}
	if data.Quest != "" && s.progress.CompleteQuest(data.Quest) {
		s.notes.Push(i18n.T("QUEST_COMPLETED", data.Quest))
		s.log.Info("quest completed", zap.String("quest", data.Quest), zap.String("npc", data.ID))
	}
	s.checkGoals()
}

// checkGoals announces each CV quest once, the first time all of its
// requirements are held.
func (s *Scene) checkGoals() {
	for _, q := range s.cv.Quests {
		if s.goals.Has(q.ID) {
			continue
		}
		if _, _, complete := s.progress.QuestStatus(q); !complete {
			continue
		}
		s.goals.Put(q.ID)
		s.notes.Push(i18n.T("GOAL_COMPLETED", q.Title, q.Reward))
		s.log.Info("goal completed", zap.String("quest", q.ID), zap.String("reward", q.Reward))
	}
}
