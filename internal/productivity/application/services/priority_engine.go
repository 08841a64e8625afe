// Package services contains the productivity application services.
package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/daybook-dev/daybook/internal/shared/domain"
)

// PriorityEngineConfig tunes how signals combine into a score.
type PriorityEngineConfig struct {
	Base          int
	DueSoonBonus  int // due within a day, or already past due
	DueCloseBonus int // due within three days
	DueWeekBonus  int // due within seven days
	PromoteBoost  int // applied once when a task is promoted from a note
}

// DefaultPriorityEngineConfig returns the production configuration.
func DefaultPriorityEngineConfig() PriorityEngineConfig {
	return PriorityEngineConfig{
		Base:          50,
		DueSoonBonus:  25,
		DueCloseBonus: 15,
		DueWeekBonus:  10,
		PromoteBoost:  10,
	}
}

// keywordRule adds a signed bonus when any of its words appears in the
// task text. Rules are independent; every matching bonus stacks.
type keywordRule struct {
	words []string
	bonus int
}

var keywordRules = []keywordRule{
	{words: []string{"urgent", "asap", "now"}, bonus: 15},
	{words: []string{"must", "critical"}, bonus: 10},
	{words: []string{"call", "send", "pay"}, bonus: 5},
	{words: []string{"maybe", "someday"}, bonus: -10},
}

// PriorityEngine computes a task's urgency score and tier from its due date
// and text. Scores are clamped to [0,100]; tiers are P1 (>=70), P2 (>=40),
// else P3.
type PriorityEngine struct {
	config PriorityEngineConfig
	now    func() time.Time
}

// NewPriorityEngine creates a new engine with the given configuration.
func NewPriorityEngine(cfg PriorityEngineConfig, now func() time.Time) *PriorityEngine {
	if now == nil {
		now = time.Now
	}
	return &PriorityEngine{config: cfg, now: now}
}

// Score computes the score, tier, and a human-readable explanation.
// The boost is added after the base computation; the whole result,
// boost included, is clamped afterwards.
func (e *PriorityEngine) Score(t *task.Task, boost int) (int, task.Tier, string) {
	score := e.config.Base

	due := e.dueBonus(t.DueDate())
	score += due

	text := strings.ToLower(t.Title() + " " + t.Details())
	keywords := 0
	for _, rule := range keywordRules {
		for _, word := range rule.words {
			if strings.Contains(text, word) {
				keywords += rule.bonus
				break
			}
		}
	}
	score += keywords

	score += boost
	score = clamp(score, 0, 100)

	tier := task.TierP3
	switch {
	case score >= 70:
		tier = task.TierP1
	case score >= 40:
		tier = task.TierP2
	}

	explanation := fmt.Sprintf("base=%d due=%d keywords=%d boost=%d",
		e.config.Base, due, keywords, boost)

	return score, tier, explanation
}

// Rescore recomputes and stores the task's score and tier. Call it after
// every mutation of title, details, or due date.
func (e *PriorityEngine) Rescore(t *task.Task) {
	score, tier, _ := e.Score(t, 0)
	t.SetScore(score, tier)
}

// RescoreWithBoost applies a one-time creation boost, e.g. when a task is
// promoted from a voice note.
func (e *PriorityEngine) RescoreWithBoost(t *task.Task) {
	score, tier, _ := e.Score(t, e.config.PromoteBoost)
	t.SetScore(score, tier)
}

// dueBonus maps due-date proximity to a score bonus. Days until due are
// counted between local midnights. A past-due date lands in the same bucket
// as due-today: no extra urgency beyond the top bonus.
func (e *PriorityEngine) dueBonus(due domain.DayKey) int {
	if due.IsZero() {
		return 0
	}
	now := e.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Ceil(due.Time().Sub(today).Hours() / 24))
	switch {
	case days <= 1:
		return e.config.DueSoonBonus
	case days < 3:
		return e.config.DueCloseBonus
	case days < 7:
		return e.config.DueWeekBonus
	default:
		return 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
