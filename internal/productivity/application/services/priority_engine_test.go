package services_test

import (
	"testing"
	"time"

	"github.com/daybook-dev/daybook/internal/productivity/application/services"
	"github.com/daybook-dev/daybook/internal/productivity/domain/task"
	"github.com/daybook-dev/daybook/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow pins "now" to mid-day so due-date proximity is deterministic.
func fixedNow() time.Time {
	return time.Date(2024, time.March, 10, 13, 30, 0, 0, time.Local)
}

func newEngine() *services.PriorityEngine {
	return services.NewPriorityEngine(services.DefaultPriorityEngineConfig(), fixedNow)
}

func newTask(t *testing.T, title, details string, due string) *task.Task {
	t.Helper()
	tk, err := task.New(title, task.ModeQuick)
	require.NoError(t, err)
	tk.SetDetails(details)
	if due != "" {
		require.NoError(t, tk.SetDueDate(domain.DayKey(due)))
	}
	return tk
}

func TestPriorityEngine_Score(t *testing.T) {
	engine := newEngine()

	t.Run("plain task scores the base", func(t *testing.T) {
		score, tier, _ := engine.Score(newTask(t, "water plants", "", ""), 0)
		assert.Equal(t, 50, score)
		assert.Equal(t, task.TierP2, tier)
	})

	t.Run("due tomorrow adds the top bonus", func(t *testing.T) {
		score, tier, _ := engine.Score(newTask(t, "water plants", "", "2024-03-11"), 0)
		assert.Equal(t, 75, score)
		assert.Equal(t, task.TierP1, tier)
	})

	t.Run("past due stays in the top bucket with no extra urgency", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "water plants", "", "2024-02-01"), 0)
		assert.Equal(t, 75, score)
	})

	t.Run("due in two days", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "water plants", "", "2024-03-12"), 0)
		assert.Equal(t, 65, score)
	})

	t.Run("due in five days", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "water plants", "", "2024-03-15"), 0)
		assert.Equal(t, 60, score)
	})

	t.Run("due in ten days adds nothing", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "water plants", "", "2024-03-20"), 0)
		assert.Equal(t, 50, score)
	})

	t.Run("keyword bonuses stack independently", func(t *testing.T) {
		// urgent (+15), critical (+10), pay (+5) all stack.
		score, tier, _ := engine.Score(newTask(t, "urgent: pay critical invoice", "", ""), 0)
		assert.Equal(t, 80, score)
		assert.Equal(t, task.TierP1, tier)
	})

	t.Run("one bonus per keyword group", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "urgent asap now", "", ""), 0)
		assert.Equal(t, 65, score)
	})

	t.Run("someday penalty", func(t *testing.T) {
		score, tier, _ := engine.Score(newTask(t, "maybe learn piano someday", "", ""), 0)
		assert.Equal(t, 40, score)
		assert.Equal(t, task.TierP2, tier)
	})

	t.Run("details are scanned too", func(t *testing.T) {
		score, _, _ := engine.Score(newTask(t, "invoice", "must send it", ""), 0)
		assert.Equal(t, 65, score)
	})

	t.Run("boost is clamped with the rest", func(t *testing.T) {
		tk := newTask(t, "urgent must pay now", "", "2024-03-11")
		// 50 + 25 + 15 + 10 + 5 = 105, boost 10 -> clamped to 100.
		score, tier, _ := engine.Score(tk, 10)
		assert.Equal(t, 100, score)
		assert.Equal(t, task.TierP1, tier)
	})

	t.Run("floor clamp", func(t *testing.T) {
		score, tier, _ := engine.Score(newTask(t, "maybe someday", "", ""), -100)
		assert.Equal(t, 0, score)
		assert.Equal(t, task.TierP3, tier)
	})
}

func TestPriorityEngine_ScoreRange(t *testing.T) {
	engine := newEngine()
	titles := []string{
		"x", "urgent asap now must critical call send pay",
		"maybe someday", "urgent maybe", "pay rent",
	}
	dues := []string{"", "2024-01-01", "2024-03-10", "2024-03-13", "2024-12-31"}
	boosts := []int{-50, 0, 10, 50}

	for _, title := range titles {
		for _, due := range dues {
			for _, boost := range boosts {
				score, _, _ := engine.Score(newTask(t, title, "", due), boost)
				assert.GreaterOrEqual(t, score, 0)
				assert.LessOrEqual(t, score, 100)
			}
		}
	}
}

func TestPriorityEngine_Rescore(t *testing.T) {
	engine := newEngine()
	tk := newTask(t, "send invoice", "", "")
	engine.Rescore(tk)
	assert.Equal(t, 55, tk.Score())
	assert.Equal(t, task.TierP2, tk.Tier())

	engine.RescoreWithBoost(tk)
	assert.Equal(t, 65, tk.Score())
}
