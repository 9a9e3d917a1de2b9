package attribution

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateStuckness_EditSilence(t *testing.T) {
	now := time.Now()

	t.Run("strong: over five minutes", func(t *testing.T) {
		events := []RecentEvent{
			{ToolName: "Read", Timestamp: now.Add(-time.Minute)},
			{ToolName: "Edit", Timestamp: now.Add(-6 * time.Minute)},
		}
		result := EvaluateStuckness(events, nil, now)
		assert.True(t, result.Stuck)
		assert.Contains(t, result.Reason, "no file edits")
	})

	t.Run("recent edit is fine", func(t *testing.T) {
		events := []RecentEvent{
			{ToolName: "Edit", Timestamp: now.Add(-time.Minute)},
		}
		result := EvaluateStuckness(events, nil, now)
		assert.False(t, result.Stuck)
	})
}

func TestEvaluateStuckness_ToolRepetition(t *testing.T) {
	now := time.Now()

	t.Run("strong: four repeats, same payload", func(t *testing.T) {
		var events []RecentEvent
		for i := 0; i < 4; i++ {
			events = append(events, RecentEvent{
				ToolName:      "Grep",
				PayloadPrefix: "pattern=TODO",
				Timestamp:     now.Add(-time.Duration(i) * time.Second),
			})
		}
		result := EvaluateStuckness(events, nil, now)
		assert.True(t, result.Stuck)
		assert.Contains(t, result.Reason, "Grep")
	})

	t.Run("varied payloads are fine", func(t *testing.T) {
		prefixes := []string{"a", "b", "c", "d"}
		var events []RecentEvent
		for i, p := range prefixes {
			events = append(events, RecentEvent{
				ToolName:      "Grep",
				PayloadPrefix: p,
				Timestamp:     now.Add(-time.Duration(i) * time.Second),
			})
		}
		result := EvaluateStuckness(events, nil, now)
		assert.False(t, result.Stuck)
	})
}

func TestEvaluateStuckness_StepStall(t *testing.T) {
	now := time.Now()

	t.Run("strong: long stall with few events", func(t *testing.T) {
		step := &ActiveStepState{StartedAt: now.Add(-20 * time.Minute), EventCount: 2}
		result := EvaluateStuckness(nil, step, now)
		assert.True(t, result.Stuck)
		assert.Contains(t, result.Reason, "stalled")
	})

	t.Run("busy step is fine", func(t *testing.T) {
		step := &ActiveStepState{StartedAt: now.Add(-20 * time.Minute), EventCount: 12}
		result := EvaluateStuckness(nil, step, now)
		assert.False(t, result.Stuck)
	})
}

func TestEvaluateStuckness_TwoWeakSignals(t *testing.T) {
	now := time.Now()

	// Weak edit silence (4 min) plus weak step stall (11 min, 2 events).
	events := []RecentEvent{
		{ToolName: "Read", Timestamp: now.Add(-time.Minute)},
		{ToolName: "Edit", Timestamp: now.Add(-4 * time.Minute)},
	}
	step := &ActiveStepState{StartedAt: now.Add(-11 * time.Minute), EventCount: 2}

	result := EvaluateStuckness(events, step, now)
	assert.True(t, result.Stuck)
	assert.Contains(t, result.Reason, "weak")
}

func TestEvaluateStuckness_NoSignals(t *testing.T) {
	result := EvaluateStuckness(nil, nil, time.Now())
	assert.False(t, result.Stuck)
	assert.Empty(t, result.Reason)
}
