package attribution

import (
	"fmt"
	"time"
)

// Stuckness thresholds.
const (
	strongEditSilence = 5 * time.Minute
	weakEditSilence   = 3 * time.Minute
	strongRepetition  = 4
	weakRepetition    = 3
	maxPayloadVariety = 2
	strongStepStall   = 15 * time.Minute
	weakStepStall     = 10 * time.Minute
	strongStepEvents  = 5
	weakStepEvents    = 3
	repetitionWindow  = 10
	payloadPrefixLen  = 100
)

// RecentEvent is the slice of event state the stuckness detector needs,
// newest first.
type RecentEvent struct {
	ToolName      string
	PayloadPrefix string
	Timestamp     time.Time
}

// ActiveStepState describes the session's active step, when one exists.
type ActiveStepState struct {
	StartedAt  time.Time
	EventCount int
}

// StucknessResult reports whether the session looks stuck and why.
type StucknessResult struct {
	Stuck  bool
	Reason string
}

// EvaluateStuckness combines signals with OR semantics: one strong signal
// or two weak signals flips stuck.
func EvaluateStuckness(events []RecentEvent, step *ActiveStepState, now time.Time) StucknessResult {
	weak := 0

	// Signal 1: silence on Edit/Write
	lastEdit := lastEditWrite(events)
	if lastEdit != nil {
		silence := now.Sub(*lastEdit)
		if silence > strongEditSilence {
			return StucknessResult{Stuck: true, Reason: fmt.Sprintf("no file edits for %s", silence.Round(time.Second))}
		}
		if silence > weakEditSilence {
			weak++
		}
	}

	// Signal 2: tool repetition with low payload variance
	tool, repeats, variety := toolRepetition(events)
	if repeats >= strongRepetition && variety <= maxPayloadVariety {
		return StucknessResult{Stuck: true, Reason: fmt.Sprintf("%s repeated %d times with near-identical input", tool, repeats)}
	}
	if repeats >= weakRepetition && variety <= maxPayloadVariety {
		weak++
	}

	// Signal 3: stalled active step
	if step != nil && !step.StartedAt.IsZero() {
		stall := now.Sub(step.StartedAt)
		if stall > strongStepStall && step.EventCount < strongStepEvents {
			return StucknessResult{Stuck: true, Reason: fmt.Sprintf("active step stalled for %s with little activity", stall.Round(time.Minute))}
		}
		if stall > weakStepStall && step.EventCount < weakStepEvents {
			weak++
		}
	}

	if weak >= 2 {
		return StucknessResult{Stuck: true, Reason: "multiple weak stall signals"}
	}
	return StucknessResult{}
}

func lastEditWrite(events []RecentEvent) *time.Time {
	for _, e := range events {
		if e.ToolName == "Edit" || e.ToolName == "Write" {
			ts := e.Timestamp
			return &ts
		}
	}
	return nil
}

// toolRepetition finds the most repeated tool in the newest
// repetitionWindow events and how many distinct payload prefixes it used.
func toolRepetition(events []RecentEvent) (string, int, int) {
	window := events
	if len(window) > repetitionWindow {
		window = window[:repetitionWindow]
	}

	counts := make(map[string]int)
	prefixes := make(map[string]map[string]struct{})
	for _, e := range window {
		if e.ToolName == "" {
			continue
		}
		counts[e.ToolName]++
		prefix := e.PayloadPrefix
		if len(prefix) > payloadPrefixLen {
			prefix = prefix[:payloadPrefixLen]
		}
		if prefixes[e.ToolName] == nil {
			prefixes[e.ToolName] = make(map[string]struct{})
		}
		prefixes[e.ToolName][prefix] = struct{}{}
	}

	bestTool, bestCount := "", 0
	for tool, count := range counts {
		if count > bestCount {
			bestTool, bestCount = tool, count
		}
	}
	if bestTool == "" {
		return "", 0, 0
	}
	return bestTool, bestCount, len(prefixes[bestTool])
}
