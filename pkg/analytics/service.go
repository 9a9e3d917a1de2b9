// Package analytics derives read-only views from the event and feature
// graph: recurring patterns, velocity, agent profiles, the daily digest,
// and a keyword-routed query endpoint. Everything here is computed on
// demand; nothing is materialised.
package analytics

import (
	"github.com/ijoka-ai/ijoka/ent"
)

// Default measurement windows in days.
const (
	DefaultVelocityWindowDays = 7
	digestBottleneckLimit     = 5
	digestInsightLimit        = 5
)

// Service computes analytics views over the graph store.
type Service struct {
	client *ent.Client
}

// NewService creates a new analytics Service
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}
