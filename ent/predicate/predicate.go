// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// Commit is the predicate function for commit builders.
type Commit func(*sql.Selector)

// Feature is the predicate function for feature builders.
type Feature func(*sql.Selector)

// FeatureDependency is the predicate function for featuredependency builders.
type FeatureDependency func(*sql.Selector)

// HookEvent is the predicate function for hookevent builders.
type HookEvent func(*sql.Selector)

// Insight is the predicate function for insight builders.
type Insight func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// StatusEvent is the predicate function for statusevent builders.
type StatusEvent func(*sql.Selector)

// Step is the predicate function for step builders.
type Step func(*sql.Selector)
