// Package services implements the core domain operations over the graph
// store: projects and sessions, the feature store, claim arbitration,
// event ingestion and attribution, plan/step management, insights.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced entity does not exist
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPendingFeature is returned by next-feature selection when no
	// pending feature has all blocking dependencies complete
	ErrNoPendingFeature = errors.New("no startable pending feature")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ClaimConflictError is returned when an active, non-self claim holds the
// target feature and override was not requested. It carries the current
// claimant so adapters can show who owns the work.
type ClaimConflictError struct {
	FeatureID string
	HeldBy    string
	SessionID string
}

func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("feature %s is claimed by %s (session %s)", e.FeatureID, e.HeldBy, e.SessionID)
}

// IsClaimConflict checks if an error is a claim conflict
func IsClaimConflict(err error) bool {
	var ce *ClaimConflictError
	return errors.As(err, &ce)
}

// CycleError is returned when a parent link would create a hierarchy cycle
type CycleError struct {
	FeatureID  string
	AncestorID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("linking feature %s under %s would create a cycle", e.FeatureID, e.AncestorID)
}

// IsCycleError checks if an error is a cycle error
func IsCycleError(err error) bool {
	var ce *CycleError
	return errors.As(err, &ce)
}
