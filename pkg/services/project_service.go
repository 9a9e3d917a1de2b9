package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/ent/project"
	"github.com/ijoka-ai/ijoka/pkg/database"
)

// ProjectService manages project nodes. Projects are created on first
// reference and never deleted by the core.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// EnsureProject returns the project for the given canonical path,
// creating it if needed. Idempotent; concurrent callers race on the
// unique path constraint and the loser re-reads.
func (s *ProjectService) EnsureProject(ctx context.Context, path string) (*ent.Project, error) {
	if path == "" {
		return nil, NewValidationError("path", "required")
	}

	existing, err := s.client.Project.Query().
		Where(project.PathEQ(path)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query project: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var created *ent.Project
	err = database.WithRetry(writeCtx, func(ctx context.Context) error {
		var serr error
		created, serr = s.client.Project.Create().
			SetID(uuid.New().String()).
			SetPath(path).
			SetName(filepath.Base(path)).
			Save(ctx)
		return serr
	})
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the creation race; the winner's row is authoritative
			return s.client.Project.Query().Where(project.PathEQ(path)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return created, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectByPath retrieves a project by its canonical path
func (s *ProjectService) GetProjectByPath(ctx context.Context, path string) (*ent.Project, error) {
	p, err := s.client.Project.Query().Where(project.PathEQ(path)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by path: %w", err)
	}
	return p, nil
}
