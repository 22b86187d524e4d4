// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/internal/store"
	"github.com/MKhiriev/billable-hours/internal/validators"
	"github.com/MKhiriev/billable-hours/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validators.NewProjectValidator(),
		logger:            logger,
	}
}

// ListProjects lists the projects visible to session. The caller's
// filter.UserID is always replaced by the session user.
func (p *projectService) ListProjects(ctx context.Context, session models.Session, filter models.ProjectFilter) ([]models.Project, error) {
	filter.UserID = session.UserID

	projects, err := p.projectRepository.ListProjects(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.ListProjects").Int64("user_id", session.UserID).Msg("listing projects failed")
		return nil, fmt.Errorf("listing projects failed: %w", err)
	}
	return projects, nil
}

// GetProject returns the project if session may see it. Invisible projects
// are reported as missing.
func (p *projectService) GetProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error) {
	project, err := p.projectRepository.FindProjectByID(ctx, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !visible(project, session) {
		return models.Project{}, store.ErrProjectNotFound
	}
	return project, nil
}

// CreateProject stores a new active project owned by the session user.
func (p *projectService) CreateProject(ctx context.Context, session models.Session, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	project.Name = strings.TrimSpace(project.Name)
	project.Description = strings.TrimSpace(project.Description)
	if err := p.validator.Validate(ctx, project); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	project.UserID = &session.UserID
	project.Active = true

	created, err := p.projectRepository.CreateProject(ctx, project)
	if err != nil {
		log.Err(err).Str("func", "*projectService.CreateProject").Str("name", project.Name).Msg("project creation failed")
		return models.Project{}, fmt.Errorf("project creation failed: %w", err)
	}

	log.Info().Int64("project_id", created.ID).Int64("user_id", session.UserID).Msg("project created")
	return created, nil
}

// UpdateProject changes name and description. Ownership and the active
// flag are kept from the stored project.
func (p *projectService) UpdateProject(ctx context.Context, session models.Session, project models.Project) (models.Project, error) {
	current, err := p.editable(ctx, session, project.ID)
	if err != nil {
		return models.Project{}, err
	}

	current.Name = strings.TrimSpace(project.Name)
	current.Description = strings.TrimSpace(project.Description)
	if err := p.validator.Validate(ctx, current); err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := p.projectRepository.UpdateProject(ctx, current)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.UpdateProject").Int64("project_id", project.ID).Msg("project update failed")
		return models.Project{}, fmt.Errorf("project update failed: %w", err)
	}
	return updated, nil
}

func (p *projectService) ToggleProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error) {
	if _, err := p.editable(ctx, session, projectID); err != nil {
		return models.Project{}, err
	}

	project, err := p.projectRepository.ToggleProject(ctx, projectID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectService.ToggleProject").Int64("project_id", projectID).Msg("project toggle failed")
		return models.Project{}, fmt.Errorf("project toggle failed: %w", err)
	}
	return project, nil
}

func (p *projectService) DeleteProject(ctx context.Context, session models.Session, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := p.editable(ctx, session, projectID)
	if err != nil {
		return models.Project{}, err
	}

	if err := p.projectRepository.DeleteProject(ctx, projectID); err != nil {
		log.Err(err).Str("func", "*projectService.DeleteProject").Int64("project_id", projectID).Msg("project deletion failed")
		return models.Project{}, fmt.Errorf("project deletion failed: %w", err)
	}

	log.Info().Int64("project_id", projectID).Int64("user_id", session.UserID).Msg("project deleted with its entries")
	return project, nil
}

// editable loads the project and checks that session may modify it:
// owners always, admins also every project they can see.
func (p *projectService) editable(ctx context.Context, session models.Session, projectID int64) (models.Project, error) {
	project, err := p.GetProject(ctx, session, projectID)
	if err != nil {
		return models.Project{}, err
	}
	if !project.OwnedBy(session.UserID) && !session.IsAdmin {
		return models.Project{}, ErrForbidden
	}
	return project, nil
}

func visible(project models.Project, session models.Session) bool {
	return project.IsShared() || project.OwnedBy(session.UserID)
}
