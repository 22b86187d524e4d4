// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/billable-hours/internal/logger"
	"github.com/MKhiriev/billable-hours/models"
)

type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{
		DB:     db,
		logger: logger,
	}
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		project              models.Project
		userID               sql.NullInt64
		createdAt, updatedAt dbTime
	)
	err := row.Scan(&project.ID, &userID, &project.Name, &project.Description, &project.Active, &createdAt, &updatedAt)
	if err != nil {
		return models.Project{}, err
	}
	project.UserID = nullInt64Ptr(userID)
	project.CreatedAt = createdAt.Time
	project.UpdatedAt = updatedAt.Time
	return project, nil
}

// projectWriteError converts errors of statements returning a project row.
func (r *projectRepository) projectWriteError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrProjectNotFound
	}
	switch r.classify(err) {
	case UniqueViolation:
		return ErrProjectNameTaken
	case ForeignKeyViolation:
		return ErrInvalidReference
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolated, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, r.dialect.Rebind(createProject),
		int64PtrArg(project.UserID), project.Name, project.Description, project.Active)

	created, err := scanProject(row)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.CreateProject").Str("name", project.Name).Msg("error creating project")
		return models.Project{}, r.projectWriteError(err)
	}

	return created, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, r.dialect.Rebind(updateProject),
		project.Name, project.Description, project.Active, project.ID)

	updated, err := scanProject(row)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.UpdateProject").Int64("project_id", project.ID).Msg("error updating project")
		return models.Project{}, r.projectWriteError(err)
	}

	return updated, nil
}

func (r *projectRepository) ToggleProject(ctx context.Context, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	toggled, err := scanProject(r.QueryRowContext(ctx, r.dialect.Rebind(toggleProject), projectID))
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ToggleProject").Int64("project_id", projectID).Msg("error toggling project")
		return models.Project{}, r.projectWriteError(err)
	}

	return toggled, nil
}

// DeleteProject deletes the project's entries first so that the cascade
// does not depend on the database enforcing ON DELETE CASCADE.
func (r *projectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	log := logger.FromContext(ctx)

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteProjectEntries), projectID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		res, err := tx.ExecContext(ctx, r.dialect.Rebind(deleteProject), projectID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrProjectNotFound) {
		log.Err(err).Str("func", "*projectRepository.DeleteProject").Int64("project_id", projectID).Msg("error deleting project")
	}

	return err
}

func (r *projectRepository) FindProjectByID(ctx context.Context, projectID int64) (models.Project, error) {
	log := logger.FromContext(ctx)

	project, err := scanProject(r.QueryRowContext(ctx, r.dialect.Rebind(findProjectByID), projectID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrProjectNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.FindProjectByID").Int64("project_id", projectID).Msg("error finding project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return project, nil
}

func (r *projectRepository) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProjectsQuery(r.dialect.Builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Int64("user_id", filter.UserID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, 16)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, nil
}
