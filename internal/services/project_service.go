package services

import (
	"context"
	"fmt"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// ProjectService is read/create only; project updates carry no
// notification semantics.
type ProjectService struct {
	projects *repository.ProjectRepository
}

func NewProjectService(projects *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error) {
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, apperrors.Validation("missing required fields: name, startDate, endDate")
	}

	startDate, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate, "endDate")
	if err != nil {
		return nil, err
	}

	project := &model.Project{
		Teamname:    req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}
