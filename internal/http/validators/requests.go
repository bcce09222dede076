package validators

import (
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
)

// Request-shape checks run before any service work; field semantics (date
// parsing, uniqueness) stay with the services.

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return apperrors.Validation("title is required")
	}
	if r.Priority == "" {
		return apperrors.Validation("priority is required")
	}
	if r.ProjectID == 0 {
		return apperrors.Validation("projectId is required")
	}
	if r.AuthorUserID == 0 {
		return apperrors.Validation("authorUserId is required")
	}
	return nil
}

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) error {
	if r.Status == "" {
		return apperrors.Validation("status is required")
	}
	return nil
}

func ValidateCreateCommentRequest(r *dto.CreateCommentRequest) error {
	if r.TaskID == 0 {
		return apperrors.Validation("taskId is required")
	}
	if r.Text == "" {
		return apperrors.Validation("text is required")
	}
	if r.UserID == 0 {
		return apperrors.Validation("userId is required")
	}
	return nil
}

func ValidateCreateProjectRequest(r *dto.CreateProjectRequest) error {
	if r.Name == "" {
		return apperrors.Validation("name is required")
	}
	if r.StartDate == "" || r.EndDate == "" {
		return apperrors.Validation("startDate and endDate are required")
	}
	return nil
}

func ValidateCreateTeamRequest(r *dto.CreateTeamRequest) error {
	if r.Teamname == "" {
		return apperrors.Validation("teamname is required")
	}
	return nil
}
