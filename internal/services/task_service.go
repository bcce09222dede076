package services

import (
	"context"
	"fmt"
	"log"
	"time"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// TaskService orchestrates task mutations: validate, persist, detect
// changes, then hand off to the notification policy. Notification writes
// are best-effort and never fail the mutation that triggered them.
type TaskService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	notifier *NotificationService
}

func NewTaskService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	notifier *NotificationService,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
		notifier: notifier,
	}
}

func (s *TaskService) Create(ctx context.Context, req *dto.CreateTaskRequest) (*model.Task, error) {
	if req.Title == "" || req.Priority == "" || req.ProjectID == 0 || req.AuthorUserID == 0 {
		return nil, apperrors.Validation("missing required fields: title, priority, projectId, authorUserId")
	}

	startDate, err := parseDate(req.StartDate, "startDate")
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDate(req.DueDate, "dueDate")
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		Title:          req.Title,
		Description:    req.Description,
		Status:         model.Status(req.Status),
		Priority:       model.Priority(req.Priority),
		Tags:           req.Tags,
		StartDate:      startDate,
		DueDate:        dueDate,
		Points:         req.Points,
		ProjectID:      req.ProjectID,
		AuthorUserID:   req.AuthorUserID,
		AssignedUserID: req.AssignedUserID,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	if task.AssignedUserID != nil && *task.AssignedUserID != task.AuthorUserID {
		s.notifier.NotifyTaskCreated(ctx, task, s.projectName(ctx, task.ProjectID))
	}

	return task, nil
}

// Update applies a partial patch. The stored state is fetched first so the
// change detector can compare against it; the task id only ever comes from
// the argument, never the payload.
func (s *TaskService) Update(ctx context.Context, id int64, req *dto.UpdateTaskRequest) (*model.Task, error) {
	current, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := DetectChanges(current, req)

	fields, err := updateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := s.tasks.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update task %d: %w", id, err)
		}
	}

	updated, err := s.tasks.FindByIDExpanded(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.notifier.NotifyTaskUpdated(ctx, updated, changes)
	}

	return updated, nil
}

// UpdateStatus is the lightweight board-drag path: it always persists, even
// when the value is unchanged, and deliberately produces no notification.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status model.Status) (*model.Task, error) {
	if err := s.tasks.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update status of task %d: %w", id, err)
	}
	return s.tasks.FindByID(ctx, id)
}

// Delete removes the task together with its assignments, attachments and
// comments. A failure cleaning up dependents aborts the whole delete.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// Duplicate copies a task under a "(Copy)" title with its status reset to
// To Do. Comments and attachments stay with the original and no
// notification is produced.
func (s *TaskService) Duplicate(ctx context.Context, id int64) (*model.Task, error) {
	src, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	duplicate := &model.Task{
		Title:          src.Title + " (Copy)",
		Description:    src.Description,
		Status:         model.StatusToDo,
		Priority:       src.Priority,
		Tags:           src.Tags,
		StartDate:      src.StartDate,
		DueDate:        src.DueDate,
		Points:         src.Points,
		ProjectID:      src.ProjectID,
		AuthorUserID:   src.AuthorUserID,
		AssignedUserID: src.AssignedUserID,
	}

	if err := s.tasks.Create(ctx, duplicate); err != nil {
		return nil, fmt.Errorf("duplicate task %d: %w", id, err)
	}

	return s.tasks.FindByIDExpanded(ctx, duplicate.ID)
}

func (s *TaskService) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *TaskService) projectName(ctx context.Context, projectID int64) string {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		log.Printf("project lookup for notification failed: project=%d err=%v", projectID, err)
		return fmt.Sprintf("project %d", projectID)
	}
	return project.Teamname
}

// updateFields translates the non-nil patch fields into a column map. The
// id is structurally absent: there is no way to smuggle it in.
func updateFields(req *dto.UpdateTaskRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}

	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.Tags != nil {
		fields["tags"] = *req.Tags
	}
	if req.StartDate != nil {
		t, err := parseDate(*req.StartDate, "startDate")
		if err != nil {
			return nil, err
		}
		fields["start_date"] = t
	}
	if req.DueDate != nil {
		t, err := parseDate(*req.DueDate, "dueDate")
		if err != nil {
			return nil, err
		}
		fields["due_date"] = t
	}
	if req.Points != nil {
		fields["points"] = *req.Points
	}
	if req.AssignedUserID != nil {
		fields["assigned_user_id"] = *req.AssignedUserID
	}

	return fields, nil
}

// parseDate accepts RFC 3339 or plain YYYY-MM-DD; the empty string means
// the field was not supplied.
func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, apperrors.Validation(fmt.Sprintf("invalid %s: expected an ISO date string", field))
}
