package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// FindByIDExpanded loads a task with its author, assignee, comments,
// attachments and project, the shape the client renders.
func (r *TaskRepository) FindByIDExpanded(ctx context.Context, id int64) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments").
		Preload("Project").
		First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]model.Task, error) {
	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignee").
		Preload("Comments").
		Preload("Attachments")
	if projectID != 0 {
		query = query.Where("project_id = ?", projectID)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// ListByUser returns every task the user authored or is assigned to.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignee").
		Where("author_user_id = ? OR assigned_user_id = ?", userID, userID).
		Find(&tasks).Error
	return tasks, err
}

// UpdateFields applies a partial column patch. Callers build the map from
// validated request fields only; the id column is never part of it.
func (r *TaskRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the task's dependent rows first, then the task itself,
// inside one transaction so a cleanup failure aborts the whole delete.
func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, "id = ?", id).Error
	})
}

// Search matches the term against title, description, status, priority and
// tags, case-insensitively.
func (r *TaskRepository) Search(ctx context.Context, term string, limit int) ([]model.Task, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Assignee").
		Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(status) LIKE ? OR LOWER(priority) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		).
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}
