package services

import (
	"context"
	"fmt"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type CommentService struct {
	comments *repository.CommentRepository
	tasks    *repository.TaskRepository
	notifier *NotificationService
}

func NewCommentService(
	comments *repository.CommentRepository,
	tasks *repository.TaskRepository,
	notifier *NotificationService,
) *CommentService {
	return &CommentService{
		comments: comments,
		tasks:    tasks,
		notifier: notifier,
	}
}

// Create persists the comment and then fans out notifications to the
// task's author and assignee, never including the commenter.
func (s *CommentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (*model.Comment, error) {
	if req.Text == "" || req.TaskID == 0 || req.UserID == 0 {
		return nil, apperrors.Validation("missing required fields: taskId, text, userId")
	}

	task, err := s.tasks.FindByID(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Text:   req.Text,
		TaskID: req.TaskID,
		UserID: req.UserID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	expanded, err := s.comments.FindByIDExpanded(ctx, comment.ID)
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyCommentAdded(ctx, task, expanded)

	return expanded, nil
}

func (s *CommentService) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	return s.comments.ListByTask(ctx, taskID)
}

func (s *CommentService) Delete(ctx context.Context, id int64) error {
	return s.comments.Delete(ctx, id)
}
