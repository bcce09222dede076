package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// commentPreviewLimit caps how much of a comment is quoted inside a
// notification message.
const commentPreviewLimit = 100

// NotificationService owns every decision about who gets notified for an
// event and with what content. Fan-out is one row per recipient; the same
// user never receives two rows for one event, and nobody is notified of
// their own action.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// NotifyTaskCreated tells the assignee about a task created for them. The
// author assigning a task to themselves produces nothing.
func (s *NotificationService) NotifyTaskCreated(ctx context.Context, task *model.Task, projectName string) {
	if task.AssignedUserID == nil || *task.AssignedUserID == task.AuthorUserID {
		return
	}

	s.deliver(ctx, &model.Notification{
		Title:     fmt.Sprintf("New task assigned: %q", task.Title),
		Message:   fmt.Sprintf("You have been assigned the task %q in project %q", task.Title, projectName),
		Type:      model.NotificationTaskUpdate,
		UserID:    *task.AssignedUserID,
		TaskID:    &task.ID,
		ProjectID: &task.ProjectID,
	})
}

// NotifyTaskUpdated fans a shared change summary out to the task's assignee
// and author. With author and assignee being the same person neither branch
// fires, so one event never yields two rows for one user.
func (s *NotificationService) NotifyTaskUpdated(ctx context.Context, task *model.Task, changes []string) {
	if len(changes) == 0 {
		return
	}

	title := fmt.Sprintf("Task %q updated", task.Title)
	message := "The following changes were made: " + strings.Join(changes, ", ")

	if task.AssignedUserID != nil && *task.AssignedUserID != task.AuthorUserID {
		s.deliver(ctx, &model.Notification{
			Title:     title,
			Message:   message,
			Type:      model.NotificationTaskUpdate,
			UserID:    *task.AssignedUserID,
			TaskID:    &task.ID,
			ProjectID: &task.ProjectID,
		})
	}

	if task.AssignedUserID == nil || task.AuthorUserID != *task.AssignedUserID {
		s.deliver(ctx, &model.Notification{
			Title:     title,
			Message:   message,
			Type:      model.NotificationTaskUpdate,
			UserID:    task.AuthorUserID,
			TaskID:    &task.ID,
			ProjectID: &task.ProjectID,
		})
	}
}

// NotifyCommentAdded tells the task's author and assignee about a new
// comment, skipping the commenter themselves and skipping the assignee when
// author and assignee are the same person.
func (s *NotificationService) NotifyCommentAdded(ctx context.Context, task *model.Task, comment *model.Comment) {
	username := fmt.Sprintf("User %d", comment.UserID)
	if comment.User != nil {
		username = comment.User.Username
	}

	title := fmt.Sprintf("New comment on task %q", task.Title)
	message := fmt.Sprintf("%s commented: %q", username, truncate(comment.Text, commentPreviewLimit))

	if task.AuthorUserID != comment.UserID {
		s.deliver(ctx, &model.Notification{
			Title:     title,
			Message:   message,
			Type:      model.NotificationComment,
			UserID:    task.AuthorUserID,
			TaskID:    &task.ID,
			ProjectID: &task.ProjectID,
		})
	}

	if task.AssignedUserID != nil &&
		*task.AssignedUserID != comment.UserID &&
		*task.AssignedUserID != task.AuthorUserID {
		s.deliver(ctx, &model.Notification{
			Title:     title,
			Message:   message,
			Type:      model.NotificationComment,
			UserID:    *task.AssignedUserID,
			TaskID:    &task.ID,
			ProjectID: &task.ProjectID,
		})
	}
}

// deliver is best-effort: a failed notification write is logged and
// swallowed so it can never abort the mutation that triggered it.
func (s *NotificationService) deliver(ctx context.Context, n *model.Notification) {
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification write failed for user %d: %v", n.UserID, err)
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// Recipient-facing operations.

func (s *NotificationService) ListForUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, id int64) (*model.Notification, error) {
	return s.repo.MarkAsRead(ctx, id)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
