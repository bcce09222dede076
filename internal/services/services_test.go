package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "taskflow.com/taskflow/internal/configs"
	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(config.Entities...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db            *gorm.DB
	notifications *repository.NotificationRepository
	taskSvc       *TaskService
	commentSvc    *CommentService
	notifySvc     *NotificationService
	searchSvc     *SearchService
	teamSvc       *TeamService
	projectSvc    *ProjectService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)

	notifySvc := NewNotificationService(notificationRepo)

	return &testEnv{
		db:            db,
		notifications: notificationRepo,
		taskSvc:       NewTaskService(taskRepo, projectRepo, notifySvc),
		commentSvc:    NewCommentService(commentRepo, taskRepo, notifySvc),
		notifySvc:     notifySvc,
		searchSvc:     NewSearchService(taskRepo, projectRepo, userRepo, teamRepo, nil),
		teamSvc:       NewTeamService(teamRepo, userRepo),
		projectSvc:    NewProjectService(projectRepo),
	}
}

func (e *testEnv) mustSeedUser(t *testing.T, id int64, username string) {
	t.Helper()
	user := model.User{UserID: id, Username: username, Email: username + "@example.com"}
	if err := e.db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func (e *testEnv) mustSeedProject(t *testing.T, id int64, name string) {
	t.Helper()
	project := model.Project{ID: id, Teamname: name}
	if err := e.db.Create(&project).Error; err != nil {
		t.Fatalf("seed project %d: %v", id, err)
	}
}

func (e *testEnv) notificationsFor(t *testing.T, userID int64) []model.Notification {
	t.Helper()
	rows, err := e.notifications.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list notifications for %d: %v", userID, err)
	}
	return rows
}

func TestTaskService_CreateRequiresFields(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Priority:     "High",
		ProjectID:    1,
		AuthorUserID: 5,
	})
	if err == nil {
		t.Fatal("expected validation error for missing title")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apperrors.StatusCode(err))
	}
}

func TestTaskService_CreateRejectsBadDates(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	_, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Fix login bug",
		Priority:     "High",
		ProjectID:    1,
		AuthorUserID: 5,
		DueDate:      "not-a-date",
	})
	if err == nil {
		t.Fatal("expected validation error for malformed dueDate")
	}
	if apperrors.StatusCode(err) != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apperrors.StatusCode(err))
	}

	var count int64
	env.db.Model(&model.Task{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no task rows after failed validation, got %d", count)
	}
}

func TestTaskService_CreateNotifiesAssignee(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Fix login bug",
		Priority:       "High",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	got := env.notificationsFor(t, 7)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification for assignee, got %d", len(got))
	}
	if got[0].Type != model.NotificationTaskUpdate {
		t.Errorf("expected type task_update, got %s", got[0].Type)
	}
	if got[0].TaskID == nil || *got[0].TaskID != task.ID {
		t.Error("notification should reference the created task")
	}
	if !strings.Contains(got[0].Message, "Platform") {
		t.Errorf("message should name the project, got %q", got[0].Message)
	}

	if author := env.notificationsFor(t, 5); len(author) != 0 {
		t.Errorf("author should not be notified of their own creation, got %d rows", len(author))
	}
}

func TestTaskService_CreateSelfAssignedIsSilent(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	_, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Self-assigned chore",
		Priority:       "Low",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(5),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if got := env.notificationsFor(t, 5); len(got) != 0 {
		t.Errorf("self-assignment must not notify, got %d rows", len(got))
	}
}

func TestTaskService_UpdateWithoutTrackedChangesIsSilent(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Fix login bug",
		Priority:       "High",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	before := len(env.notificationsFor(t, 7))

	updated, err := env.taskSvc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Description: strPtr("clarified repro steps"),
		Tags:        strPtr("auth"),
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Description != "clarified repro steps" {
		t.Errorf("description not persisted, got %q", updated.Description)
	}

	if after := len(env.notificationsFor(t, 7)); after != before {
		t.Errorf("untracked-field update must not notify: before=%d after=%d", before, after)
	}
}

func TestTaskService_UpdateNotifiesAuthorAndAssignee(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Fix login bug",
		Priority:       "High",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	assigneeBefore := len(env.notificationsFor(t, 7))

	_, err = env.taskSvc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Status:   strPtr("Completed"),
		Priority: strPtr("Urgent"),
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	authorRows := env.notificationsFor(t, 5)
	if len(authorRows) != 1 {
		t.Fatalf("expected exactly 1 notification for author, got %d", len(authorRows))
	}
	assigneeRows := env.notificationsFor(t, 7)
	if len(assigneeRows) != assigneeBefore+1 {
		t.Fatalf("expected exactly 1 new notification for assignee, got %d", len(assigneeRows)-assigneeBefore)
	}

	msg := authorRows[0].Message
	if !strings.Contains(msg, "status changed to Completed") || !strings.Contains(msg, "priority changed to Urgent") {
		t.Errorf("message should list both changes, got %q", msg)
	}
	if assigneeRows[0].Message != msg {
		t.Error("author and assignee should share one title/message pair")
	}
}

func TestTaskService_UpdateAuthorIsAssignee(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Self-assigned chore",
		Priority:       "Low",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(5),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	_, err = env.taskSvc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Status: strPtr("Completed"),
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	if got := env.notificationsFor(t, 5); len(got) > 1 {
		t.Errorf("author==assignee must never receive two rows for one event, got %d", len(got))
	}
}

func TestTaskService_UpdateUnassignedNotifiesAuthor(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Unassigned bug",
		Priority:     "Medium",
		ProjectID:    1,
		AuthorUserID: 5,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	_, err = env.taskSvc.Update(context.Background(), task.ID, &dto.UpdateTaskRequest{
		Title: strPtr("Unassigned bug (triaged)"),
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	got := env.notificationsFor(t, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification for author of unassigned task, got %d", len(got))
	}
	if !strings.Contains(got[0].Message, "title updated") {
		t.Errorf("unexpected message %q", got[0].Message)
	}
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.taskSvc.Update(context.Background(), 12345, &dto.UpdateTaskRequest{
		Title: strPtr("ghost"),
	})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskService_StatusPathSkipsNotifications(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Fix login bug",
		Priority:       "High",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	assigneeBefore := len(env.notificationsFor(t, 7))

	updated, err := env.taskSvc.UpdateStatus(context.Background(), task.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("status not persisted, got %s", updated.Status)
	}

	// Same value again: the lightweight path always persists, idempotently.
	updated, err = env.taskSvc.UpdateStatus(context.Background(), task.ID, model.StatusCompleted)
	if err != nil {
		t.Fatalf("idempotent status update: %v", err)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("status lost on idempotent update, got %s", updated.Status)
	}

	if after := len(env.notificationsFor(t, 7)); after != assigneeBefore {
		t.Errorf("status-only path must not notify: before=%d after=%d", assigneeBefore, after)
	}
	if author := len(env.notificationsFor(t, 5)); author != 0 {
		t.Errorf("status-only path must not notify author, got %d rows", author)
	}
}

func TestTaskService_DeleteRemovesDependents(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Doomed task",
		Priority:     "Low",
		ProjectID:    1,
		AuthorUserID: 5,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	deps := []interface{}{
		&model.Comment{Text: "first", TaskID: task.ID, UserID: 5},
		&model.Comment{Text: "second", TaskID: task.ID, UserID: 5},
		&model.Attachment{FileURL: "f.png", TaskID: task.ID, UploadedByID: 5},
		&model.TaskAssignment{TaskID: task.ID, UserID: 5},
	}
	for _, dep := range deps {
		if err := env.db.Create(dep).Error; err != nil {
			t.Fatalf("seed dependent: %v", err)
		}
	}

	if err := env.taskSvc.Delete(context.Background(), task.ID); err != nil {
		t.Fatalf("delete task: %v", err)
	}

	var comments, attachments, assignments, tasks int64
	env.db.Model(&model.Comment{}).Where("task_id = ?", task.ID).Count(&comments)
	env.db.Model(&model.Attachment{}).Where("task_id = ?", task.ID).Count(&attachments)
	env.db.Model(&model.TaskAssignment{}).Where("task_id = ?", task.ID).Count(&assignments)
	env.db.Model(&model.Task{}).Where("id = ?", task.ID).Count(&tasks)
	if comments != 0 || attachments != 0 || assignments != 0 || tasks != 0 {
		t.Errorf("delete left rows behind: comments=%d attachments=%d assignments=%d tasks=%d",
			comments, attachments, assignments, tasks)
	}
}

func TestTaskService_DeleteWithoutDependents(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Lonely task",
		Priority:     "Low",
		ProjectID:    1,
		AuthorUserID: 5,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := env.taskSvc.Delete(context.Background(), task.ID); err != nil {
		t.Errorf("delete with zero dependents should succeed: %v", err)
	}
}

func TestTaskService_Duplicate(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	src, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Ship release",
		Priority:       "Urgent",
		ProjectID:      1,
		AuthorUserID:   5,
		AssignedUserID: int64Ptr(7),
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := env.taskSvc.UpdateStatus(context.Background(), src.ID, model.StatusCompleted); err != nil {
		t.Fatalf("set source status: %v", err)
	}
	if err := env.db.Create(&model.Comment{Text: "done!", TaskID: src.ID, UserID: 5}).Error; err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	notificationsBefore := len(env.notificationsFor(t, 7))

	dup, err := env.taskSvc.Duplicate(context.Background(), src.ID)
	if err != nil {
		t.Fatalf("duplicate task: %v", err)
	}

	if dup.ID == src.ID {
		t.Error("duplicate must have a fresh id")
	}
	if dup.Title != "Ship release (Copy)" {
		t.Errorf("expected title %q, got %q", "Ship release (Copy)", dup.Title)
	}
	if dup.Status != model.StatusToDo {
		t.Errorf("duplicate status must reset to To Do, got %s", dup.Status)
	}
	if dup.Priority != model.PriorityUrgent {
		t.Errorf("priority should carry over, got %s", dup.Priority)
	}
	if len(dup.Comments) != 0 {
		t.Errorf("duplicate must not copy comments, got %d", len(dup.Comments))
	}
	if len(dup.Attachments) != 0 {
		t.Errorf("duplicate must not copy attachments, got %d", len(dup.Attachments))
	}
	if after := len(env.notificationsFor(t, 7)); after != notificationsBefore {
		t.Errorf("duplication must not notify: before=%d after=%d", notificationsBefore, after)
	}

	_, err = env.taskSvc.Duplicate(context.Background(), 99999)
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound for missing source, got %v", err)
	}
}

func TestCommentService_FanOut(t *testing.T) {
	tests := []struct {
		name      string
		author    int64
		assignee  *int64
		commenter int64
		wantRows  map[int64]int
	}{
		{
			name:      "commenter is author and assignee",
			author:    21,
			assignee:  int64Ptr(21),
			commenter: 21,
			wantRows:  map[int64]int{21: 0},
		},
		{
			name:      "commenter is author, different assignee",
			author:    21,
			assignee:  int64Ptr(22),
			commenter: 21,
			wantRows:  map[int64]int{21: 0, 22: 1},
		},
		{
			name:      "commenter is assignee, different author",
			author:    21,
			assignee:  int64Ptr(22),
			commenter: 22,
			wantRows:  map[int64]int{21: 1, 22: 0},
		},
		{
			name:      "all three distinct",
			author:    21,
			assignee:  int64Ptr(22),
			commenter: 23,
			wantRows:  map[int64]int{21: 1, 22: 1, 23: 0},
		},
		{
			name:      "author and assignee same, outside commenter",
			author:    21,
			assignee:  int64Ptr(21),
			commenter: 23,
			wantRows:  map[int64]int{21: 1, 23: 0},
		},
		{
			name:      "no assignee, outside commenter",
			author:    21,
			commenter: 23,
			wantRows:  map[int64]int{21: 1, 23: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.mustSeedProject(t, 1, "Platform")
			for _, id := range []int64{21, 22, 23} {
				env.mustSeedUser(t, id, fmt.Sprintf("user%d", id))
			}

			req := &dto.CreateTaskRequest{
				Title:          "Discussed task",
				Priority:       "Medium",
				ProjectID:      1,
				AuthorUserID:   tt.author,
				AssignedUserID: tt.assignee,
			}
			task, err := env.taskSvc.Create(context.Background(), req)
			if err != nil {
				t.Fatalf("create task: %v", err)
			}
			// Drop creation-time notifications so only comment fan-out counts.
			env.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Notification{})

			_, err = env.commentSvc.Create(context.Background(), &dto.CreateCommentRequest{
				TaskID: task.ID,
				Text:   "looks good to me",
				UserID: tt.commenter,
			})
			if err != nil {
				t.Fatalf("create comment: %v", err)
			}

			for userID, want := range tt.wantRows {
				got := env.notificationsFor(t, userID)
				if len(got) != want {
					t.Errorf("user %d: expected %d notification(s), got %d", userID, want, len(got))
				}
				for _, n := range got {
					if n.Type != model.NotificationComment {
						t.Errorf("user %d: expected type comment, got %s", userID, n.Type)
					}
				}
			}
		})
	}
}

func TestCommentService_TruncatesPreview(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")
	env.mustSeedUser(t, 7, "bob")

	task, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Long discussion",
		Priority:     "Low",
		ProjectID:    1,
		AuthorUserID: 5,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	longText := strings.Repeat("x", 150)
	if _, err := env.commentSvc.Create(context.Background(), &dto.CreateCommentRequest{
		TaskID: task.ID,
		Text:   longText,
		UserID: 7,
	}); err != nil {
		t.Fatalf("create comment: %v", err)
	}

	got := env.notificationsFor(t, 5)
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	preview := strings.Repeat("x", 100) + "..."
	if !strings.Contains(got[0].Message, preview) {
		t.Errorf("expected truncated preview with ellipsis, got %q", got[0].Message)
	}
	if strings.Contains(got[0].Message, strings.Repeat("x", 101)) {
		t.Error("preview exceeds 100 characters")
	}
	if !strings.Contains(got[0].Message, "bob") {
		t.Errorf("message should name the commenter, got %q", got[0].Message)
	}
}

func TestCommentService_MissingTask(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedUser(t, 5, "alice")

	_, err := env.commentSvc.Create(context.Background(), &dto.CreateCommentRequest{
		TaskID: 777,
		Text:   "into the void",
		UserID: 5,
	})
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestNotificationService_ReadLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		n := &model.Notification{
			Title:     fmt.Sprintf("Event %d", i),
			Message:   "something happened",
			Type:      model.NotificationTaskUpdate,
			UserID:    31,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := env.notifications.Create(ctx, n); err != nil {
			t.Fatalf("create notification: %v", err)
		}
	}

	rows, err := env.notifySvc.ListForUser(ctx, 31)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(rows))
	}
	if !rows[0].CreatedAt.After(rows[2].CreatedAt) {
		t.Error("notifications should be ordered newest first")
	}

	count, err := env.notifySvc.UnreadCount(ctx, 31)
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected unread count 3, got %d", count)
	}

	marked, err := env.notifySvc.MarkAsRead(ctx, rows[0].ID)
	if err != nil {
		t.Fatalf("mark as read: %v", err)
	}
	if !marked.IsRead {
		t.Error("MarkAsRead should flip IsRead")
	}
	if count, _ = env.notifySvc.UnreadCount(ctx, 31); count != 2 {
		t.Errorf("expected unread count 2 after single read, got %d", count)
	}

	if err := env.notifySvc.MarkAllAsRead(ctx, 31); err != nil {
		t.Fatalf("mark all as read: %v", err)
	}
	if count, _ = env.notifySvc.UnreadCount(ctx, 31); count != 0 {
		t.Errorf("expected unread count 0 after read-all, got %d", count)
	}

	if err := env.notifySvc.Delete(ctx, rows[1].ID); err != nil {
		t.Fatalf("delete notification: %v", err)
	}
	if rows, _ = env.notifySvc.ListForUser(ctx, 31); len(rows) != 2 {
		t.Errorf("expected 2 notifications after delete, got %d", len(rows))
	}

	if _, err := env.notifySvc.MarkAsRead(ctx, 424242); !errors.Is(err, apperrors.ErrNotificationNotFound) {
		t.Errorf("expected ErrNotificationNotFound, got %v", err)
	}
}

func TestSearchService_ShortQueriesSkipStore(t *testing.T) {
	// Nil repositories prove the store is never touched: any lookup would
	// panic.
	svc := NewSearchService(nil, nil, nil, nil, nil)

	for _, query := range []string{"", " ", "a", " a "} {
		results, err := svc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("query %q: %v", query, err)
		}
		if len(results.Tasks) != 0 || len(results.Projects) != 0 ||
			len(results.Users) != 0 || len(results.Teams) != 0 {
			t.Errorf("query %q: expected four empty lists", query)
		}
		if results.Tasks == nil || results.Projects == nil || results.Users == nil || results.Teams == nil {
			t.Errorf("query %q: lists must be present, not null", query)
		}
	}
}

func TestSearchService_TaskTitleMatch(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Marketing")
	env.mustSeedUser(t, 5, "alice")
	if err := env.db.Create(&model.Team{Teamname: "Platform"}).Error; err != nil {
		t.Fatalf("seed team: %v", err)
	}

	if _, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:        "Fix login bug",
		Priority:     "High",
		ProjectID:    1,
		AuthorUserID: 5,
	}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	results, err := env.searchSvc.Search(context.Background(), "login")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results.Tasks) != 1 {
		t.Fatalf("expected 1 task hit, got %d", len(results.Tasks))
	}
	if len(results.Projects) != 0 || len(results.Users) != 0 || len(results.Teams) != 0 {
		t.Errorf("expected empty non-task lists, got projects=%d users=%d teams=%d",
			len(results.Projects), len(results.Users), len(results.Teams))
	}

	// Matching is case-insensitive.
	results, err = env.searchSvc.Search(context.Background(), "LOGIN")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results.Tasks) != 1 {
		t.Errorf("case-insensitive search expected 1 task hit, got %d", len(results.Tasks))
	}
}

func TestSearchService_CapsResults(t *testing.T) {
	env := newTestEnv(t)
	env.mustSeedProject(t, 1, "Platform")
	env.mustSeedUser(t, 5, "alice")

	for i := 0; i < 12; i++ {
		if _, err := env.taskSvc.Create(context.Background(), &dto.CreateTaskRequest{
			Title:        fmt.Sprintf("widget polish %d", i),
			Priority:     "Low",
			ProjectID:    1,
			AuthorUserID: 5,
		}); err != nil {
			t.Fatalf("create task %d: %v", i, err)
		}
	}

	results, err := env.searchSvc.Search(context.Background(), "widget")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results.Tasks) != 10 {
		t.Errorf("expected task results capped at 10, got %d", len(results.Tasks))
	}
}

func TestTeamService_NameUniqueness(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.teamSvc.Create(context.Background(), &dto.CreateTeamRequest{Teamname: "Platform"}); err != nil {
		t.Fatalf("create team: %v", err)
	}

	_, err := env.teamSvc.Create(context.Background(), &dto.CreateTeamRequest{Teamname: "platform"})
	if !errors.Is(err, apperrors.ErrTeamNameTaken) {
		t.Errorf("expected ErrTeamNameTaken for case-insensitive duplicate, got %v", err)
	}
}

func TestProjectService_CreateValidates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.projectSvc.Create(ctx, &dto.CreateProjectRequest{Name: "No dates"}); err == nil {
		t.Error("expected validation error for missing dates")
	}

	if _, err := env.projectSvc.Create(ctx, &dto.CreateProjectRequest{
		Name:      "Bad dates",
		StartDate: "soon",
		EndDate:   "later",
	}); err == nil {
		t.Error("expected validation error for malformed dates")
	}

	project, err := env.projectSvc.Create(ctx, &dto.CreateProjectRequest{
		Name:      "Q3 launch",
		StartDate: "2026-07-01",
		EndDate:   "2026-09-30",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	if project.ID == 0 || project.Teamname != "Q3 launch" {
		t.Errorf("unexpected project %+v", project)
	}
}
