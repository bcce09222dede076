package services

import (
	"reflect"
	"testing"

	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestDetectChanges(t *testing.T) {
	assignee := int64(7)
	current := &model.Task{
		ID:             1,
		Title:          "Fix login bug",
		Status:         model.StatusToDo,
		Priority:       model.PriorityHigh,
		AssignedUserID: &assignee,
	}

	tests := []struct {
		name  string
		patch dto.UpdateTaskRequest
		want  []string
	}{
		{
			name:  "empty patch",
			patch: dto.UpdateTaskRequest{},
			want:  nil,
		},
		{
			name: "identical values",
			patch: dto.UpdateTaskRequest{
				Title:          strPtr("Fix login bug"),
				Status:         strPtr("To Do"),
				Priority:       strPtr("High"),
				AssignedUserID: int64Ptr(7),
			},
			want: nil,
		},
		{
			name: "untracked fields only",
			patch: dto.UpdateTaskRequest{
				Description: strPtr("new description"),
				Tags:        strPtr("backend,auth"),
				Points:      new(int),
			},
			want: nil,
		},
		{
			name:  "status change",
			patch: dto.UpdateTaskRequest{Status: strPtr("Completed")},
			want:  []string{"status changed to Completed"},
		},
		{
			name:  "priority change",
			patch: dto.UpdateTaskRequest{Priority: strPtr("Urgent")},
			want:  []string{"priority changed to Urgent"},
		},
		{
			name:  "assignee change",
			patch: dto.UpdateTaskRequest{AssignedUserID: int64Ptr(9)},
			want:  []string{"assignee changed"},
		},
		{
			name:  "title change",
			patch: dto.UpdateTaskRequest{Title: strPtr("Fix login bug properly")},
			want:  []string{"title updated"},
		},
		{
			name: "everything at once keeps order",
			patch: dto.UpdateTaskRequest{
				Title:          strPtr("New title"),
				Status:         strPtr("Under Review"),
				Priority:       strPtr("Low"),
				AssignedUserID: int64Ptr(3),
			},
			want: []string{
				"status changed to Under Review",
				"priority changed to Low",
				"assignee changed",
				"title updated",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectChanges(current, &tt.patch)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DetectChanges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectChangesUnassignedTask(t *testing.T) {
	current := &model.Task{ID: 2, Title: "Write docs", Status: model.StatusToDo}

	got := DetectChanges(current, &dto.UpdateTaskRequest{AssignedUserID: int64Ptr(4)})
	want := []string{"assignee changed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DetectChanges() = %v, want %v", got, want)
	}
}
