package services

import (
	"fmt"

	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
)

// DetectChanges compares a task's stored state against a partial update and
// returns human-readable descriptions for the fields worth narrating:
// status, priority, assignee and title, in that order. Fields absent from
// the patch are skipped. An empty result means the update is not worth a
// notification.
func DetectChanges(current *model.Task, patch *dto.UpdateTaskRequest) []string {
	var changes []string

	if patch.Status != nil && model.Status(*patch.Status) != current.Status {
		changes = append(changes, fmt.Sprintf("status changed to %s", *patch.Status))
	}
	if patch.Priority != nil && model.Priority(*patch.Priority) != current.Priority {
		changes = append(changes, fmt.Sprintf("priority changed to %s", *patch.Priority))
	}
	if patch.AssignedUserID != nil && !sameAssignee(current.AssignedUserID, patch.AssignedUserID) {
		changes = append(changes, "assignee changed")
	}
	if patch.Title != nil && *patch.Title != current.Title {
		changes = append(changes, "title updated")
	}

	return changes
}

func sameAssignee(current, proposed *int64) bool {
	if current == nil || proposed == nil {
		return current == proposed
	}
	return *current == *proposed
}
