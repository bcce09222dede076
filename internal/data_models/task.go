package dto

// CreateTaskRequest carries every field a client may set at creation.
// Dates arrive as ISO strings and are parsed during validation.
type CreateTaskRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Tags           string `json:"tags"`
	StartDate      string `json:"startDate"`
	DueDate        string `json:"dueDate"`
	Points         *int   `json:"points"`
	ProjectID      int64  `json:"projectId"`
	AuthorUserID   int64  `json:"authorUserId"`
	AssignedUserID *int64 `json:"assignedUserId"`
}

// UpdateTaskRequest is a partial patch: nil means "leave the field alone".
// The task id is never part of the payload; it comes from the URL and any
// id a client smuggles into the body is discarded.
type UpdateTaskRequest struct {
	Title          *string `json:"title"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	Priority       *string `json:"priority"`
	Tags           *string `json:"tags"`
	StartDate      *string `json:"startDate"`
	DueDate        *string `json:"dueDate"`
	Points         *int    `json:"points"`
	AssignedUserID *int64  `json:"assignedUserId"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
