package model

import "time"

// Status is the board column a task sits in. The empty string means the
// task has not been placed yet. Transitions are unrestricted: any status
// can move to any other, including back to unset.
type Status string

const (
	StatusToDo           Status = "To Do"
	StatusWorkInProgress Status = "Work In Progress"
	StatusUnderReview    Status = "Under Review"
	StatusCompleted      Status = "Completed"
)

type Priority string

const (
	PriorityUrgent  Priority = "Urgent"
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityBacklog Priority = "Backlog"
)

type Task struct {
	ID             int64      `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         Status     `gorm:"type:varchar(32)" json:"status,omitempty"`
	Priority       Priority   `gorm:"type:varchar(16)" json:"priority,omitempty"`
	Tags           string     `json:"tags,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	DueDate        *time.Time `json:"dueDate,omitempty"`
	Points         *int       `json:"points,omitempty"`
	ProjectID      int64      `gorm:"not null;index" json:"projectId"`
	AuthorUserID   int64      `gorm:"not null" json:"authorUserId"`
	AssignedUserID *int64     `json:"assignedUserId,omitempty"`

	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Author      *User        `gorm:"foreignKey:AuthorUserID;references:UserID" json:"author,omitempty"`
	Assignee    *User        `gorm:"foreignKey:AssignedUserID;references:UserID" json:"assignee,omitempty"`
	Comments    []Comment    `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
	Attachments []Attachment `gorm:"foreignKey:TaskID" json:"attachments,omitempty"`
}

// TaskAssignment is the join row linking extra users onto a task beyond
// the single assignee column.
type TaskAssignment struct {
	ID     int64 `gorm:"primaryKey" json:"id"`
	UserID int64 `gorm:"not null" json:"userId"`
	TaskID int64 `gorm:"not null;index" json:"taskId"`
}
