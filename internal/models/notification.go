package model

import "time"

// NotificationType partitions notifications by the kind of event that
// produced them.
type NotificationType string

const (
	NotificationTaskUpdate    NotificationType = "task_update"
	NotificationProjectUpdate NotificationType = "project_update"
	NotificationComment       NotificationType = "comment"
	NotificationTeamUpdate    NotificationType = "team_update"
)

// Notification is a single-recipient row. Fan-out to several users is
// always several rows, never one row with a recipient list. Content is
// immutable after creation; only IsRead ever changes.
type Notification struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	Title     string           `gorm:"not null" json:"title"`
	Message   string           `gorm:"not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	UserID    int64            `gorm:"not null;index" json:"userId"`
	TaskID    *int64           `json:"taskId,omitempty"`
	ProjectID *int64           `json:"projectId,omitempty"`
	TeamID    *int64           `json:"teamId,omitempty"`
	IsRead    bool             `gorm:"not null;default:false" json:"isRead"`
	CreatedAt time.Time        `json:"createdAt"`

	Task    *Task    `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Project *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Team    *Team    `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}
