package model

import "time"

// Project keeps the historical "teamname" column for its display name; the
// source schema named it that way and every seed row depends on it.
type Project struct {
	ID          int64      `gorm:"primaryKey" json:"id"`
	Teamname    string     `gorm:"not null" json:"teamname"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
}

// ProjectTeam links a team onto a project board.
type ProjectTeam struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	TeamID    int64 `gorm:"not null" json:"teamId"`
	ProjectID int64 `gorm:"not null;index" json:"projectId"`
}
