package model

type User struct {
	UserID            int64  `gorm:"primaryKey;column:user_id" json:"userId"`
	Username          string `gorm:"not null;uniqueIndex" json:"username"`
	Email             string `gorm:"not null" json:"email"`
	ProfilePictureURL string `gorm:"column:profile_picture_url" json:"profilePictureUrl,omitempty"`
	TeamID            *int64 `json:"teamId,omitempty"`

	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}
