package model

type Team struct {
	ID                 int64  `gorm:"primaryKey" json:"id"`
	Teamname           string `gorm:"not null" json:"teamname"`
	ProductOwnerUserID *int64 `json:"productOwnerUserId,omitempty"`

	Users []User `gorm:"foreignKey:TeamID" json:"users,omitempty"`
}

// TeamWithOwner is the list-view shape: a team enriched with the resolved
// product owner name and member count.
type TeamWithOwner struct {
	Team
	ProductOwnerUsername string `json:"productOwnerUsername,omitempty"`
	UserCount            int    `json:"userCount"`
}
