package model

type Comment struct {
	ID     int64  `gorm:"primaryKey" json:"id"`
	Text   string `gorm:"not null" json:"text"`
	TaskID int64  `gorm:"not null;index" json:"taskId"`
	UserID int64  `gorm:"not null" json:"userId"`

	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
	Task *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

type Attachment struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	FileURL      string `gorm:"not null" json:"fileURL"`
	FileName     string `json:"fileName,omitempty"`
	TaskID       int64  `gorm:"not null;index" json:"taskId"`
	UploadedByID int64  `gorm:"not null" json:"uploadedById"`
}
