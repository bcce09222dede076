package dto

type CreateCommentRequest struct {
	TaskID int64  `json:"taskId"`
	Text   string `json:"text"`
	UserID int64  `json:"userId"`
}
