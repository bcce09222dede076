package dto

type MarkAllReadRequest struct {
	UserID int64 `json:"userId"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
