package dto

// CreateProjectRequest takes "name" from the client and maps it onto the
// schema's historical teamname column.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type CreateTeamRequest struct {
	Teamname           string `json:"teamname"`
	ProductOwnerUserID *int64 `json:"productOwnerUserId"`
}
