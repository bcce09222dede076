package dto

import model "taskflow.com/taskflow/internal/models"

// SearchResults is the envelope returned for a cross-entity search. All
// four lists are always present, each capped independently.
type SearchResults struct {
	Tasks    []model.Task    `json:"tasks"`
	Projects []model.Project `json:"projects"`
	Users    []model.User    `json:"users"`
	Teams    []model.Team    `json:"teams"`
}
