package errors

import "net/http"

var ErrTeamNameTaken = &Exception{
	Message:    "a team with that name already exists",
	StatusCode: http.StatusConflict,
}
