package services

import (
	"context"
	"fmt"
	"log"

	dto "taskflow.com/taskflow/internal/data_models"
	apperrors "taskflow.com/taskflow/internal/errors"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

type TeamService struct {
	teams *repository.TeamRepository
	users *repository.UserRepository
}

func NewTeamService(teams *repository.TeamRepository, users *repository.UserRepository) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// List enriches each team with its member count and the resolved product
// owner name for the list view.
func (s *TeamService) List(ctx context.Context) ([]model.TeamWithOwner, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]model.TeamWithOwner, 0, len(teams))
	for _, team := range teams {
		row := model.TeamWithOwner{Team: team, UserCount: len(team.Users)}
		if team.ProductOwnerUserID != nil {
			owner, err := s.users.FindByID(ctx, *team.ProductOwnerUserID)
			if err != nil {
				log.Printf("product owner lookup failed: team=%d err=%v", team.ID, err)
			} else {
				row.ProductOwnerUsername = owner.Username
			}
		}
		enriched = append(enriched, row)
	}
	return enriched, nil
}

func (s *TeamService) Create(ctx context.Context, req *dto.CreateTeamRequest) (*model.Team, error) {
	if req.Teamname == "" {
		return nil, apperrors.Validation("missing required field: teamname")
	}

	taken, err := s.teams.ExistsByName(ctx, req.Teamname)
	if err != nil {
		return nil, fmt.Errorf("check team name: %w", err)
	}
	if taken {
		return nil, apperrors.ErrTeamNameTaken
	}

	team := &model.Team{
		Teamname:           req.Teamname,
		ProductOwnerUserID: req.ProductOwnerUserID,
	}
	if err := s.teams.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return team, nil
}
