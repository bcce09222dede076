package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"unicode/utf8"

	"taskflow.com/taskflow/internal/cache"
	dto "taskflow.com/taskflow/internal/data_models"
	model "taskflow.com/taskflow/internal/models"
	repository "taskflow.com/taskflow/internal/repositories"
)

// searchLimit caps each entity kind independently.
const searchLimit = 10

// minQueryLength is measured after trimming; anything shorter returns an
// empty envelope without touching the store.
const minQueryLength = 2

// SearchService fans a substring query out across tasks, projects, users
// and teams in parallel and merges the capped results into one envelope.
// Matching is case-insensitive.
type SearchService struct {
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	teams    *repository.TeamRepository
	cache    *cache.SearchCache
}

func NewSearchService(
	tasks *repository.TaskRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	teams *repository.TeamRepository,
	searchCache *cache.SearchCache,
) *SearchService {
	return &SearchService{
		tasks:    tasks,
		projects: projects,
		users:    users,
		teams:    teams,
		cache:    searchCache,
	}
}

func (s *SearchService) Search(ctx context.Context, query string) (*dto.SearchResults, error) {
	term := strings.TrimSpace(query)
	if utf8.RuneCountInString(term) < minQueryLength {
		return emptyResults(), nil
	}

	if payload, ok := s.cache.Get(ctx, term); ok {
		var cached dto.SearchResults
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	results := emptyResults()
	errs := make([]error, 4)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		results.Tasks, errs[0] = s.tasks.Search(ctx, term, searchLimit)
	}()
	go func() {
		defer wg.Done()
		results.Projects, errs[1] = s.projects.Search(ctx, term, searchLimit)
	}()
	go func() {
		defer wg.Done()
		results.Users, errs[2] = s.users.Search(ctx, term, searchLimit)
	}()
	go func() {
		defer wg.Done()
		results.Teams, errs[3] = s.teams.Search(ctx, term, searchLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("search %q: %w", term, err)
		}
	}

	// Find may leave a nil slice; the envelope promises four lists.
	if results.Tasks == nil {
		results.Tasks = []model.Task{}
	}
	if results.Projects == nil {
		results.Projects = []model.Project{}
	}
	if results.Users == nil {
		results.Users = []model.User{}
	}
	if results.Teams == nil {
		results.Teams = []model.Team{}
	}

	if payload, err := json.Marshal(results); err == nil {
		if err := s.cache.Set(ctx, term, payload); err != nil {
			log.Printf("search cache write failed: %v", err)
		}
	}

	return results, nil
}

func emptyResults() *dto.SearchResults {
	return &dto.SearchResults{
		Tasks:    []model.Task{},
		Projects: []model.Project{},
		Users:    []model.User{},
		Teams:    []model.Team{},
	}
}
