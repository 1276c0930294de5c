package memory

import (
	"context"
	"sync"

	"github.com/premoball/premo-api/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[int64]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}
	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}
