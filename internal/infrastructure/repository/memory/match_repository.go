package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/premoball/premo-api/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	return &MatchRepository{matches: append([]match.Match(nil), matches...)}
}

func (r *MatchRepository) GetByID(_ context.Context, matchID int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.ID == matchID {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *MatchRepository) ListByKickoffRange(_ context.Context, from, to time.Time) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.KickoffAt.Before(from) || !m.KickoffAt.Before(to) {
			continue
		}
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) ListCompletedByTeam(_ context.Context, teamID, excludeMatchID int64, limit int) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.ID == excludeMatchID || !m.Completed() || !m.HasTeam(teamID) {
			continue
		}
		out = append(out, m)
	}
	sortNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MatchRepository) ListCompletedBetween(_ context.Context, teamA, teamB, excludeMatchID int64) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.matches {
		if m.ID == excludeMatchID || !m.Completed() {
			continue
		}
		pair := (m.HomeTeamID == teamA && m.AwayTeamID == teamB) ||
			(m.HomeTeamID == teamB && m.AwayTeamID == teamA)
		if !pair {
			continue
		}
		out = append(out, m)
	}
	sortNewestFirst(out)
	return out, nil
}

func sortNewestFirst(matches []match.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].KickoffAt.Equal(matches[j].KickoffAt) {
			return matches[i].KickoffAt.After(matches[j].KickoffAt)
		}
		return matches[i].ID > matches[j].ID
	})
}
