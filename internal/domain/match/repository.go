package match

import (
	"context"
	"time"
)

// Repository exposes the read queries over the match table, each row
// joined with both teams.
type Repository interface {
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	// ListByKickoffRange returns matches with kickoff in [from, to),
	// oldest first.
	ListByKickoffRange(ctx context.Context, from, to time.Time) ([]Match, error)
	// ListCompletedByTeam returns the team's completed matches excluding
	// one match id, newest first, capped at limit.
	ListCompletedByTeam(ctx context.Context, teamID, excludeMatchID int64, limit int) ([]Match, error)
	// ListCompletedBetween returns all completed meetings of the two teams
	// in either home/away assignment, excluding one match id, newest first.
	ListCompletedBetween(ctx context.Context, teamA, teamB, excludeMatchID int64) ([]Match, error)
}
