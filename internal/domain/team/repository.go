package team

import "context"

// Repository exposes team read operations.
type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
}
