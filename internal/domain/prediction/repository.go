package prediction

import "context"

// Repository exposes model-output read operations. Each match has at most
// one prediction row.
type Repository interface {
	GetByMatch(ctx context.Context, matchID int64) (ModelOutput, bool, error)
}
