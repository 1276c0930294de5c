package player

import "context"

// Repository exposes player read operations. Season-scoped lookups take
// the season id explicitly; callers pass the configured constant.
type Repository interface {
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	// GetSeasonStat returns the player's stat line for the season, club
	// join included. ok is false when no stat row exists.
	GetSeasonStat(ctx context.Context, playerID, seasonID int64) (SeasonStat, bool, error)
	// GetPercentileProfile returns the player's identity plus percentile
	// metrics for the season. ok is false when the player does not exist;
	// a missing stat row yields zero percentiles, not a miss.
	GetPercentileProfile(ctx context.Context, playerID, seasonID int64) (PercentileProfile, bool, error)
}
