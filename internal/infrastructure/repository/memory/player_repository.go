package memory

import (
	"context"
	"sync"

	"github.com/premoball/premo-api/internal/domain/player"
)

type statKey struct {
	playerID int64
	seasonID int64
}

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]player.Player
	stats   map[statKey]player.SeasonStat
}

func NewPlayerRepository(players []player.Player, stats []player.SeasonStat) *PlayerRepository {
	byID := make(map[int64]player.Player, len(players))
	for _, item := range players {
		byID[item.ID] = item
	}
	byKey := make(map[statKey]player.SeasonStat, len(stats))
	for _, item := range stats {
		byKey[statKey{playerID: item.PlayerID, seasonID: item.SeasonID}] = item
	}
	return &PlayerRepository{players: byID, stats: byKey}
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}

func (r *PlayerRepository) GetSeasonStat(_ context.Context, playerID, seasonID int64) (player.SeasonStat, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stat, ok := r.stats[statKey{playerID: playerID, seasonID: seasonID}]
	return stat, ok, nil
}

func (r *PlayerRepository) GetPercentileProfile(_ context.Context, playerID, seasonID int64) (player.PercentileProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	if !ok {
		return player.PercentileProfile{}, false, nil
	}

	profile := player.PercentileProfile{PlayerID: playerID, Name: item.FullName}
	if stat, ok := r.stats[statKey{playerID: playerID, seasonID: seasonID}]; ok {
		profile.Percentiles = stat.Percentiles
	}
	return profile, true, nil
}
