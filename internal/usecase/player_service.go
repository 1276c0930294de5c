package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/premoball/premo-api/internal/domain/player"
)

// PlayerProfile is a player's biographical row plus the season stat line
// backing the profile page and its radar chart.
type PlayerProfile struct {
	Player     player.Player
	SeasonStat player.SeasonStat
}

type PlayerService struct {
	playerRepo   player.Repository
	seasonID     int64
	queryTimeout time.Duration
}

func NewPlayerService(playerRepo player.Repository, seasonID int64, queryTimeout time.Duration) *PlayerService {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &PlayerService{
		playerRepo:   playerRepo,
		seasonID:     seasonID,
		queryTimeout: queryTimeout,
	}
}

// Profile returns the player's bio and season stat line. The two lookups
// are independent and run concurrently. An unknown player is NotFound; a
// known player with no stat row gets a zero-valued stat line.
func (s *PlayerService) Profile(ctx context.Context, playerID int64) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	if playerID <= 0 {
		return PlayerProfile{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	var profile PlayerProfile

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		item, ok, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return wrapQueryErr("get player", err)
		}
		if !ok {
			return fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
		}
		profile.Player = item
		return nil
	})
	p.Go(func(ctx context.Context) error {
		stat, ok, err := s.playerRepo.GetSeasonStat(ctx, playerID, s.seasonID)
		if err != nil {
			return wrapQueryErr("get player season stat", err)
		}
		if !ok {
			stat = player.SeasonStat{PlayerID: playerID, SeasonID: s.seasonID}
		}
		profile.SeasonStat = stat
		return nil
	})
	if err := p.Wait(); err != nil {
		return PlayerProfile{}, err
	}

	return profile, nil
}
