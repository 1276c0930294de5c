package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/premoball/premo-api/internal/domain/match"
	"github.com/premoball/premo-api/internal/domain/player"
	"github.com/premoball/premo-api/internal/domain/prediction"
	"github.com/premoball/premo-api/internal/domain/team"
)

// MatchPreview is a match's descriptive fields plus both teams' recent form.
type MatchPreview struct {
	Match    match.Match
	HomeForm []match.FormEntry
	AwayForm []match.FormEntry
}

// MatchDetail is a match plus its model prediction and the two key-player
// percentile profiles the model designates.
type MatchDetail struct {
	Match         match.Match
	Output        prediction.ModelOutput
	HomeKeyPlayer player.PercentileProfile
	AwayKeyPlayer player.PercentileProfile
}

// HeadToHeadResult is the viewed match plus the tallied series between its
// two teams.
type HeadToHeadResult struct {
	Match      match.Match
	HeadToHead match.HeadToHead
}

type MatchService struct {
	matchRepo      match.Repository
	teamRepo       team.Repository
	playerRepo     player.Repository
	predictionRepo prediction.Repository
	seasonID       int64
	queryTimeout   time.Duration
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	predictionRepo prediction.Repository,
	seasonID int64,
	queryTimeout time.Duration,
) *MatchService {
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &MatchService{
		matchRepo:      matchRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		predictionRepo: predictionRepo,
		seasonID:       seasonID,
		queryTimeout:   queryTimeout,
	}
}

// Schedule returns matches with kickoff in [day 00:00, day+1 00:00),
// oldest first.
func (s *MatchService) Schedule(ctx context.Context, day time.Time) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer span.End()

	if day.IsZero() {
		return nil, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	from := day.UTC().Truncate(24 * time.Hour)
	to := from.Add(24 * time.Hour)

	matches, err := s.matchRepo.ListByKickoffRange(ctx, from, to)
	if err != nil {
		return nil, wrapQueryErr("list match schedule", err)
	}
	return matches, nil
}

// Preview returns the match's info and both teams' recent form. The two
// form lookups have no ordering dependency and run concurrently.
func (s *MatchService) Preview(ctx context.Context, matchID int64) (MatchPreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Preview")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	viewed, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchPreview{}, err
	}

	preview := MatchPreview{Match: viewed}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		form, err := s.recentForm(ctx, viewed.HomeTeamID, matchID)
		if err != nil {
			return err
		}
		preview.HomeForm = form
		return nil
	})
	p.Go(func(ctx context.Context) error {
		form, err := s.recentForm(ctx, viewed.AwayTeamID, matchID)
		if err != nil {
			return err
		}
		preview.AwayForm = form
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchPreview{}, err
	}

	return preview, nil
}

// Detail returns the match plus model output and the two key-player
// percentile profiles. A match without a model output is NotFound; a model
// output naming an unknown player is inconsistent data.
func (s *MatchService) Detail(ctx context.Context, matchID int64) (MatchDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Detail")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	viewed, err := s.getMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, err
	}

	output, ok, err := s.predictionRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return MatchDetail{}, wrapQueryErr("get model output", err)
	}
	if !ok {
		return MatchDetail{}, fmt.Errorf("%w: model output for match=%d", ErrNotFound, matchID)
	}

	detail := MatchDetail{Match: viewed, Output: output}

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		profile, err := s.keyPlayerProfile(ctx, output.HomeKeyPlayerID)
		if err != nil {
			return err
		}
		detail.HomeKeyPlayer = profile
		return nil
	})
	p.Go(func(ctx context.Context) error {
		profile, err := s.keyPlayerProfile(ctx, output.AwayKeyPlayerID)
		if err != nil {
			return err
		}
		detail.AwayKeyPlayer = profile
		return nil
	})
	if err := p.Wait(); err != nil {
		return MatchDetail{}, err
	}

	return detail, nil
}

// HeadToHead returns the series between the viewed match's two teams,
// tallied with the viewed match's home side as the reference frame. The
// pair lookup needs the team ids and therefore runs strictly after the
// match-info lookup.
func (s *MatchService) HeadToHead(ctx context.Context, matchID int64) (HeadToHeadResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.HeadToHead")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	viewed, err := s.getMatch(ctx, matchID)
	if err != nil {
		return HeadToHeadResult{}, err
	}

	history, err := s.matchRepo.ListCompletedBetween(ctx, viewed.HomeTeamID, viewed.AwayTeamID, matchID)
	if err != nil {
		return HeadToHeadResult{}, wrapQueryErr("list head-to-head matches", err)
	}

	return HeadToHeadResult{
		Match:      viewed,
		HeadToHead: match.TallyHeadToHead(viewed.HomeTeamID, viewed.AwayTeamID, matchID, history),
	}, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	viewed, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, wrapQueryErr("get match", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return viewed, nil
}

func (s *MatchService) recentForm(ctx context.Context, teamID, excludeMatchID int64) ([]match.FormEntry, error) {
	_, ok, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, wrapQueryErr("get team", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	matches, err := s.matchRepo.ListCompletedByTeam(ctx, teamID, excludeMatchID, match.FormLimit)
	if err != nil {
		return nil, wrapQueryErr("list recent matches", err)
	}
	return match.RecentForm(teamID, excludeMatchID, matches), nil
}

func (s *MatchService) keyPlayerProfile(ctx context.Context, playerID int64) (player.PercentileProfile, error) {
	profile, ok, err := s.playerRepo.GetPercentileProfile(ctx, playerID, s.seasonID)
	if err != nil {
		return player.PercentileProfile{}, wrapQueryErr("get key player profile", err)
	}
	if !ok {
		return player.PercentileProfile{}, fmt.Errorf("%w: key player=%d has no player row", ErrInconsistentData, playerID)
	}
	return profile, nil
}

func wrapQueryErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", ErrDependencyUnavailable, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
