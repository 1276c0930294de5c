package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/premoball/premo-api/internal/domain/player"
	qb "github.com/premoball/premo-api/internal/platform/querybuilder"
)

var playerColumns = []string{
	"id",
	"full_name",
	"nationality",
	"birth_date",
	"height",
	"preferred_foot",
	"shirt",
	"primary_position",
}

var seasonStatColumns = []string{
	"s.player_id",
	"s.season_id",
	"s.team_id",
	"t.name AS team_name",
	"t.color AS team_color",
	"s.matches",
	"s.goals",
	"s.assists",
	"s.rating",
	"s.pct_touches",
	"s.pct_shot_attempts",
	"s.pct_goals",
	"s.pct_aerial_duels_won",
	"s.pct_defensive_actions",
	"s.pct_chances_created",
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).
		From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, errors.Wrap(err, "build select player by id query")
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, errors.Wrap(err, "select player by id")
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetSeasonStat(ctx context.Context, playerID, seasonID int64) (player.SeasonStat, bool, error) {
	row, ok, err := r.getSeasonStatRow(ctx, playerID, seasonID)
	if err != nil || !ok {
		return player.SeasonStat{}, false, err
	}
	return row.toDomain(), true, nil
}

// GetPercentileProfile resolves the player first; a known player with no
// stat row for the season yields zero percentiles rather than a miss.
func (r *PlayerRepository) GetPercentileProfile(ctx context.Context, playerID, seasonID int64) (player.PercentileProfile, bool, error) {
	item, ok, err := r.GetByID(ctx, playerID)
	if err != nil || !ok {
		return player.PercentileProfile{}, false, err
	}

	profile := player.PercentileProfile{PlayerID: playerID, Name: item.FullName}

	row, ok, err := r.getSeasonStatRow(ctx, playerID, seasonID)
	if err != nil {
		return player.PercentileProfile{}, false, err
	}
	if ok {
		profile.Percentiles = row.toPercentiles()
	}
	return profile, true, nil
}

func (r *PlayerRepository) getSeasonStatRow(ctx context.Context, playerID, seasonID int64) (seasonStatTableModel, bool, error) {
	query, args, err := qb.Select(seasonStatColumns...).
		From("player_stats s").
		LeftJoin("teams t ON t.id = s.team_id").
		Where(
			qb.Eq("s.player_id", playerID),
			qb.Eq("s.season_id", seasonID),
		).
		ToSQL()
	if err != nil {
		return seasonStatTableModel{}, false, errors.Wrap(err, "build select season stat query")
	}

	var row seasonStatTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return seasonStatTableModel{}, false, nil
		}
		return seasonStatTableModel{}, false, errors.Wrap(err, "select season stat")
	}
	return row, true, nil
}
