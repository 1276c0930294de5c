package postgres

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/premoball/premo-api/internal/domain/match"
	qb "github.com/premoball/premo-api/internal/platform/querybuilder"
)

// matchColumns joins each match row with both participating teams. The
// home side doubles as the venue owner.
var matchColumns = []string{
	"m.id",
	"m.home_team_id",
	"m.away_team_id",
	"h.name AS home_team_name",
	"a.name AS away_team_name",
	"h.image AS home_team_image",
	"a.image AS away_team_image",
	"h.stadium AS home_stadium",
	"m.kickoff_at",
	"m.home_goals",
	"m.away_goals",
	"m.status",
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (match.Match, bool, error) {
	query, args, err := matchSelect().
		Where(qb.Eq("m.id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, errors.Wrap(err, "build select match by id query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, errors.Wrap(err, "select match by id")
	}

	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListByKickoffRange(ctx context.Context, from, to time.Time) ([]match.Match, error) {
	query, args, err := matchSelect().
		Where(
			qb.Gte("m.kickoff_at", from),
			qb.Lt("m.kickoff_at", to),
		).
		OrderBy("m.kickoff_at", "m.id").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matches by kickoff range query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches by kickoff range")
	}

	return toDomainMatches(rows), nil
}

func (r *MatchRepository) ListCompletedByTeam(ctx context.Context, teamID, excludeMatchID int64, limit int) ([]match.Match, error) {
	query, args, err := matchSelect().
		Where(
			qb.Or(
				qb.Eq("m.home_team_id", teamID),
				qb.Eq("m.away_team_id", teamID),
			),
			qb.Neq("m.id", excludeMatchID),
			qb.IsNotNull("m.home_goals"),
			qb.IsNotNull("m.away_goals"),
		).
		OrderBy("m.kickoff_at DESC", "m.id DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select completed matches by team query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select completed matches by team")
	}

	return toDomainMatches(rows), nil
}

func (r *MatchRepository) ListCompletedBetween(ctx context.Context, teamA, teamB, excludeMatchID int64) ([]match.Match, error) {
	query, args, err := matchSelect().
		Where(
			qb.Or(
				qb.And(
					qb.Eq("m.home_team_id", teamA),
					qb.Eq("m.away_team_id", teamB),
				),
				qb.And(
					qb.Eq("m.home_team_id", teamB),
					qb.Eq("m.away_team_id", teamA),
				),
			),
			qb.Neq("m.id", excludeMatchID),
			qb.IsNotNull("m.home_goals"),
			qb.IsNotNull("m.away_goals"),
		).
		OrderBy("m.kickoff_at DESC", "m.id DESC").
		ToSQL()
	if err != nil {
		return nil, errors.Wrap(err, "build select matches between teams query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "select matches between teams")
	}

	return toDomainMatches(rows), nil
}

func matchSelect() *qb.SelectBuilder {
	return qb.Select(matchColumns...).
		From("matches m").
		Join("teams h ON h.id = m.home_team_id").
		Join("teams a ON a.id = m.away_team_id")
}

func toDomainMatches(rows []matchTableModel) []match.Match {
	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
