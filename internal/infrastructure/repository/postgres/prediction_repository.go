package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/premoball/premo-api/internal/domain/prediction"
	qb "github.com/premoball/premo-api/internal/platform/querybuilder"
)

// modelOutputTableModel flattens the three ranked scorelines into columns;
// rank order is the column order, never re-derived from probabilities.
type modelOutputTableModel struct {
	MatchID            int64   `db:"match_id"`
	HomeWinProbability float64 `db:"home_win_probability"`
	DrawProbability    float64 `db:"draw_probability"`
	Score1Home         int     `db:"score1_home"`
	Score1Away         int     `db:"score1_away"`
	Score1Probability  float64 `db:"score1_probability"`
	Score2Home         int     `db:"score2_home"`
	Score2Away         int     `db:"score2_away"`
	Score2Probability  float64 `db:"score2_probability"`
	Score3Home         int     `db:"score3_home"`
	Score3Away         int     `db:"score3_away"`
	Score3Probability  float64 `db:"score3_probability"`
	HomeKeyPlayerID    int64   `db:"home_key_player_id"`
	AwayKeyPlayerID    int64   `db:"away_key_player_id"`
}

func (m modelOutputTableModel) toDomain() prediction.ModelOutput {
	return prediction.ModelOutput{
		MatchID:            m.MatchID,
		HomeWinProbability: m.HomeWinProbability,
		DrawProbability:    m.DrawProbability,
		Scorelines: []prediction.Scoreline{
			{HomeScore: m.Score1Home, AwayScore: m.Score1Away, Probability: m.Score1Probability},
			{HomeScore: m.Score2Home, AwayScore: m.Score2Away, Probability: m.Score2Probability},
			{HomeScore: m.Score3Home, AwayScore: m.Score3Away, Probability: m.Score3Probability},
		},
		HomeKeyPlayerID: m.HomeKeyPlayerID,
		AwayKeyPlayerID: m.AwayKeyPlayerID,
	}
}

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) GetByMatch(ctx context.Context, matchID int64) (prediction.ModelOutput, bool, error) {
	query, args, err := qb.Select("*").
		From("model_outputs").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return prediction.ModelOutput{}, false, errors.Wrap(err, "build select model output query")
	}

	var row modelOutputTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.ModelOutput{}, false, nil
		}
		return prediction.ModelOutput{}, false, errors.Wrap(err, "select model output")
	}

	return row.toDomain(), true, nil
}
