package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/premoball/premo-api/internal/domain/team"
	qb "github.com/premoball/premo-api/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Image   string `db:"image"`
	Stadium string `db:"stadium"`
	Color   string `db:"color"`
}

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	query, args, err := qb.Select("id", "name", "image", "stadium", "color").
		From("teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, errors.Wrap(err, "build select team by id query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, errors.Wrap(err, "select team by id")
	}

	return team.Team{
		ID:      row.ID,
		Name:    row.Name,
		Image:   row.Image,
		Stadium: row.Stadium,
		Color:   row.Color,
	}, true, nil
}
