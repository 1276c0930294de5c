package postgres

import (
	"database/sql"
	"time"

	"github.com/premoball/premo-api/internal/domain/match"
)

type matchTableModel struct {
	ID            int64         `db:"id"`
	HomeTeamID    int64         `db:"home_team_id"`
	AwayTeamID    int64         `db:"away_team_id"`
	HomeTeamName  string        `db:"home_team_name"`
	AwayTeamName  string        `db:"away_team_name"`
	HomeTeamImage string        `db:"home_team_image"`
	AwayTeamImage string        `db:"away_team_image"`
	HomeStadium   string        `db:"home_stadium"`
	KickoffAt     time.Time     `db:"kickoff_at"`
	HomeGoals     sql.NullInt64 `db:"home_goals"`
	AwayGoals     sql.NullInt64 `db:"away_goals"`
	Status        string        `db:"status"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		HomeTeamName:  m.HomeTeamName,
		AwayTeamName:  m.AwayTeamName,
		HomeTeamImage: m.HomeTeamImage,
		AwayTeamImage: m.AwayTeamImage,
		HomeStadium:   m.HomeStadium,
		KickoffAt:     m.KickoffAt,
		HomeGoals:     nullInt64ToIntPtr(m.HomeGoals),
		AwayGoals:     nullInt64ToIntPtr(m.AwayGoals),
		Status:        m.Status,
	}
}

func nullInt64ToIntPtr(value sql.NullInt64) *int {
	if !value.Valid {
		return nil
	}
	v := int(value.Int64)
	return &v
}
