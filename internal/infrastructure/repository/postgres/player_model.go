package postgres

import (
	"database/sql"
	"time"

	"github.com/premoball/premo-api/internal/domain/player"
)

type playerTableModel struct {
	ID              int64     `db:"id"`
	FullName        string    `db:"full_name"`
	Nationality     string    `db:"nationality"`
	BirthDate       time.Time `db:"birth_date"`
	Height          int       `db:"height"`
	PreferredFoot   string    `db:"preferred_foot"`
	Shirt           int       `db:"shirt"`
	PrimaryPosition string    `db:"primary_position"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:              m.ID,
		FullName:        m.FullName,
		Nationality:     m.Nationality,
		BirthDate:       m.BirthDate,
		Height:          m.Height,
		PreferredFoot:   m.PreferredFoot,
		Shirt:           m.Shirt,
		PrimaryPosition: m.PrimaryPosition,
	}
}

type seasonStatTableModel struct {
	PlayerID            int64          `db:"player_id"`
	SeasonID            int64          `db:"season_id"`
	TeamID              sql.NullInt64  `db:"team_id"`
	TeamName            sql.NullString `db:"team_name"`
	TeamColor           sql.NullString `db:"team_color"`
	Matches             int            `db:"matches"`
	Goals               int            `db:"goals"`
	Assists             int            `db:"assists"`
	Rating              float64        `db:"rating"`
	PctTouches          float64        `db:"pct_touches"`
	PctShotAttempts     float64        `db:"pct_shot_attempts"`
	PctGoals            float64        `db:"pct_goals"`
	PctAerialDuelsWon   float64        `db:"pct_aerial_duels_won"`
	PctDefensiveActions float64        `db:"pct_defensive_actions"`
	PctChancesCreated   float64        `db:"pct_chances_created"`
}

func (m seasonStatTableModel) toDomain() player.SeasonStat {
	return player.SeasonStat{
		PlayerID:    m.PlayerID,
		SeasonID:    m.SeasonID,
		TeamID:      m.TeamID.Int64,
		TeamName:    m.TeamName.String,
		TeamColor:   m.TeamColor.String,
		Matches:     m.Matches,
		Goals:       m.Goals,
		Assists:     m.Assists,
		Rating:      m.Rating,
		Percentiles: m.toPercentiles(),
	}
}

func (m seasonStatTableModel) toPercentiles() player.Percentiles {
	return player.Percentiles{
		Touches:          m.PctTouches,
		ShotAttempts:     m.PctShotAttempts,
		Goals:            m.PctGoals,
		AerialDuelsWon:   m.PctAerialDuelsWon,
		DefensiveActions: m.PctDefensiveActions,
		ChancesCreated:   m.PctChancesCreated,
	}
}
