package player

import "time"

// Player is one player's biographical row.
type Player struct {
	ID              int64
	FullName        string
	Nationality     string
	BirthDate       time.Time
	Height          int
	PreferredFoot   string
	Shirt           int
	PrimaryPosition string
}

// Percentiles is the fixed set of season-relative standings, each in
// [0,100]. A player with no stat row for the season carries zeros.
type Percentiles struct {
	Touches          float64
	ShotAttempts     float64
	Goals            float64
	AerialDuelsWon   float64
	DefensiveActions float64
	ChancesCreated   float64
}

// SeasonStat is one player's aggregate line for a season, joined with the
// club it was recorded for. TeamID is zero when the stat row has no club
// reference.
type SeasonStat struct {
	PlayerID    int64
	SeasonID    int64
	TeamID      int64
	TeamName    string
	TeamColor   string
	Matches     int
	Goals       int
	Assists     int
	Rating      float64
	Percentiles Percentiles
}

// PercentileProfile is the slice of a player the prediction model exposes:
// identity plus the radar-chart metrics.
type PercentileProfile struct {
	PlayerID    int64
	Name        string
	Percentiles Percentiles
}
