package match

import "time"

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
)

// Match is one fixture joined with both participating teams. Goal counts
// are nil until the match has been played.
type Match struct {
	ID            int64
	HomeTeamID    int64
	AwayTeamID    int64
	HomeTeamName  string
	AwayTeamName  string
	HomeTeamImage string
	AwayTeamImage string
	HomeStadium   string
	KickoffAt     time.Time
	HomeGoals     *int
	AwayGoals     *int
	Status        string
}

// Completed reports whether both goal counts are recorded. Only completed
// matches feed form and head-to-head aggregates.
func (m Match) Completed() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

// HasTeam reports whether the team played in this match, on either side.
func (m Match) HasTeam(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}
