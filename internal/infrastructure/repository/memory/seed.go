package memory

import (
	"time"

	"github.com/premoball/premo-api/internal/domain/match"
	"github.com/premoball/premo-api/internal/domain/player"
	"github.com/premoball/premo-api/internal/domain/prediction"
	"github.com/premoball/premo-api/internal/domain/team"
)

// Seed identifiers used across the service tests.
const (
	TeamIDArsenal   int64 = 1
	TeamIDChelsea   int64 = 2
	TeamIDLiverpool int64 = 3
	TeamIDSpurs     int64 = 4

	MatchIDUpcoming int64 = 100

	PlayerIDSaka    int64 = 11
	PlayerIDPalmer  int64 = 21
	PlayerIDNoStats int64 = 41
	SeasonID2023    int64 = 719
)

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: TeamIDArsenal, Name: "Arsenal", Image: "/pics/arsenal.png", Stadium: "Emirates Stadium", Color: "#EF0107"},
		{ID: TeamIDChelsea, Name: "Chelsea", Image: "/pics/chelsea.png", Stadium: "Stamford Bridge", Color: "#034694"},
		{ID: TeamIDLiverpool, Name: "Liverpool", Image: "/pics/liverpool.png", Stadium: "Anfield", Color: "#C8102E"},
		{ID: TeamIDSpurs, Name: "Tottenham Hotspur", Image: "/pics/spurs.png", Stadium: "Tottenham Hotspur Stadium", Color: "#132257"},
	}
}

// SeedMatches returns one upcoming fixture (Arsenal vs Chelsea, no goals
// yet) plus enough completed history to exercise form caps and the
// head-to-head tally.
func SeedMatches() []match.Match {
	teams := make(map[int64]team.Team, 4)
	for _, t := range SeedTeams() {
		teams[t.ID] = t
	}

	build := func(id, homeID, awayID int64, kickoff time.Time, homeGoals, awayGoals *int, status string) match.Match {
		home, away := teams[homeID], teams[awayID]
		return match.Match{
			ID:            id,
			HomeTeamID:    homeID,
			AwayTeamID:    awayID,
			HomeTeamName:  home.Name,
			AwayTeamName:  away.Name,
			HomeTeamImage: home.Image,
			AwayTeamImage: away.Image,
			HomeStadium:   home.Stadium,
			KickoffAt:     kickoff,
			HomeGoals:     homeGoals,
			AwayGoals:     awayGoals,
			Status:        status,
		}
	}
	goals := func(v int) *int { return &v }
	day := func(month time.Month, d, hour, min int) time.Time {
		return time.Date(2024, month, d, hour, min, 0, 0, time.UTC)
	}

	return []match.Match{
		// The viewed fixture and the rest of its matchday.
		build(MatchIDUpcoming, TeamIDArsenal, TeamIDChelsea, day(time.May, 1, 15, 0), nil, nil, match.StatusScheduled),
		build(110, TeamIDLiverpool, TeamIDSpurs, day(time.May, 1, 17, 30), nil, nil, match.StatusScheduled),
		build(111, TeamIDSpurs, TeamIDChelsea, day(time.May, 2, 12, 0), nil, nil, match.StatusScheduled),

		// Arsenal / Chelsea meetings: A home 2-1, B home 0-0, A home 1-3.
		build(101, TeamIDArsenal, TeamIDChelsea, day(time.March, 1, 15, 0), goals(2), goals(1), match.StatusFinished),
		build(102, TeamIDChelsea, TeamIDArsenal, day(time.February, 1, 15, 0), goals(0), goals(0), match.StatusFinished),
		build(103, TeamIDArsenal, TeamIDChelsea, day(time.January, 1, 15, 0), goals(1), goals(3), match.StatusFinished),

		// Other completed matches feeding recent form.
		build(104, TeamIDLiverpool, TeamIDArsenal, day(time.April, 20, 15, 0), goals(1), goals(1), match.StatusFinished),
		build(105, TeamIDArsenal, TeamIDSpurs, day(time.April, 10, 15, 0), goals(3), goals(0), match.StatusFinished),
		build(106, TeamIDArsenal, TeamIDLiverpool, day(time.March, 20, 15, 0), goals(0), goals(2), match.StatusFinished),
		build(107, TeamIDChelsea, TeamIDSpurs, day(time.April, 15, 15, 0), goals(2), goals(2), match.StatusFinished),
		build(108, TeamIDLiverpool, TeamIDChelsea, day(time.April, 5, 15, 0), goals(0), goals(1), match.StatusFinished),

		// Postponed fixture with no goals; must never reach aggregates.
		build(109, TeamIDArsenal, TeamIDSpurs, day(time.April, 25, 15, 0), nil, nil, match.StatusPostponed),
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{
			ID:              PlayerIDSaka,
			FullName:        "Bukayo Saka",
			Nationality:     "England",
			BirthDate:       time.Date(2001, time.September, 5, 0, 0, 0, 0, time.UTC),
			Height:          178,
			PreferredFoot:   "Left",
			Shirt:           7,
			PrimaryPosition: "RW",
		},
		{
			ID:              PlayerIDPalmer,
			FullName:        "Cole Palmer",
			Nationality:     "England",
			BirthDate:       time.Date(2002, time.May, 6, 0, 0, 0, 0, time.UTC),
			Height:          185,
			PreferredFoot:   "Left",
			Shirt:           20,
			PrimaryPosition: "AM",
		},
		{
			ID:              PlayerIDNoStats,
			FullName:        "Myles Lewis-Skelly",
			Nationality:     "England",
			BirthDate:       time.Date(2006, time.September, 26, 0, 0, 0, 0, time.UTC),
			Height:          178,
			PreferredFoot:   "Left",
			Shirt:           49,
			PrimaryPosition: "LB",
		},
	}
}

func SeedSeasonStats() []player.SeasonStat {
	return []player.SeasonStat{
		{
			PlayerID:  PlayerIDSaka,
			SeasonID:  SeasonID2023,
			TeamID:    TeamIDArsenal,
			TeamName:  "Arsenal",
			TeamColor: "#EF0107",
			Matches:   35,
			Goals:     16,
			Assists:   9,
			Rating:    7.54,
			Percentiles: player.Percentiles{
				Touches:          88,
				ShotAttempts:     91,
				Goals:            93,
				AerialDuelsWon:   34,
				DefensiveActions: 41,
				ChancesCreated:   95,
			},
		},
		{
			PlayerID:  PlayerIDPalmer,
			SeasonID:  SeasonID2023,
			TeamID:    TeamIDChelsea,
			TeamName:  "Chelsea",
			TeamColor: "#034694",
			Matches:   33,
			Goals:     22,
			Assists:   11,
			Rating:    7.87,
			Percentiles: player.Percentiles{
				Touches:          82,
				ShotAttempts:     94,
				Goals:            97,
				AerialDuelsWon:   22,
				DefensiveActions: 38,
				ChancesCreated:   92,
			},
		},
	}
}

func SeedModelOutputs() []prediction.ModelOutput {
	return []prediction.ModelOutput{
		{
			MatchID:            MatchIDUpcoming,
			HomeWinProbability: 45,
			DrawProbability:    30,
			Scorelines: []prediction.Scoreline{
				{HomeScore: 2, AwayScore: 1, Probability: 18.5},
				{HomeScore: 1, AwayScore: 1, Probability: 14.2},
				{HomeScore: 2, AwayScore: 0, Probability: 11.7},
			},
			HomeKeyPlayerID: PlayerIDSaka,
			AwayKeyPlayerID: PlayerIDPalmer,
		},
	}
}
