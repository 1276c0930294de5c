package match

// HeadToHead is the completed-match history between two teams, tallied
// from the reference home team's point of view. The reference frame is
// the currently viewed match, not the historical fixtures: HomeWins counts
// how often the reference home team beat the reference away team, no
// matter which of the two hosted each historical meeting.
type HeadToHead struct {
	Matches  []Match
	HomeWins int
	AwayWins int
	Draws    int
}

// TallyHeadToHead filters candidate rows down to completed meetings of the
// two reference teams (excluding the viewed match), orders them newest
// first, and tallies the series. History entries keep their recorded
// home/away assignment; only the tally is re-framed.
func TallyHeadToHead(refHomeID, refAwayID, excludeMatchID int64, matches []Match) HeadToHead {
	history := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.ID == excludeMatchID || !m.Completed() {
			continue
		}
		if !isPairing(m, refHomeID, refAwayID) {
			continue
		}
		history = append(history, m)
	}
	sortNewestFirst(history)

	h2h := HeadToHead{Matches: history}
	for _, m := range history {
		refHomeAtHome := m.HomeTeamID == refHomeID

		var refHomeGoals, refAwayGoals int
		if refHomeAtHome {
			refHomeGoals, refAwayGoals = *m.HomeGoals, *m.AwayGoals
		} else {
			refHomeGoals, refAwayGoals = *m.AwayGoals, *m.HomeGoals
		}

		switch {
		case refHomeGoals > refAwayGoals:
			h2h.HomeWins++
		case refHomeGoals < refAwayGoals:
			h2h.AwayWins++
		default:
			h2h.Draws++
		}
	}
	return h2h
}

func isPairing(m Match, teamA, teamB int64) bool {
	if m.HomeTeamID == teamA && m.AwayTeamID == teamB {
		return true
	}
	return m.HomeTeamID == teamB && m.AwayTeamID == teamA
}
