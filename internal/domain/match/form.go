package match

import "sort"

// Outcome labels a completed match from one team's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeDraw Outcome = "DRAW"
	OutcomeLoss Outcome = "LOSS"
)

// FormLimit caps how many recent matches make up a team's form.
const FormLimit = 5

// FormEntry is one completed match seen from the viewed team's side:
// the opponent is always the other participant, regardless of which side
// the viewed team occupied in that fixture.
type FormEntry struct {
	MatchID       int64
	Opponent      string
	OpponentImage string
	TeamImage     string
	Outcome       Outcome
	GoalsFor      int
	GoalsAgainst  int
}

// RecentForm derives a team's recent form from candidate rows: only
// completed matches the team took part in, never the excluded match,
// ordered by kickoff descending (match id descending on equal kickoff),
// capped at FormLimit. The repository applies the same predicate; the
// filter here keeps the derivation correct for any input.
func RecentForm(teamID, excludeMatchID int64, matches []Match) []FormEntry {
	eligible := make([]Match, 0, len(matches))
	for _, m := range matches {
		if m.ID == excludeMatchID || !m.Completed() || !m.HasTeam(teamID) {
			continue
		}
		eligible = append(eligible, m)
	}
	sortNewestFirst(eligible)
	if len(eligible) > FormLimit {
		eligible = eligible[:FormLimit]
	}

	entries := make([]FormEntry, 0, len(eligible))
	for _, m := range eligible {
		entries = append(entries, formEntry(teamID, m))
	}
	return entries
}

func formEntry(teamID int64, m Match) FormEntry {
	isHome := m.HomeTeamID == teamID

	entry := FormEntry{MatchID: m.ID}
	if isHome {
		entry.Opponent = m.AwayTeamName
		entry.OpponentImage = m.AwayTeamImage
		entry.TeamImage = m.HomeTeamImage
		entry.GoalsFor = *m.HomeGoals
		entry.GoalsAgainst = *m.AwayGoals
	} else {
		entry.Opponent = m.HomeTeamName
		entry.OpponentImage = m.HomeTeamImage
		entry.TeamImage = m.AwayTeamImage
		entry.GoalsFor = *m.AwayGoals
		entry.GoalsAgainst = *m.HomeGoals
	}

	switch {
	case entry.GoalsFor > entry.GoalsAgainst:
		entry.Outcome = OutcomeWin
	case entry.GoalsFor < entry.GoalsAgainst:
		entry.Outcome = OutcomeLoss
	default:
		entry.Outcome = OutcomeDraw
	}
	return entry
}

func sortNewestFirst(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].KickoffAt.Equal(matches[j].KickoffAt) {
			return matches[i].KickoffAt.After(matches[j].KickoffAt)
		}
		return matches[i].ID > matches[j].ID
	})
}
