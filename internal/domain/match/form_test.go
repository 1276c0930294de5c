package match

import (
	"testing"
	"time"
)

func intp(v int) *int { return &v }

func completed(id, homeID, awayID int64, homeGoals, awayGoals int, kickoff time.Time) Match {
	return Match{
		ID:            id,
		HomeTeamID:    homeID,
		AwayTeamID:    awayID,
		HomeTeamName:  teamName(homeID),
		AwayTeamName:  teamName(awayID),
		HomeTeamImage: teamName(homeID) + ".png",
		AwayTeamImage: teamName(awayID) + ".png",
		KickoffAt:     kickoff,
		HomeGoals:     intp(homeGoals),
		AwayGoals:     intp(awayGoals),
		Status:        StatusFinished,
	}
}

func teamName(id int64) string {
	names := map[int64]string{1: "Arsenal", 2: "Chelsea", 3: "Liverpool"}
	return names[id]
}

func TestRecentForm_OutcomePerspective(t *testing.T) {
	now := time.Date(2024, time.May, 1, 15, 0, 0, 0, time.UTC)
	matches := []Match{
		completed(10, 1, 2, 3, 1, now),                     // team 1 home win
		completed(11, 2, 1, 2, 0, now.Add(-24*time.Hour)),  // team 1 away loss
		completed(12, 3, 1, 1, 1, now.Add(-48*time.Hour)),  // team 1 away draw
		completed(13, 1, 3, 0, 2, now.Add(-72*time.Hour)),  // team 1 home loss
	}

	form := RecentForm(1, 99, matches)
	if len(form) != 4 {
		t.Fatalf("unexpected form length: %d", len(form))
	}

	want := []struct {
		outcome      Outcome
		opponent     string
		goalsFor     int
		goalsAgainst int
	}{
		{OutcomeWin, "Chelsea", 3, 1},
		{OutcomeLoss, "Chelsea", 0, 2},
		{OutcomeDraw, "Liverpool", 1, 1},
		{OutcomeLoss, "Liverpool", 0, 2},
	}
	for i, w := range want {
		got := form[i]
		if got.Outcome != w.outcome || got.Opponent != w.opponent ||
			got.GoalsFor != w.goalsFor || got.GoalsAgainst != w.goalsAgainst {
			t.Fatalf("entry %d mismatch: got %+v want %+v", i, got, w)
		}
	}
}

func TestRecentForm_OutcomeInvariant(t *testing.T) {
	now := time.Date(2024, time.May, 1, 15, 0, 0, 0, time.UTC)
	matches := make([]Match, 0, 12)
	var id int64
	for hg := 0; hg < 2; hg++ {
		for ag := 0; ag < 2; ag++ {
			id++
			matches = append(matches, completed(id, 1, 2, hg, ag, now.Add(-time.Duration(id)*time.Hour)))
		}
	}

	for _, entry := range RecentForm(1, 0, matches) {
		switch {
		case entry.GoalsFor > entry.GoalsAgainst:
			if entry.Outcome != OutcomeWin {
				t.Fatalf("expected WIN for %d-%d, got %s", entry.GoalsFor, entry.GoalsAgainst, entry.Outcome)
			}
		case entry.GoalsFor < entry.GoalsAgainst:
			if entry.Outcome != OutcomeLoss {
				t.Fatalf("expected LOSS for %d-%d, got %s", entry.GoalsFor, entry.GoalsAgainst, entry.Outcome)
			}
		default:
			if entry.Outcome != OutcomeDraw {
				t.Fatalf("expected DRAW for %d-%d, got %s", entry.GoalsFor, entry.GoalsAgainst, entry.Outcome)
			}
		}
	}
}

func TestRecentForm_ExcludesViewedAndIncomplete(t *testing.T) {
	now := time.Date(2024, time.May, 1, 15, 0, 0, 0, time.UTC)
	incomplete := Match{ID: 20, HomeTeamID: 1, AwayTeamID: 2, KickoffAt: now, HomeGoals: intp(1)}
	matches := []Match{
		completed(21, 1, 2, 1, 0, now.Add(-time.Hour)),
		completed(22, 1, 3, 2, 2, now.Add(-2*time.Hour)),
		incomplete,
	}

	form := RecentForm(1, 21, matches)
	if len(form) != 1 {
		t.Fatalf("unexpected form length: %d", len(form))
	}
	if form[0].MatchID != 22 {
		t.Fatalf("unexpected match id: %d", form[0].MatchID)
	}
}

func TestRecentForm_CapAndOrdering(t *testing.T) {
	now := time.Date(2024, time.May, 1, 15, 0, 0, 0, time.UTC)
	matches := make([]Match, 0, 8)
	for i := int64(1); i <= 8; i++ {
		matches = append(matches, completed(i, 1, 2, 1, 0, now.Add(-time.Duration(i)*24*time.Hour)))
	}

	form := RecentForm(1, 0, matches)
	if len(form) != FormLimit {
		t.Fatalf("form not capped: %d", len(form))
	}
	for i := 1; i < len(form); i++ {
		if form[i-1].MatchID >= form[i].MatchID {
			continue
		}
		t.Fatalf("form not ordered newest first: %d before %d", form[i-1].MatchID, form[i].MatchID)
	}
}

func TestRecentForm_SameKickoffTieBreaksByID(t *testing.T) {
	kickoff := time.Date(2024, time.May, 1, 15, 0, 0, 0, time.UTC)
	matches := []Match{
		completed(30, 1, 2, 1, 0, kickoff),
		completed(32, 1, 3, 0, 1, kickoff),
		completed(31, 2, 1, 2, 2, kickoff),
	}

	form := RecentForm(1, 0, matches)
	if form[0].MatchID != 32 || form[1].MatchID != 31 || form[2].MatchID != 30 {
		t.Fatalf("unexpected tie-break order: %d, %d, %d", form[0].MatchID, form[1].MatchID, form[2].MatchID)
	}
}
