package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/premoball/premo-api/internal/domain/match"
	"github.com/premoball/premo-api/internal/domain/player"
	"github.com/premoball/premo-api/internal/infrastructure/repository/memory"
)

func newMatchService() *MatchService {
	return NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedSeasonStats()),
		memory.NewPredictionRepository(memory.SeedModelOutputs()),
		memory.SeasonID2023,
		time.Second,
	)
}

func TestMatchService_Schedule_WindowAndOrder(t *testing.T) {
	service := newMatchService()

	day := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	matches, err := service.Schedule(t.Context(), day)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches on matchday, got %d", len(matches))
	}
	if matches[0].ID != memory.MatchIDUpcoming || matches[1].ID != 110 {
		t.Fatalf("expected matches ordered by kickoff [100 110], got [%d %d]", matches[0].ID, matches[1].ID)
	}
	for _, m := range matches {
		if m.KickoffAt.Before(day.Truncate(24 * time.Hour)) {
			t.Fatalf("match %d kickoff %v outside requested day", m.ID, m.KickoffAt)
		}
	}
}

func TestMatchService_Schedule_EmptyDay(t *testing.T) {
	service := newMatchService()

	matches, err := service.Schedule(t.Context(), time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected empty schedule, got %d matches", len(matches))
	}
}

func TestMatchService_Schedule_ZeroDay(t *testing.T) {
	service := newMatchService()

	if _, err := service.Schedule(t.Context(), time.Time{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero day, got %v", err)
	}
}

func TestMatchService_Preview(t *testing.T) {
	service := newMatchService()

	preview, err := service.Preview(t.Context(), memory.MatchIDUpcoming)
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}

	if preview.Match.HomeTeamName != "Arsenal" || preview.Match.AwayTeamName != "Chelsea" {
		t.Fatalf("unexpected pairing: %s vs %s", preview.Match.HomeTeamName, preview.Match.AwayTeamName)
	}

	// Arsenal has six completed fixtures in the seed; the oldest falls off.
	if len(preview.HomeForm) != match.FormLimit {
		t.Fatalf("expected home form capped at %d, got %d", match.FormLimit, len(preview.HomeForm))
	}
	wantHome := []struct {
		opponent string
		outcome  match.Outcome
	}{
		{"Liverpool", match.OutcomeDraw},
		{"Tottenham Hotspur", match.OutcomeWin},
		{"Liverpool", match.OutcomeLoss},
		{"Chelsea", match.OutcomeWin},
		{"Chelsea", match.OutcomeDraw},
	}
	for i, want := range wantHome {
		got := preview.HomeForm[i]
		if got.Opponent != want.opponent || got.Outcome != want.outcome {
			t.Fatalf("home form[%d]: got %s/%s, want %s/%s", i, got.Opponent, got.Outcome, want.opponent, want.outcome)
		}
	}

	// Chelsea has only 5 completed fixtures in the seed.
	if len(preview.AwayForm) != 5 {
		t.Fatalf("expected 5 away form entries, got %d", len(preview.AwayForm))
	}
	if preview.AwayForm[0].Opponent != "Tottenham Hotspur" || preview.AwayForm[0].Outcome != match.OutcomeDraw {
		t.Fatalf("away form[0]: got %s/%s", preview.AwayForm[0].Opponent, preview.AwayForm[0].Outcome)
	}

	for _, entry := range append(preview.HomeForm, preview.AwayForm...) {
		if entry.MatchID == memory.MatchIDUpcoming {
			t.Fatalf("viewed match leaked into form")
		}
	}
}

func TestMatchService_Preview_UnknownMatch(t *testing.T) {
	service := newMatchService()

	if _, err := service.Preview(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Preview_InvalidID(t *testing.T) {
	service := newMatchService()

	if _, err := service.Preview(t.Context(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Detail(t *testing.T) {
	service := newMatchService()

	detail, err := service.Detail(t.Context(), memory.MatchIDUpcoming)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}

	if detail.Output.HomeWinProbability != 45 || detail.Output.DrawProbability != 30 {
		t.Fatalf("unexpected probabilities: home=%v draw=%v", detail.Output.HomeWinProbability, detail.Output.DrawProbability)
	}
	if got := detail.Output.LoseProbability(); got != 25 {
		t.Fatalf("expected lose probability 25, got %v", got)
	}
	if len(detail.Output.Scorelines) != 3 || detail.Output.Scorelines[0].Probability < detail.Output.Scorelines[1].Probability {
		t.Fatalf("expected scorelines most likely first, got %+v", detail.Output.Scorelines)
	}

	if detail.HomeKeyPlayer.Name != "Bukayo Saka" {
		t.Fatalf("unexpected home key player: %s", detail.HomeKeyPlayer.Name)
	}
	if detail.AwayKeyPlayer.Name != "Cole Palmer" {
		t.Fatalf("unexpected away key player: %s", detail.AwayKeyPlayer.Name)
	}
	if detail.HomeKeyPlayer.Percentiles.ChancesCreated != 95 {
		t.Fatalf("unexpected home key player percentiles: %+v", detail.HomeKeyPlayer.Percentiles)
	}
}

func TestMatchService_Detail_NoModelOutput(t *testing.T) {
	service := newMatchService()

	// Match 110 is on the schedule but the model never scored it.
	if _, err := service.Detail(t.Context(), 110); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unscored match, got %v", err)
	}
}

func TestMatchService_Detail_KeyPlayerMissingRow(t *testing.T) {
	outputs := memory.SeedModelOutputs()
	outputs[0].HomeKeyPlayerID = 777 // no such player

	service := NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedSeasonStats()),
		memory.NewPredictionRepository(outputs),
		memory.SeasonID2023,
		time.Second,
	)

	if _, err := service.Detail(t.Context(), memory.MatchIDUpcoming); !errors.Is(err, ErrInconsistentData) {
		t.Fatalf("expected ErrInconsistentData, got %v", err)
	}
}

func TestMatchService_Detail_KeyPlayerWithoutStats(t *testing.T) {
	outputs := memory.SeedModelOutputs()
	outputs[0].AwayKeyPlayerID = memory.PlayerIDNoStats

	service := NewMatchService(
		memory.NewMatchRepository(memory.SeedMatches()),
		memory.NewTeamRepository(memory.SeedTeams()),
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedSeasonStats()),
		memory.NewPredictionRepository(outputs),
		memory.SeasonID2023,
		time.Second,
	)

	detail, err := service.Detail(t.Context(), memory.MatchIDUpcoming)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if detail.AwayKeyPlayer.Name != "Myles Lewis-Skelly" {
		t.Fatalf("unexpected away key player: %s", detail.AwayKeyPlayer.Name)
	}
	if detail.AwayKeyPlayer.Percentiles != (player.Percentiles{}) {
		t.Fatalf("expected zero percentiles, got %+v", detail.AwayKeyPlayer.Percentiles)
	}
}

func TestMatchService_HeadToHead(t *testing.T) {
	service := newMatchService()

	result, err := service.HeadToHead(t.Context(), memory.MatchIDUpcoming)
	if err != nil {
		t.Fatalf("head-to-head failed: %v", err)
	}

	h2h := result.HeadToHead
	if len(h2h.Matches) != 3 {
		t.Fatalf("expected 3 prior meetings, got %d", len(h2h.Matches))
	}
	if h2h.HomeWins != 1 || h2h.AwayWins != 1 || h2h.Draws != 1 {
		t.Fatalf("expected tally 1/1/1, got %d/%d/%d", h2h.HomeWins, h2h.AwayWins, h2h.Draws)
	}
	if h2h.HomeWins+h2h.AwayWins+h2h.Draws != len(h2h.Matches) {
		t.Fatalf("tally does not cover history")
	}

	// Newest meeting first.
	if h2h.Matches[0].ID != 101 || h2h.Matches[2].ID != 103 {
		t.Fatalf("expected meetings ordered [101 102 103], got %v", meetingIDs(h2h.Matches))
	}
}

func TestMatchService_HeadToHead_UnknownMatch(t *testing.T) {
	service := newMatchService()

	if _, err := service.HeadToHead(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func meetingIDs(matches []match.Match) []int64 {
	ids := make([]int64, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}
