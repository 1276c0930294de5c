package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/premoball/premo-api/internal/domain/player"
	"github.com/premoball/premo-api/internal/infrastructure/repository/memory"
)

func newPlayerService() *PlayerService {
	return NewPlayerService(
		memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedSeasonStats()),
		memory.SeasonID2023,
		time.Second,
	)
}

func TestPlayerService_Profile(t *testing.T) {
	service := newPlayerService()

	profile, err := service.Profile(t.Context(), memory.PlayerIDSaka)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	if profile.Player.FullName != "Bukayo Saka" {
		t.Fatalf("unexpected player: %s", profile.Player.FullName)
	}
	if profile.SeasonStat.TeamName != "Arsenal" || profile.SeasonStat.Goals != 16 {
		t.Fatalf("unexpected stat line: %+v", profile.SeasonStat)
	}
	if profile.SeasonStat.Percentiles.ShotAttempts != 91 {
		t.Fatalf("unexpected percentiles: %+v", profile.SeasonStat.Percentiles)
	}
}

func TestPlayerService_Profile_NoStatRow(t *testing.T) {
	service := newPlayerService()

	profile, err := service.Profile(t.Context(), memory.PlayerIDNoStats)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	if profile.Player.FullName != "Myles Lewis-Skelly" {
		t.Fatalf("unexpected player: %s", profile.Player.FullName)
	}
	want := player.SeasonStat{PlayerID: memory.PlayerIDNoStats, SeasonID: memory.SeasonID2023}
	if profile.SeasonStat != want {
		t.Fatalf("expected zero stat line, got %+v", profile.SeasonStat)
	}
}

func TestPlayerService_Profile_UnknownPlayer(t *testing.T) {
	service := newPlayerService()

	if _, err := service.Profile(t.Context(), 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Profile_InvalidID(t *testing.T) {
	service := newPlayerService()

	if _, err := service.Profile(t.Context(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
