package httpapi

import (
	"context"
	"net/http"
	"strconv"
)

func (h *Handler) MatchPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchPlayer")
	defer span.End()

	playerID, ok := h.playerIDParam(ctx, w, r)
	if !ok {
		return
	}

	profile, err := h.playerService.Profile(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player profile failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, playerProfileDTO{
		Name:                       profile.Player.FullName,
		TeamName:                   profile.SeasonStat.TeamName,
		TeamID:                     profile.SeasonStat.TeamID,
		TeamColor:                  profile.SeasonStat.TeamColor,
		PlayerImage:                "null",
		PlayerBirth:                profile.Player.BirthDate.Format(dateLayout),
		PlayerNationality:          profile.Player.Nationality,
		PlayerHeight:               profile.Player.Height,
		PlayerPreferredFoot:        profile.Player.PreferredFoot,
		PlayerBackNumber:           profile.Player.Shirt,
		Position:                   profile.Player.PrimaryPosition,
		Appearances:                profile.SeasonStat.Matches,
		Goals:                      profile.SeasonStat.Goals,
		Assists:                    profile.SeasonStat.Assists,
		AverageRating:              profile.SeasonStat.Rating,
		TouchesPercentile:          profile.SeasonStat.Percentiles.Touches,
		ShotAttemptsPercentile:     profile.SeasonStat.Percentiles.ShotAttempts,
		GoalsPercentile:            profile.SeasonStat.Percentiles.Goals,
		AerialDuelsWonPercentile:   profile.SeasonStat.Percentiles.AerialDuelsWon,
		DefensiveActionsPercentile: profile.SeasonStat.Percentiles.DefensiveActions,
		ChancesCreatedPercentile:   profile.SeasonStat.Percentiles.ChancesCreated,
	})
}

func (h *Handler) playerIDParam(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("playerId")
	if raw == "" {
		writeFailure(ctx, w, http.StatusBadRequest, "playerId 파라미터가 필요합니다.")
		return 0, false
	}
	playerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || playerID <= 0 {
		writeFailure(ctx, w, http.StatusBadRequest, "playerId 형식이 올바르지 않습니다.")
		return 0, false
	}
	return playerID, true
}

// playerProfileDTO keys follow the profile page contract; Name keeps its
// historical capitalization and playerImage is the literal "null" until
// player photos exist.
type playerProfileDTO struct {
	Name                       string  `json:"Name"`
	TeamName                   string  `json:"teamName"`
	TeamID                     int64   `json:"teamId"`
	TeamColor                  string  `json:"teamColor"`
	PlayerImage                string  `json:"playerImage"`
	PlayerBirth                string  `json:"playerBirth"`
	PlayerNationality          string  `json:"playerNationality"`
	PlayerHeight               int     `json:"playerHeight"`
	PlayerPreferredFoot        string  `json:"playerPreferredFoot"`
	PlayerBackNumber           int     `json:"playerBackNumber"`
	Position                   string  `json:"position"`
	Appearances                int     `json:"appearances"`
	Goals                      int     `json:"goals"`
	Assists                    int     `json:"assists"`
	AverageRating              float64 `json:"averageRating"`
	TouchesPercentile          float64 `json:"touches_percentile"`
	ShotAttemptsPercentile     float64 `json:"shot_attempts_percentile"`
	GoalsPercentile            float64 `json:"goals_percentile"`
	AerialDuelsWonPercentile   float64 `json:"aerial_duels_won_percentile"`
	DefensiveActionsPercentile float64 `json:"defensive_actions_percentile"`
	ChancesCreatedPercentile   float64 `json:"chances_creted_percentile"`
}
