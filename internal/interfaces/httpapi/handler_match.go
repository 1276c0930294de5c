package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/premoball/premo-api/internal/domain/match"
	"github.com/premoball/premo-api/internal/domain/player"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type matchScheduleParams struct {
	MatchDate string `validate:"required,datetime=2006-01-02"`
}

func (h *Handler) MatchSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchSchedule")
	defer span.End()

	raw := r.URL.Query().Get("matchDate")
	if raw == "" {
		writeFailure(ctx, w, http.StatusBadRequest, "matchDate 파라미터가 필요합니다.")
		return
	}
	if err := h.validator.StructCtx(ctx, matchScheduleParams{MatchDate: raw}); err != nil {
		writeFailure(ctx, w, http.StatusBadRequest, "matchDate 형식이 올바르지 않습니다.")
		return
	}
	day, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		writeFailure(ctx, w, http.StatusBadRequest, "matchDate 형식이 올바르지 않습니다.")
		return
	}

	matches, err := h.matchService.Schedule(ctx, day)
	if err != nil {
		h.logger.WarnContext(ctx, "match schedule failed", "match_date", raw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleEntryDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, scheduleEntryDTO{
			HomeTeamName:  m.HomeTeamName,
			AwayTeamName:  m.AwayTeamName,
			MatchTime:     m.KickoffAt.Format(timeLayout),
			HomeTeamImage: m.HomeTeamImage,
			AwayTeamImage: m.AwayTeamImage,
			League:        leagueLabel,
			MatchID:       m.ID,
		})
	}

	writeSuccess(ctx, w, items)
}

func (h *Handler) MatchInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchInfo")
	defer span.End()

	matchID, ok := h.matchIDParam(ctx, w, r)
	if !ok {
		return
	}

	preview, err := h.matchService.Preview(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match info failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, matchInfoDTO{
		HomeTeamName:      preview.Match.HomeTeamName,
		AwayTeamName:      preview.Match.AwayTeamName,
		MatchTime:         preview.Match.KickoffAt.Format(timeLayout),
		HomeTeamImage:     preview.Match.HomeTeamImage,
		AwayTeamImage:     preview.Match.AwayTeamImage,
		League:            leagueLabel,
		MatchVenue:        preview.Match.HomeStadium,
		HomeRecentMatches: formToDTO(ctx, preview.HomeForm),
		AwayRecentMatches: formToDTO(ctx, preview.AwayForm),
	})
}

func (h *Handler) MatchDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchDetail")
	defer span.End()

	matchID, ok := h.matchIDParam(ctx, w, r)
	if !ok {
		return
	}

	detail, err := h.matchService.Detail(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match detail failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	predicted := make([]scorelineDTO, 0, len(detail.Output.Scorelines))
	for _, s := range detail.Output.Scorelines {
		predicted = append(predicted, scorelineDTO{
			HomeScore:   s.HomeScore,
			AwayScore:   s.AwayScore,
			Probability: s.Probability,
		})
	}

	writeSuccess(ctx, w, matchDetailDTO{
		HomeTeamName:    detail.Match.HomeTeamName,
		AwayTeamName:    detail.Match.AwayTeamName,
		MatchTime:       detail.Match.KickoffAt.Format(timeLayout),
		HomeTeamImage:   detail.Match.HomeTeamImage,
		AwayTeamImage:   detail.Match.AwayTeamImage,
		League:          leagueLabel,
		MatchVenue:      detail.Match.HomeStadium,
		WinProbability:  detail.Output.HomeWinProbability,
		DrawProbability: detail.Output.DrawProbability,
		LoseProbability: detail.Output.LoseProbability(),
		Predicted:       predicted,
		HomeKeyPlayer:   keyPlayerToDTO(ctx, detail.HomeKeyPlayer),
		AwayKeyPlayer:   keyPlayerToDTO(ctx, detail.AwayKeyPlayer),
	})
}

func (h *Handler) MatchHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MatchHeadToHead")
	defer span.End()

	matchID, ok := h.matchIDParam(ctx, w, r)
	if !ok {
		return
	}

	result, err := h.matchService.HeadToHead(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "match head-to-head failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	history := make([]headToHeadEntryDTO, 0, len(result.HeadToHead.Matches))
	for _, m := range result.HeadToHead.Matches {
		history = append(history, headToHeadEntryDTO{
			League:        leagueLabel,
			MatchDate:     m.KickoffAt.Format(dateLayout),
			MatchVenue:    m.HomeStadium,
			HomeScore:     *m.HomeGoals,
			AwayScore:     *m.AwayGoals,
			MatchID:       m.ID,
			HomeTeamName:  m.HomeTeamName,
			AwayTeamName:  m.AwayTeamName,
			HomeTeamImage: m.HomeTeamImage,
			AwayTeamImage: m.AwayTeamImage,
		})
	}

	writeSuccess(ctx, w, headToHeadDTO{
		HomeTeamName:  result.Match.HomeTeamName,
		AwayTeamName:  result.Match.AwayTeamName,
		HomeTeamImage: result.Match.HomeTeamImage,
		AwayTeamImage: result.Match.AwayTeamImage,
		MatchInfo:     history,
		HomeWin:       result.HeadToHead.HomeWins,
		AwayWin:       result.HeadToHead.AwayWins,
		Draw:          result.HeadToHead.Draws,
	})
}

// matchIDParam parses the matchId query parameter, writing the 400
// response itself when the parameter is missing or malformed.
func (h *Handler) matchIDParam(ctx context.Context, w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("matchId")
	if raw == "" {
		writeFailure(ctx, w, http.StatusBadRequest, "matchId 파라미터가 필요합니다.")
		return 0, false
	}
	matchID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || matchID <= 0 {
		writeFailure(ctx, w, http.StatusBadRequest, "matchId 형식이 올바르지 않습니다.")
		return 0, false
	}
	return matchID, true
}

type scheduleEntryDTO struct {
	HomeTeamName  string `json:"homeTeamName"`
	AwayTeamName  string `json:"awayTeamName"`
	MatchTime     string `json:"matchTime"`
	HomeTeamImage string `json:"homeTeamImage"`
	AwayTeamImage string `json:"awayTeamImage"`
	League        string `json:"league"`
	MatchID       int64  `json:"matchId"`
}

type matchInfoDTO struct {
	HomeTeamName      string         `json:"homeTeamName"`
	AwayTeamName      string         `json:"awayTeamName"`
	MatchTime         string         `json:"matchTime"`
	HomeTeamImage     string         `json:"homeTeamImage"`
	AwayTeamImage     string         `json:"awayTeamImage"`
	League            string         `json:"league"`
	MatchVenue        string         `json:"matchVenue"`
	HomeRecentMatches []formEntryDTO `json:"homeRecentMatches"`
	AwayRecentMatches []formEntryDTO `json:"awayRecentMatches"`
}

type formEntryDTO struct {
	Opponent      string `json:"opponent"`
	OpponentImage string `json:"opponentImage"`
	TeamImage     string `json:"teamImage"`
	Result        string `json:"result"`
	Score         int    `json:"score"`
	OpponentScore int    `json:"opponentScore"`
}

type matchDetailDTO struct {
	HomeTeamName    string         `json:"homeTeamName"`
	AwayTeamName    string         `json:"awayTeamName"`
	MatchTime       string         `json:"matchTime"`
	HomeTeamImage   string         `json:"homeTeamImage"`
	AwayTeamImage   string         `json:"awayTeamImage"`
	League          string         `json:"league"`
	MatchVenue      string         `json:"matchVenue"`
	WinProbability  float64        `json:"winProbability"`
	DrawProbability float64        `json:"drawProbability"`
	LoseProbability float64        `json:"loseProbability"`
	Predicted       []scorelineDTO `json:"predicted"`
	HomeKeyPlayer   keyPlayerDTO   `json:"homeKeyPlayer"`
	AwayKeyPlayer   keyPlayerDTO   `json:"awayKeyPlayer"`
}

type scorelineDTO struct {
	HomeScore   int     `json:"homeScore"`
	AwayScore   int     `json:"awayScore"`
	Probability float64 `json:"probability"`
}

// keyPlayerDTO keys mirror the stat column names the radar chart reads,
// including the historical chances_creted spelling.
type keyPlayerDTO struct {
	PlayerID                   int64   `json:"playerId"`
	Name                       string  `json:"name"`
	TouchesPercentile          float64 `json:"touches_percentile"`
	ShotAttemptsPercentile     float64 `json:"shot_attempts_percentile"`
	GoalsPercentile            float64 `json:"goals_percentile"`
	AerialDuelsWonPercentile   float64 `json:"aerial_duels_won_percentile"`
	DefensiveActionsPercentile float64 `json:"defensive_actions_percentile"`
	ChancesCreatedPercentile   float64 `json:"chances_creted_percentile"`
}

type headToHeadDTO struct {
	HomeTeamName  string               `json:"homeTeamName"`
	AwayTeamName  string               `json:"awayTeamName"`
	HomeTeamImage string               `json:"homeTeamImage"`
	AwayTeamImage string               `json:"awayTeamImage"`
	MatchInfo     []headToHeadEntryDTO `json:"matchInfo"`
	HomeWin       int                  `json:"homeWin"`
	AwayWin       int                  `json:"awayWin"`
	Draw          int                  `json:"draw"`
}

type headToHeadEntryDTO struct {
	League        string `json:"league"`
	MatchDate     string `json:"matchDate"`
	MatchVenue    string `json:"matchVenue"`
	HomeScore     int    `json:"homeScore"`
	AwayScore     int    `json:"awayScore"`
	MatchID       int64  `json:"match_id"`
	HomeTeamName  string `json:"homeTeamName"`
	AwayTeamName  string `json:"awayTeamName"`
	HomeTeamImage string `json:"homeTeamImage"`
	AwayTeamImage string `json:"awayTeamImage"`
}

func formToDTO(ctx context.Context, entries []match.FormEntry) []formEntryDTO {
	_, span := startSpan(ctx, "httpapi.formToDTO")
	defer span.End()

	items := make([]formEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, formEntryDTO{
			Opponent:      entry.Opponent,
			OpponentImage: entry.OpponentImage,
			TeamImage:     entry.TeamImage,
			Result:        outcomeLabel(entry.Outcome),
			Score:         entry.GoalsFor,
			OpponentScore: entry.GoalsAgainst,
		})
	}
	return items
}

func keyPlayerToDTO(ctx context.Context, profile player.PercentileProfile) keyPlayerDTO {
	_, span := startSpan(ctx, "httpapi.keyPlayerToDTO")
	defer span.End()

	return keyPlayerDTO{
		PlayerID:                   profile.PlayerID,
		Name:                       profile.Name,
		TouchesPercentile:          profile.Percentiles.Touches,
		ShotAttemptsPercentile:     profile.Percentiles.ShotAttempts,
		GoalsPercentile:            profile.Percentiles.Goals,
		AerialDuelsWonPercentile:   profile.Percentiles.AerialDuelsWon,
		DefensiveActionsPercentile: profile.Percentiles.DefensiveActions,
		ChancesCreatedPercentile:   profile.Percentiles.ChancesCreated,
	}
}

func outcomeLabel(outcome match.Outcome) string {
	switch outcome {
	case match.OutcomeWin:
		return "승"
	case match.OutcomeLoss:
		return "패"
	default:
		return "무"
	}
}
