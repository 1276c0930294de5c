package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/premoball/premo-api/internal/platform/logging"
	"github.com/premoball/premo-api/internal/usecase"
)

// leagueLabel is the competition tag the pages print on every card. The
// dataset covers a single league.
const leagueLabel = "Premier League"

type Handler struct {
	matchService  *usecase.MatchService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	playerService *usecase.PlayerService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		matchService:  matchService,
		playerService: playerService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, map[string]string{"status": "ok"})
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NotFound")
	defer span.End()

	writeFailure(ctx, w, http.StatusNotFound, "요청하신 경로를 찾을 수 없습니다.")
}
