package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/premoball/premo-api/internal/config"
	"github.com/premoball/premo-api/internal/infrastructure/repository/postgres"
	"github.com/premoball/premo-api/internal/interfaces/httpapi"
	"github.com/premoball/premo-api/internal/platform/logging"
	"github.com/premoball/premo-api/internal/usecase"
)

// NewHTTPServer connects the database, wires repositories into services
// and the router, and returns the server plus the handle to close on
// shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, *sqlx.DB, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	matchRepo := postgres.NewMatchRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	predictionRepo := postgres.NewPredictionRepository(db)

	matchSvc := usecase.NewMatchService(
		matchRepo,
		teamRepo,
		playerRepo,
		predictionRepo,
		cfg.SeasonID,
		cfg.DBQueryTimeout,
	)
	playerSvc := usecase.NewPlayerService(playerRepo, cfg.SeasonID, cfg.DBQueryTimeout)

	handler := httpapi.NewHandler(matchSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, db, nil
}
