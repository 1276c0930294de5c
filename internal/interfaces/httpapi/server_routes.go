package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	// The bare "/" pattern catches everything no explicit route claims.
	mux.HandleFunc("/", handler.NotFound)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /match/matchSchedule", handler.MatchSchedule)
	mux.HandleFunc("GET /match/matchInfo", handler.MatchInfo)
	mux.HandleFunc("GET /match/matchDetail", handler.MatchDetail)
	mux.HandleFunc("GET /match/matchHeadToHead", handler.MatchHeadToHead)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /player/matchPlayer", handler.MatchPlayer)
}
