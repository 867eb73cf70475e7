package api

import (
	"net/http"

	"github.com/rpupo63/content-mock-backend/database"
	"github.com/rs/zerolog/log"
)

type leaderboardHandler struct {
	responder       Responder
	leaderboardRepo *database.LeaderboardRepo
}

func newLeaderboardHandler(leaderboardRepo *database.LeaderboardRepo) leaderboardHandler {
	logger := log.With().Str("handlerName", "leaderboardHandler").Logger()

	return leaderboardHandler{
		responder:       NewResponder(logger),
		leaderboardRepo: leaderboardRepo,
	}
}

// @Summary Get leaderboard
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} models.LeaderboardEntry "Leaderboard entries"
// @Router /api/leaderboard [get]
func (h leaderboardHandler) getLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, r, h.leaderboardRepo.FindAll())
	}
}
