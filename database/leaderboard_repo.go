package database

import (
	"github.com/rpupo63/content-mock-backend/models"
)

type LeaderboardRepo struct {
	entries *collection[models.LeaderboardEntry]
}

func NewLeaderboardRepo(entries []models.LeaderboardEntry) *LeaderboardRepo {
	return &LeaderboardRepo{newCollection(entries, func(e models.LeaderboardEntry) string { return e.ID })}
}

// FindAll returns the leaderboard in stored order. Entries are not re-sorted by rank.
func (r *LeaderboardRepo) FindAll() []models.LeaderboardEntry {
	return r.entries.all()
}

func (r *LeaderboardRepo) Count() int {
	return r.entries.len()
}
