package models

// LeaderboardEntry is one ranked row of the leaderboard
type LeaderboardEntry struct {
	ID           string   `json:"id" yaml:"id"`
	Rank         int      `json:"rank" yaml:"rank"`
	Name         string   `json:"name" yaml:"name"`
	AvatarURL    string   `json:"avatarUrl" yaml:"avatarUrl"`
	Points       int      `json:"points" yaml:"points"`
	Achievements []string `json:"achievements" yaml:"achievements"`
}
