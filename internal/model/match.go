package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchState represents the current phase of a match
type MatchState string

const (
	MatchStateSetup    MatchState = "setup"     // Boards placed, not yet started
	MatchStatePlaying  MatchState = "playing"   // Combatants alternating strikes
	MatchStateGameOver MatchState = "game_over" // A fleet has been sunk
)

// Seats in a match
const (
	PlayerOne = 1
	PlayerTwo = 2
)

// MatchSummary is the record of a completed match
type MatchSummary struct {
	ID          MatchID       `json:"id"`
	Winner      int           `json:"winner"`
	WinnerLabel string        `json:"winner_label"`
	WinnerKind  CombatantKind `json:"winner_kind"`
	WinnerStats HitStats      `json:"winner_stats"`
	LoserStats  HitStats      `json:"loser_stats"`
	HalfTurns   int           `json:"half_turns"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt time.Time     `json:"completed_at"`
}

// Loser returns the seat number of the losing combatant
func (s MatchSummary) Loser() int {
	if s.Winner == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}
