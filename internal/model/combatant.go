package model

import "strconv"

// CombatantKind distinguishes human-driven from strategy-driven combatants
type CombatantKind string

const (
	CombatantHuman CombatantKind = "human"
	CombatantAI    CombatantKind = "ai"
)

// Label returns the display label for a combatant in the given seat
func (k CombatantKind) Label(number int) string {
	if k == CombatantAI {
		return "AI Player " + strconv.Itoa(number)
	}
	return "Player " + strconv.Itoa(number)
}
