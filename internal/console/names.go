package console

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/battleship-go/internal/model"
)

// KindName returns the display name of a ship kind, e.g. "Battleship"
func KindName(kind model.ShipKind) string {
	return cases.Title(language.English).String(string(kind))
}

// OpponentName returns how a combatant kind is offered at the opponent prompt
func OpponentName(kind model.CombatantKind) string {
	if kind == model.CombatantAI {
		return "computer"
	}
	return "human"
}
