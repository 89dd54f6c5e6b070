package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchStarted   EventType = "match_started"
	EventTurnStarted    EventType = "turn_started"
	EventStrikeResolved EventType = "strike_resolved"
	EventShipSunk       EventType = "ship_sunk"
	EventMatchComplete  EventType = "match_complete"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType
	Timestamp time.Time
	MatchID   MatchID
	Player    int // Seat that triggered the event, 0 for match-wide events
	Payload   any // Type-specific data
}

// MatchStartedPayload contains data for match started events
type MatchStartedPayload struct {
	Labels [2]string
	Kinds  [2]CombatantKind
}

// TurnStartedPayload contains data for turn started events
type TurnStartedPayload struct {
	HalfTurn int
	Label    string
	Kind     CombatantKind
	Board    *Board // Active combatant's board, for rendering only
}

// StrikeResolvedPayload contains data for strike resolved events
type StrikeResolvedPayload struct {
	Label  string
	Kind   CombatantKind
	Impact Impact
}

// ShipSunkPayload contains data for ship sunk events
type ShipSunkPayload struct {
	Label string // Attacker
	Kind  ShipKind
}

// MatchCompletePayload contains data for match complete events
type MatchCompletePayload struct {
	Summary MatchSummary
}
