package app

import "doudizhu/internal/domain"

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventGameStarted EventKind = "game_started"
	EventHandDealt   EventKind = "hand_dealt"
	EventCardPlayed  EventKind = "card_played"
	EventTurnPassed  EventKind = "turn_passed"
	EventGameEnded   EventKind = "game_ended"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast
}

type GameStartedPayload struct {
	Landlord  domain.Seat
	FirstTurn domain.Seat
}

type HandDealtPayload struct {
	Seat domain.Seat
	Hand []domain.Rank
}

type CardPlayedPayload struct {
	Seat        domain.Seat
	Cards       []domain.Rank
	Combination domain.CombinationType
	NextTurn    domain.Seat
	BombCount   int
}

type TurnPassedPayload struct {
	Seat     domain.Seat
	NextTurn domain.Seat
	Leader   domain.Seat
	// NewTrick is set when the pass closed the trick and the leader
	// must open fresh.
	NewTrick bool
}

type GameEndedPayload struct {
	Winner domain.Winner
	Seat   domain.Seat
}
