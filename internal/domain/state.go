package domain

// Phase represents the lifecycle stage of a game.
type Phase string

const (
	// PhasePlaying is the active state where cards are played.
	PhasePlaying Phase = "playing"
	// PhaseEnded is the state after a win has been detected.
	PhaseEnded Phase = "ended"
)

// NumSeats is the number of physical seats at the table.
const NumSeats = 3

// Seat is a physical seat index, 0..2. Rotation always proceeds in fixed
// seating order regardless of which seat holds the landlord.
type Seat int

// Next returns the seat that acts after s.
func (s Seat) Next() Seat {
	return (s + 1) % NumSeats
}

// Role is a seat's role relative to the landlord. Role names match the
// positions the suggestion models are trained on.
type Role string

const (
	RoleLandlord Role = "landlord"
	// RoleLandlordDown is the farmer seated after the landlord.
	RoleLandlordDown Role = "landlord_down"
	// RoleLandlordUp is the farmer seated before the landlord.
	RoleLandlordUp Role = "landlord_up"
)

// RoleOf maps a physical seat to its role given the landlord's seat.
func RoleOf(landlord, seat Seat) Role {
	switch seat {
	case landlord:
		return RoleLandlord
	case landlord.Next():
		return RoleLandlordDown
	default:
		return RoleLandlordUp
	}
}

// PlayRecord is one entry in the append-only play history. Empty Cards
// means the seat passed.
type PlayRecord struct {
	Index int
	Seat  Seat
	Cards []Rank
}

// Passed reports whether the record is a pass.
func (r PlayRecord) Passed() bool {
	return len(r.Cards) == 0
}

// Winner identifies the side that won a finished game.
type Winner string

const (
	WinnerLandlord Winner = "landlord"
	WinnerFarmers  Winner = "farmers"
)

// GameResult is the terminal outcome of a game.
type GameResult struct {
	Winner Winner
	// Seat is the seat whose exhausted hand (or threshold) ended the game.
	Seat Seat
}
