package domain

// StateView is a read-only projection of a game for presentation layers.
// Every slice is a copy; mutating a view never touches the game.
type StateView struct {
	Phase    Phase
	Landlord Seat

	Hands       [NumSeats][]Rank
	HandCounts  [NumSeats]int
	Played      [NumSeats]int
	PlayedCards [NumSeats][]Rank

	History           []PlayRecord
	CurrentTurn       Seat
	Leader            Seat
	LastPlayed        Combination
	ConsecutivePasses int
	MustPlay          bool
	BombCount         int

	Result *GameResult
}

// Snapshot returns a copy of the externally visible game state.
func (g *Game) Snapshot() StateView {
	view := StateView{
		Phase:             g.Phase,
		Landlord:          g.Landlord,
		Played:            g.Played,
		CurrentTurn:       g.CurrentTurn,
		Leader:            g.Leader,
		LastPlayed:        copyCombination(g.LastPlayed),
		ConsecutivePasses: g.ConsecutivePasses,
		MustPlay:          g.MustPlay,
		BombCount:         g.BombCount,
	}
	for s := Seat(0); s < NumSeats; s++ {
		view.Hands[s] = append([]Rank(nil), g.Hands[s]...)
		view.PlayedCards[s] = append([]Rank(nil), g.PlayedCards[s]...)
		view.HandCounts[s] = len(g.Hands[s])
	}
	view.History = make([]PlayRecord, len(g.History))
	for i, rec := range g.History {
		view.History[i] = PlayRecord{
			Index: rec.Index,
			Seat:  rec.Seat,
			Cards: append([]Rank(nil), rec.Cards...),
		}
	}
	if g.Result != nil {
		result := *g.Result
		view.Result = &result
	}
	return view
}

func copyCombination(c Combination) Combination {
	c.Cards = append([]Rank(nil), c.Cards...)
	return c
}
