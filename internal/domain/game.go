package domain

// Params tunes win thresholds. The zero value selects the standard rules.
type Params struct {
	// LandlordHandSize is the landlord's starting hand size after the bonus
	// merge. Defaults to 20.
	LandlordHandSize int
	// FarmerHandSize is each farmer's starting hand size. Defaults to 17.
	FarmerHandSize int
	// FarmerTeamThreshold, when positive, additionally awards the farmers a
	// win once their summed played counts reach it. This reproduces a legacy
	// behavior and is off by default; the canonical rule is per-seat hand
	// exhaustion.
	FarmerTeamThreshold int
}

func (p Params) withDefaults() Params {
	if p.LandlordHandSize == 0 {
		p.LandlordHandSize = 20
	}
	if p.FarmerHandSize == 0 {
		p.FarmerHandSize = 17
	}
	return p
}

// Game holds the authoritative state for one game: per-seat hands and played
// ledgers, the turn context and the play history. All mutation goes through
// Play and Pass; every transition validates in full before touching state.
type Game struct {
	Phase    Phase
	Landlord Seat
	Params   Params

	Hands       [NumSeats][]Rank
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

// NewGame validates the initial distribution and builds a game. Each seat
// receives its dealt 17 cards; the 3 bonus cards merge into the landlord's
// hand, bringing it to 20. The landlord opens the first trick.
func NewGame(hands [NumSeats][]Rank, bonus []Rank, landlord Seat, params Params) (*Game, error) {
	params = params.withDefaults()
	if landlord < 0 || landlord >= NumSeats {
		return nil, ErrInvalidSeat
	}

	if len(bonus) != params.LandlordHandSize-params.FarmerHandSize {
		return nil, ErrInvalidHandSize
	}
	for _, hand := range hands {
		if len(hand) != params.FarmerHandSize {
			return nil, ErrInvalidHandSize
		}
	}

	// Card conservation at deal time: no rank may exceed its deck quantity
	// across the three hands and the bonus pool.
	totals := make(map[Rank]int)
	for _, hand := range hands {
		for _, c := range hand {
			totals[c]++
		}
	}
	for _, c := range bonus {
		totals[c]++
	}
	for r, n := range totals {
		if _, ok := rankNames[r]; !ok {
			return nil, ErrUnknownRank
		}
		if n > DeckQuantity(r) {
			return nil, ErrCardOverflow
		}
	}

	g := &Game{
		Phase:       PhasePlaying,
		Landlord:    landlord,
		Params:      params,
		CurrentTurn: landlord,
		Leader:      landlord,
	}
	for s := Seat(0); s < NumSeats; s++ {
		g.Hands[s] = append([]Rank(nil), hands[s]...)
	}
	g.Hands[landlord] = append(g.Hands[landlord], bonus...)
	return g, nil
}

// Play submits a combination for the given seat. On success the cards move
// from the seat's hand to its played ledger, the seat takes the trick lead
// and the turn advances; a detected win ends the game instead.
func (g *Game) Play(seat Seat, cards []Rank) error {
	if g.Result != nil {
		return ErrGameOver
	}
	if seat != g.CurrentTurn {
		return ErrNotYourTurn
	}

	combo := Identify(cards)
	if combo.Type == Invalid {
		return ErrIllegalCombination
	}
	if g.LastPlayed.Type != Invalid && !CanBeat(g.LastPlayed, combo) {
		return ErrDoesNotBeatLastPlayed
	}
	if !handContains(g.Hands[seat], cards) {
		return ErrCardNotInHand
	}

	g.Hands[seat] = RemoveCards(g.Hands[seat], cards)
	g.Played[seat] += len(cards)
	g.PlayedCards[seat] = append(g.PlayedCards[seat], combo.Cards...)
	if combo.Type == Bomb || combo.Type == Rocket {
		g.BombCount++
	}

	g.ConsecutivePasses = 0
	g.MustPlay = false
	g.LastPlayed = combo
	g.Leader = seat
	g.appendHistory(seat, combo.Cards)

	if result, ok := g.detectWin(seat); ok {
		g.Result = &result
		g.Phase = PhaseEnded
		return nil
	}

	g.CurrentTurn = seat.Next()
	return nil
}

// Pass declines to beat the active combination. The trick's opening move can
// never be a pass, and neither can a forced play after winning the trick.
// The second consecutive pass hands the lead to the next seat.
func (g *Game) Pass(seat Seat) error {
	if g.Result != nil {
		return ErrGameOver
	}
	if seat != g.CurrentTurn {
		return ErrNotYourTurn
	}
	// MustPlay wins over the empty-trick check: after a double pass the new
	// leader faces both conditions and the forced-play rule is the one that
	// names the situation.
	if g.MustPlay {
		return ErrForcedPlay
	}
	if g.LastPlayed.Type == Invalid {
		return ErrMustPlayFirstMove
	}

	g.ConsecutivePasses++
	g.appendHistory(seat, nil)

	if g.ConsecutivePasses >= 2 {
		g.Leader = seat.Next()
		g.MustPlay = true
	}
	g.CurrentTurn = seat.Next()

	// Play returning to the leader closes the trick: the leader opens fresh.
	if g.CurrentTurn == g.Leader {
		g.LastPlayed = Combination{}
		g.ConsecutivePasses = 0
	}
	return nil
}

func (g *Game) appendHistory(seat Seat, cards []Rank) {
	g.History = append(g.History, PlayRecord{
		Index: len(g.History),
		Seat:  seat,
		Cards: append([]Rank(nil), cards...),
	})
}

func (g *Game) detectWin(seat Seat) (GameResult, bool) {
	if RoleOf(g.Landlord, seat) == RoleLandlord {
		if g.Played[seat] >= g.Params.LandlordHandSize {
			return GameResult{Winner: WinnerLandlord, Seat: seat}, true
		}
		return GameResult{}, false
	}

	if g.Played[seat] >= g.Params.FarmerHandSize {
		return GameResult{Winner: WinnerFarmers, Seat: seat}, true
	}
	if g.Params.FarmerTeamThreshold > 0 {
		team := 0
		for s := Seat(0); s < NumSeats; s++ {
			if RoleOf(g.Landlord, s) != RoleLandlord {
				team += g.Played[s]
			}
		}
		if team >= g.Params.FarmerTeamThreshold {
			return GameResult{Winner: WinnerFarmers, Seat: seat}, true
		}
	}
	return GameResult{}, false
}

// HandCount returns the number of cards the seat still holds.
func (g *Game) HandCount(seat Seat) int {
	return len(g.Hands[seat])
}

// handContains reports whether hand holds every card with sufficient
// multiplicity.
func handContains(hand []Rank, cards []Rank) bool {
	counts := make(map[Rank]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range cards {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}

// RemoveCards removes the given cards from a hand and returns the updated
// hand. Callers are expected to have checked membership first.
func RemoveCards(hand []Rank, toRemove []Rank) []Rank {
	removeCounts := make(map[Rank]int, len(toRemove))
	for _, c := range toRemove {
		removeCounts[c]++
	}

	updated := make([]Rank, 0, len(hand))
	for _, c := range hand {
		if n := removeCounts[c]; n > 0 {
			removeCounts[c] = n - 1
			continue
		}
		updated = append(updated, c)
	}
	return updated
}
