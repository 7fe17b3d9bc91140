package app

import (
	"math/rand"
	"time"

	"doudizhu/internal/domain"
)

// Service contains the game use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with the provided rng or a time-seeded
// default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// Deal shuffles the 54-card deck into three 17-card hands plus the 3 bonus
// cards for whichever seat is assigned landlord.
func (s *Service) Deal() (hands [domain.NumSeats][]domain.Rank, bonus []domain.Rank) {
	deck := domain.NewDeck()
	s.rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	for seat := 0; seat < domain.NumSeats; seat++ {
		hands[seat] = append([]domain.Rank(nil), deck[seat*17:(seat+1)*17]...)
	}
	bonus = append([]domain.Rank(nil), deck[51:]...)
	return hands, bonus
}

// StartGame validates the distribution, builds the game and emits the deal
// events. Hands are sent only to their own seats; the game-started event is
// broadcast. The landlord seat is assigned externally (no bidding here).
func (s *Service) StartGame(hands [domain.NumSeats][]domain.Rank, bonus []domain.Rank, landlord domain.Seat, params domain.Params) (*domain.Game, []Event, error) {
	game, err := domain.NewGame(hands, bonus, landlord, params)
	if err != nil {
		return nil, nil, err
	}

	events := make([]Event, 0, domain.NumSeats+1)
	for seat := domain.Seat(0); seat < domain.NumSeats; seat++ {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Hand: append([]domain.Rank(nil), game.Hands[seat]...),
			},
			Recipients: []domain.Seat{seat},
		})
	}
	events = append(events, Event{
		Kind:    EventGameStarted,
		Payload: GameStartedPayload{Landlord: landlord, FirstTurn: game.CurrentTurn},
	})
	return game, events, nil
}

// PlayCards processes a play transition and emits the resulting events.
func (s *Service) PlayCards(game *domain.Game, seat domain.Seat, cards []domain.Rank) ([]Event, error) {
	combo := domain.Identify(cards)
	if err := game.Play(seat, cards); err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:        seat,
			Cards:       combo.Cards,
			Combination: combo.Type,
			NextTurn:    game.CurrentTurn,
			BombCount:   game.BombCount,
		},
	}}

	if game.Result != nil {
		events = append(events, Event{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: game.Result.Winner, Seat: game.Result.Seat},
		})
	}
	return events, nil
}

// PassTurn processes a pass transition and emits the resulting event.
func (s *Service) PassTurn(game *domain.Game, seat domain.Seat) ([]Event, error) {
	if err := game.Pass(seat); err != nil {
		return nil, err
	}

	return []Event{{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			Seat:     seat,
			NextTurn: game.CurrentTurn,
			Leader:   game.Leader,
			NewTrick: game.LastPlayed.Type == domain.Invalid,
		},
	}}, nil
}
