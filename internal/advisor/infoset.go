package advisor

import "doudizhu/internal/domain"

// InfoSet bundles the information visible to the acting seat: its hand,
// everyone's remaining counts, the active combination, the currently legal
// moves, the running bomb count and the cards each role has shed. This is
// the projection handed to suggestion backends.
type InfoSet struct {
	Role           domain.Role
	Seat           domain.Seat
	Hand           []domain.Rank
	CardsRemaining map[domain.Role]int
	LastMove       []domain.Rank
	LegalActions   [][]domain.Rank
	BombCount      int
	PlayedCards    map[domain.Role][]domain.Rank
}

// BuildInfoSet projects the acting seat's information set out of the game.
// Only that seat's own hand is included; opponents appear as counts and
// played cards.
func BuildInfoSet(g *domain.Game, seat domain.Seat) InfoSet {
	info := InfoSet{
		Role:           domain.RoleOf(g.Landlord, seat),
		Seat:           seat,
		Hand:           append([]domain.Rank(nil), g.Hands[seat]...),
		CardsRemaining: make(map[domain.Role]int, domain.NumSeats),
		LastMove:       append([]domain.Rank(nil), g.LastPlayed.Cards...),
		LegalActions:   g.LegalMoves(seat),
		BombCount:      g.BombCount,
		PlayedCards:    make(map[domain.Role][]domain.Rank, domain.NumSeats),
	}
	for s := domain.Seat(0); s < domain.NumSeats; s++ {
		role := domain.RoleOf(g.Landlord, s)
		info.CardsRemaining[role] = g.HandCount(s)
		info.PlayedCards[role] = append([]domain.Rank(nil), g.PlayedCards[s]...)
	}
	return info
}
