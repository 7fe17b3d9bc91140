package domain

import "sort"

// Rank identifies one of the fifteen card ranks. Its numeric value is the
// rank's strength, used when comparing combinations: 3 through A map to 3..14,
// 2 maps to 17 and the jokers to 20 and 30. The gaps above A keep 2 and the
// jokers out of straight adjacency, which is decided by ordinal position.
type Rank int32

const (
	Rank3 Rank = 3
	Rank4 Rank = 4
	Rank5 Rank = 5
	Rank6 Rank = 6
	Rank7 Rank = 7
	Rank8 Rank = 8
	Rank9 Rank = 9
	RankT Rank = 10
	RankJ Rank = 11
	RankQ Rank = 12
	RankK Rank = 13
	RankA Rank = 14
	Rank2 Rank = 17
	// RankSmallJoker is the black/small joker, written "X".
	RankSmallJoker Rank = 20
	// RankBigJoker is the red/big joker, written "D".
	RankBigJoker Rank = 30
)

// rankOrder is the fixed ascending rank list. Ordinal positions index into it;
// straights and consecutive pairs must stay strictly below the position of 2.
var rankOrder = []Rank{
	Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, RankT,
	RankJ, RankQ, RankK, RankA, Rank2, RankSmallJoker, RankBigJoker,
}

var rankNames = map[Rank]string{
	Rank3: "3", Rank4: "4", Rank5: "5", Rank6: "6", Rank7: "7",
	Rank8: "8", Rank9: "9", RankT: "T", RankJ: "J", RankQ: "Q",
	RankK: "K", RankA: "A", Rank2: "2", RankSmallJoker: "X", RankBigJoker: "D",
}

var rankOrdinals = func() map[Rank]int {
	m := make(map[Rank]int, len(rankOrder))
	for i, r := range rankOrder {
		m[r] = i
	}
	return m
}()

// straightCap is the ordinal of Rank2. Straights and consecutive pairs may
// only use ordinals strictly below it.
var straightCap = rankOrdinals[Rank2]

// Strength returns the comparison value of the rank.
func (r Rank) Strength() int32 {
	if _, ok := rankNames[r]; !ok {
		panic("unknown rank")
	}
	return int32(r)
}

// Ordinal returns the rank's position in the fixed ascending rank list.
func (r Rank) Ordinal() int {
	ord, ok := rankOrdinals[r]
	if !ok {
		panic("unknown rank")
	}
	return ord
}

// String returns the single-character display form of the rank.
func (r Rank) String() string {
	name, ok := rankNames[r]
	if !ok {
		panic("unknown rank")
	}
	return name
}

// ParseRank converts a display form back into a Rank. Unlike the Rank
// methods it reports bad input as an error, since it guards wire payloads.
func ParseRank(s string) (Rank, error) {
	for r, name := range rankNames {
		if name == s {
			return r, nil
		}
	}
	return 0, ErrUnknownRank
}

// DeckQuantity returns how many copies of the rank the 54-card deck holds.
func DeckQuantity(r Rank) int {
	if r == RankSmallJoker || r == RankBigJoker {
		return 1
	}
	if _, ok := rankNames[r]; !ok {
		panic("unknown rank")
	}
	return 4
}

// NewDeck returns the ordered 54-card deck.
func NewDeck() []Rank {
	deck := make([]Rank, 0, 54)
	for _, r := range rankOrder {
		for i := 0; i < DeckQuantity(r); i++ {
			deck = append(deck, r)
		}
	}
	return deck
}

// SortCards orders cards ascending by ordinal position, in place.
func SortCards(cards []Rank) {
	sort.Slice(cards, func(i, j int) bool {
		return cards[i].Ordinal() < cards[j].Ordinal()
	})
}
