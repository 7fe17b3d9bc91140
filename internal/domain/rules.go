package domain

// CombinationType represents the category of a card combination.
type CombinationType int

const (
	Invalid CombinationType = iota
	Single
	Pair
	Bomb    // four of a kind
	Rocket  // both jokers
	Straight
	ConsecutivePairs
)

func (t CombinationType) String() string {
	switch t {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Bomb:
		return "bomb"
	case Rocket:
		return "rocket"
	case Straight:
		return "straight"
	case ConsecutivePairs:
		return "consecutive_pairs"
	default:
		return "invalid"
	}
}

// Combination is a classified set of cards.
type Combination struct {
	Type  CombinationType
	Cards []Rank // sorted ascending by ordinal
	Value int32  // strength of the ranking card
	Count int
}

// Identify classifies an unordered multiset of cards. Categories are checked
// in precedence order; anything that matches none of them is Invalid. Note
// there are no trio categories in this rule set, and a joker pair is not a
// pair: the two jokers together form a Rocket and nothing else.
func Identify(cards []Rank) Combination {
	n := len(cards)
	if n == 0 {
		return Combination{Type: Invalid}
	}

	sorted := append([]Rank(nil), cards...)
	SortCards(sorted)
	top := sorted[n-1].Strength()

	if n == 2 && sorted[0] == RankSmallJoker && sorted[1] == RankBigJoker {
		return Combination{Type: Rocket, Cards: sorted, Value: top, Count: 2}
	}

	if n == 1 {
		return Combination{Type: Single, Cards: sorted, Value: top, Count: 1}
	}

	if allSameRank(sorted) {
		switch n {
		case 2:
			return Combination{Type: Pair, Cards: sorted, Value: top, Count: 2}
		case 4:
			return Combination{Type: Bomb, Cards: sorted, Value: top, Count: 4}
		}
		return Combination{Type: Invalid}
	}

	if isStraight(sorted) {
		return Combination{Type: Straight, Cards: sorted, Value: top, Count: n}
	}

	if isConsecutivePairs(sorted) {
		return Combination{Type: ConsecutivePairs, Cards: sorted, Value: top, Count: n}
	}

	return Combination{Type: Invalid}
}

// CanBeat reports whether next takes the trick from prev. Rockets beat
// everything, bombs beat any non-bomb; all other comparisons require the
// same category and size and compare the ranking card.
func CanBeat(prev, next Combination) bool {
	if prev.Type == Invalid || next.Type == Invalid {
		return false
	}
	if next.Type == Rocket {
		return true
	}
	if prev.Type == Rocket {
		return false
	}
	if next.Type == Bomb {
		if prev.Type != Bomb {
			return true
		}
		return next.Value > prev.Value
	}
	if prev.Type == Bomb {
		return false
	}
	if next.Type != prev.Type || next.Count != prev.Count {
		return false
	}
	return next.Value > prev.Value
}

func allSameRank(cards []Rank) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c != cards[0] {
			return false
		}
	}
	return true
}

// isStraight expects cards sorted by ordinal: length >= 5, all ranks
// distinct, ordinals contiguous and strictly below the position of 2.
func isStraight(cards []Rank) bool {
	if len(cards) < 5 {
		return false
	}
	if cards[len(cards)-1].Ordinal() >= straightCap {
		return false
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].Ordinal() != cards[i-1].Ordinal()+1 {
			return false
		}
	}
	return true
}

// isConsecutivePairs expects cards sorted by ordinal: even length >= 4,
// grouped into same-rank pairs whose ordinals are contiguous and strictly
// below the position of 2. Sorting first means callers need not pre-group.
func isConsecutivePairs(cards []Rank) bool {
	if len(cards) < 4 || len(cards)%2 != 0 {
		return false
	}
	if cards[len(cards)-1].Ordinal() >= straightCap {
		return false
	}
	for i := 0; i < len(cards); i += 2 {
		if cards[i] != cards[i+1] {
			return false
		}
		if i > 0 && cards[i].Ordinal() != cards[i-2].Ordinal()+1 {
			return false
		}
	}
	return true
}
