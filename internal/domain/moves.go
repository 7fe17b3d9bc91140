package domain

import "sort"

// LegalMoves enumerates the combinations the hand can legally play against
// last. An Invalid last means the trick is open and any well-formed
// combination may lead; otherwise every returned move beats last.
func LegalMoves(hand []Rank, last Combination) [][]Rank {
	candidates := findSingles(hand)
	candidates = append(candidates, findPairs(hand)...)
	candidates = append(candidates, findBombs(hand)...)
	candidates = append(candidates, findRocket(hand)...)
	candidates = append(candidates, findStraights(hand)...)
	candidates = append(candidates, findConsecutivePairs(hand)...)

	if last.Type == Invalid {
		return candidates
	}

	var moves [][]Rank
	for _, c := range candidates {
		if CanBeat(last, Identify(c)) {
			moves = append(moves, c)
		}
	}
	return moves
}

// LegalMoves enumerates the seat's legal plays against the active trick.
func (g *Game) LegalMoves(seat Seat) [][]Rank {
	return LegalMoves(g.Hands[seat], g.LastPlayed)
}

// LegalCombinationsExist reports whether the seat has any legal play. Callers
// use it to decide whether a pass is even offerable.
func (g *Game) LegalCombinationsExist(seat Seat) bool {
	return len(g.LegalMoves(seat)) > 0
}

// rankCounts returns the hand's per-rank multiplicities alongside the
// distinct ranks in ascending ordinal order.
func rankCounts(hand []Rank) (map[Rank]int, []Rank) {
	counts := make(map[Rank]int, len(hand))
	var distinct []Rank
	for _, c := range hand {
		if counts[c] == 0 {
			distinct = append(distinct, c)
		}
		counts[c]++
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].Ordinal() < distinct[j].Ordinal()
	})
	return counts, distinct
}

func findSingles(hand []Rank) [][]Rank {
	_, distinct := rankCounts(hand)
	var moves [][]Rank
	for _, r := range distinct {
		moves = append(moves, []Rank{r})
	}
	return moves
}

func findPairs(hand []Rank) [][]Rank {
	counts, distinct := rankCounts(hand)
	var moves [][]Rank
	for _, r := range distinct {
		if counts[r] >= 2 {
			moves = append(moves, []Rank{r, r})
		}
	}
	return moves
}

func findBombs(hand []Rank) [][]Rank {
	counts, distinct := rankCounts(hand)
	var moves [][]Rank
	for _, r := range distinct {
		if counts[r] == 4 {
			moves = append(moves, []Rank{r, r, r, r})
		}
	}
	return moves
}

func findRocket(hand []Rank) [][]Rank {
	counts, _ := rankCounts(hand)
	if counts[RankSmallJoker] > 0 && counts[RankBigJoker] > 0 {
		return [][]Rank{{RankSmallJoker, RankBigJoker}}
	}
	return nil
}

// findStraights emits every contiguous-ordinal window of length >= 5 below
// the straight cap.
func findStraights(hand []Rank) [][]Rank {
	_, distinct := rankCounts(hand)
	runs := consecutiveRuns(distinct, 1, nil)

	var moves [][]Rank
	for _, run := range runs {
		for length := 5; length <= len(run); length++ {
			for start := 0; start+length <= len(run); start++ {
				moves = append(moves, append([]Rank(nil), run[start:start+length]...))
			}
		}
	}
	return moves
}

// findConsecutivePairs emits every window of >= 2 adjacent pairs below the
// straight cap.
func findConsecutivePairs(hand []Rank) [][]Rank {
	counts, distinct := rankCounts(hand)
	runs := consecutiveRuns(distinct, 2, counts)

	var moves [][]Rank
	for _, run := range runs {
		for length := 2; length <= len(run); length++ {
			for start := 0; start+length <= len(run); start++ {
				move := make([]Rank, 0, length*2)
				for _, r := range run[start : start+length] {
					move = append(move, r, r)
				}
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// consecutiveRuns splits the distinct ranks below the straight cap into
// maximal runs of contiguous ordinals, keeping only ranks with at least
// minCount copies (counts may be nil when minCount is 1).
func consecutiveRuns(distinct []Rank, minCount int, counts map[Rank]int) [][]Rank {
	var eligible []Rank
	for _, r := range distinct {
		if r.Ordinal() >= straightCap {
			break
		}
		if minCount > 1 && counts[r] < minCount {
			continue
		}
		eligible = append(eligible, r)
	}

	var runs [][]Rank
	var run []Rank
	for i, r := range eligible {
		if i > 0 && r.Ordinal() != eligible[i-1].Ordinal()+1 {
			runs = append(runs, run)
			run = nil
		}
		run = append(run, r)
	}
	if len(run) > 0 {
		runs = append(runs, run)
	}
	return runs
}
