package advisor

import (
	"context"
	"sort"

	"doudizhu/internal/domain"
)

// GreedyAdvisor is the baseline strategy: shed the cheapest legal move and
// hold bombs and the rocket for when nothing else beats the trick. It stands
// in for the pretrained inference backend behind the same interface.
type GreedyAdvisor struct{}

func (a *GreedyAdvisor) Suggest(ctx context.Context, info InfoSet) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}
	if len(info.LegalActions) == 0 {
		// Nothing playable; suggesting a pass carries full confidence.
		return Suggestion{Confidence: 1}, nil
	}

	moves := make([][]domain.Rank, len(info.LegalActions))
	copy(moves, info.LegalActions)
	sort.SliceStable(moves, func(i, j int) bool {
		ci, cj := domain.Identify(moves[i]), domain.Identify(moves[j])
		wi, wj := holdBack(ci.Type), holdBack(cj.Type)
		if wi != wj {
			return wi < wj
		}
		if ci.Value != cj.Value {
			return ci.Value < cj.Value
		}
		// Equal top rank: prefer shedding more cards.
		return ci.Count > cj.Count
	})

	return Suggestion{
		Cards:      append([]domain.Rank(nil), moves[0]...),
		Confidence: dominance(info),
	}, nil
}

// holdBack ranks how reluctantly a category should be spent.
func holdBack(t domain.CombinationType) int {
	switch t {
	case domain.Bomb:
		return 1
	case domain.Rocket:
		return 2
	default:
		return 0
	}
}

// dominance scores the hand's strength against all unseen cards, 0..1. Same
// spirit as comparing average hand power to average unknown power: cards not
// in our hand and not yet played are assumed to be with the opponents.
func dominance(info InfoSet) float64 {
	if len(info.Hand) == 0 {
		return 0
	}

	seen := make(map[domain.Rank]int, 15)
	handPower := 0.0
	for _, c := range info.Hand {
		seen[c]++
		handPower += float64(c.Strength())
	}
	for _, played := range info.PlayedCards {
		for _, c := range played {
			seen[c]++
		}
	}

	unseenPower, unseenCount := 0.0, 0
	for _, c := range domain.NewDeck() {
		if seen[c] > 0 {
			seen[c]--
			continue
		}
		unseenPower += float64(c.Strength())
		unseenCount++
	}
	if unseenCount == 0 {
		return 1
	}

	avgHand := handPower / float64(len(info.Hand))
	avgUnseen := unseenPower / float64(unseenCount)
	return avgHand / (avgHand + avgUnseen)
}
