package advisor

import (
	"context"
	"math/rand"

	"doudizhu/internal/domain"
)

// RandomAdvisor picks a uniformly random legal move. Useful as a self-play
// opponent and as the weakest baseline.
type RandomAdvisor struct {
	rng *rand.Rand
}

// NewRandomAdvisor wraps the given rng; a nil rng falls back to the global
// source.
func NewRandomAdvisor(rng *rand.Rand) *RandomAdvisor {
	return &RandomAdvisor{rng: rng}
}

func (a *RandomAdvisor) Suggest(ctx context.Context, info InfoSet) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}
	if len(info.LegalActions) == 0 {
		return Suggestion{Confidence: 1}, nil
	}

	var idx int
	if a.rng != nil {
		idx = a.rng.Intn(len(info.LegalActions))
	} else {
		idx = rand.Intn(len(info.LegalActions))
	}
	move := info.LegalActions[idx]
	return Suggestion{
		Cards:      append([]domain.Rank(nil), move...),
		Confidence: 1 / float64(len(info.LegalActions)),
	}, nil
}
