package advisor

import (
	"context"

	"doudizhu/internal/domain"
)

// Suggestion is the advisory output of a move-suggestion service. Empty
// Cards means the suggestion is to pass. Confidence is in [0, 1].
type Suggestion struct {
	Cards      []domain.Rank
	Confidence float64
}

// Pass reports whether the suggestion is to pass.
func (s Suggestion) Pass() bool {
	return len(s.Cards) == 0
}

// Advisor is the capability interface to a move-suggestion service. The
// engine never invokes it on its own: hosts request suggestions, and the
// result goes back through the normal play legality gate like any other
// candidate move. A slow or failing advisor must never block play or pass.
type Advisor interface {
	Suggest(ctx context.Context, info InfoSet) (Suggestion, error)
}
