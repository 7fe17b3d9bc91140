package advisor

import "fmt"

// Level selects an advisor implementation.
type Level string

const (
	LevelRandom Level = "random"
	LevelGreedy Level = "greedy"
)

// New creates an advisor for the given level.
func New(level Level) (Advisor, error) {
	switch level {
	case LevelRandom:
		return NewRandomAdvisor(nil), nil
	case LevelGreedy, "":
		return &GreedyAdvisor{}, nil
	default:
		return nil, fmt.Errorf("unknown advisor level: %q", level)
	}
}
