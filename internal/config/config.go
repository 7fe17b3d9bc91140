package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds engine tuning read from the data folder.
type GameConfig struct {
	TurnDurationSeconds int    `json:"turn_duration_seconds"`
	AdvisorLevel        string `json:"advisor_level"`
	// FarmerTeamThreshold enables the legacy team-sum farmer win rule when
	// positive. Zero keeps the standard per-seat rule.
	FarmerTeamThreshold int `json:"farmer_team_threshold"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the loaded configuration, or safe defaults when no
// config file was available.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return GameConfig{TurnDurationSeconds: 30, AdvisorLevel: "greedy"}
	}
	out := *cfg
	if out.TurnDurationSeconds == 0 {
		out.TurnDurationSeconds = 30
	}
	if out.AdvisorLevel == "" {
		out.AdvisorLevel = "greedy"
	}
	return out
}
