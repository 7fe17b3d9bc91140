package config

import "github.com/joeshaw/envdecode"

// Env holds environment overrides for local tooling.
type Env struct {
	Games        int    `env:"DDZ_GAMES,default=1"`
	Seed         int64  `env:"DDZ_SEED,default=0"`
	AdvisorLevel string `env:"DDZ_ADVISOR_LEVEL,default=greedy"`
	LogLevel     string `env:"DDZ_LOG_LEVEL,default=info"`
}

// LoadEnv decodes the environment into an Env.
func LoadEnv() (Env, error) {
	var e Env
	if err := envdecode.Decode(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
