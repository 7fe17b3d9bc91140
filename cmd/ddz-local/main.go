package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"doudizhu/internal/advisor"
	"doudizhu/internal/app"
	"doudizhu/internal/config"
	"doudizhu/internal/domain"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
)

// ddz-local plays full games between advisors, one per seat, exercising the
// engine end to end without a Nakama server.
func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load environment")
	}

	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seed := env.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	adv, err := advisor.New(advisor.Level(env.AdvisorLevel))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create advisor")
	}

	service := app.NewService(rng)

	landlordWins := 0
	for i := 0; i < env.Games; i++ {
		winner, err := runGame(service, adv, rng)
		if err != nil {
			log.Fatal().Err(err).Int("game", i+1).Msg("game aborted")
		}
		if winner == domain.WinnerLandlord {
			landlordWins++
		}
	}

	log.Info().
		Int("games", env.Games).
		Int("landlord_wins", landlordWins).
		Int("farmer_wins", env.Games-landlordWins).
		Int64("seed", seed).
		Msg("finished")
}

func runGame(service *app.Service, adv advisor.Advisor, rng *rand.Rand) (domain.Winner, error) {
	gameID := uuid.NewV4().String()
	landlord := domain.Seat(rng.Intn(domain.NumSeats))

	hands, bonus := service.Deal()
	game, _, err := service.StartGame(hands, bonus, landlord, domain.Params{})
	if err != nil {
		return "", err
	}

	log.Debug().Str("game_id", gameID).Int("landlord", int(landlord)).Msg("game started")

	ctx := context.Background()
	for game.Result == nil {
		seat := game.CurrentTurn
		move, err := chooseMove(ctx, game, seat, adv)
		if err != nil {
			return "", err
		}

		if move == nil {
			if _, err := service.PassTurn(game, seat); err != nil {
				return "", err
			}
			log.Debug().Int("seat", int(seat)).Msg("pass")
			continue
		}

		if _, err := service.PlayCards(game, seat, move); err != nil {
			return "", err
		}
		log.Debug().Int("seat", int(seat)).Strs("cards", cardStrings(move)).Msg("play")
	}

	log.Info().
		Str("game_id", gameID).
		Str("winner", string(game.Result.Winner)).
		Int("plays", len(game.History)).
		Int("bombs", game.BombCount).
		Msg("game over")
	return game.Result.Winner, nil
}

// chooseMove asks the advisor for a suggestion and falls back to the first
// legal move when a pass is not allowed. A nil result means pass.
func chooseMove(ctx context.Context, game *domain.Game, seat domain.Seat, adv advisor.Advisor) ([]domain.Rank, error) {
	info := advisor.BuildInfoSet(game, seat)

	mustOpen := game.MustPlay || game.LastPlayed.Type == domain.Invalid

	suggestion, err := adv.Suggest(ctx, info)
	if err != nil {
		// Advisory only: a failing advisor never blocks the game.
		log.Warn().Err(err).Int("seat", int(seat)).Msg("advisor failed, playing first legal move")
		suggestion = advisor.Suggestion{}
	}

	if suggestion.Pass() {
		if !mustOpen {
			return nil, nil
		}
		if len(info.LegalActions) == 0 {
			// Cannot happen with legal deals: an opener always holds cards.
			return nil, domain.ErrIllegalCombination
		}
		return info.LegalActions[0], nil
	}
	return suggestion.Cards, nil
}

func cardStrings(cards []domain.Rank) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
