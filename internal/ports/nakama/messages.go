package nakama

import "doudizhu/internal/domain"

// Wire payloads are JSON. Cards travel as their single-character display
// forms ("3".."A", "2", "X", "D").

// labelPayload is the advertised match label.
type labelPayload struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

type startGameRequest struct {
	// LandlordSeat picks which seat receives the bonus cards and opens play.
	// Defaults to the owner's seat; there is no bidding.
	LandlordSeat *int `json:"landlord_seat"`
}

type playCardsRequest struct {
	Cards []string `json:"cards"`
}

type playerJoinedEvent struct {
	Seats     []string `json:"seats"`
	OwnerSeat int      `json:"owner_seat"`
}

type playerLeftEvent struct {
	UserID string `json:"user_id"`
	Seat   int    `json:"seat"`
}

type gameStartedEvent struct {
	Landlord  int `json:"landlord"`
	FirstTurn int `json:"first_turn"`
}

type handDealtEvent struct {
	Seat  int      `json:"seat"`
	Cards []string `json:"cards"`
}

type cardPlayedEvent struct {
	Seat        int      `json:"seat"`
	Cards       []string `json:"cards"`
	Combination string   `json:"combination"`
	NextTurn    int      `json:"next_turn"`
	BombCount   int      `json:"bomb_count"`
}

type turnPassedEvent struct {
	Seat     int  `json:"seat"`
	NextTurn int  `json:"next_turn"`
	Leader   int  `json:"leader"`
	NewTrick bool `json:"new_trick"`
}

type gameEndedEvent struct {
	Winner string `json:"winner"`
	Seat   int    `json:"seat"`
}

type suggestionEvent struct {
	Cards      []string `json:"cards"`
	Confidence float64  `json:"confidence"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toWireCards(cards []domain.Rank) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}

func fromWireCards(cards []string) ([]domain.Rank, error) {
	out := make([]domain.Rank, len(cards))
	for i, s := range cards {
		r, err := domain.ParseRank(s)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
