package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameDouDizhu is the authoritative match handler name registered with Nakama.
	MatchNameDouDizhu = "doudizhu_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame         int64 = 1
	OpPlayCards         int64 = 2
	OpPassTurn          int64 = 3
	OpRequestSuggestion int64 = 4

	// Server -> Client events
	OpPlayerJoined int64 = 101
	OpPlayerLeft   int64 = 102
	OpGameStarted  int64 = 103
	OpHandDealt    int64 = 104 // sent privately
	OpCardPlayed   int64 = 105
	OpTurnPassed   int64 = 106
	OpGameEnded    int64 = 107
	OpSuggestion   int64 = 108 // sent privately
	OpGameError    int64 = 109
)
