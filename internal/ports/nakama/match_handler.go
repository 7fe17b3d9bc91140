package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"doudizhu/internal/advisor"
	"doudizhu/internal/app"
	"doudizhu/internal/config"
	"doudizhu/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for a table: three seats,
// the owner, connected presences and the active game (nil while in lobby).
type MatchState struct {
	Seats     [domain.NumSeats]string     `json:"seats"` // user IDs, "" = empty
	OwnerSeat int                         `json:"owner_seat"`
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"`
	Advisor   advisor.Advisor             `json:"-"`
}

// GetOpenSeatsCount returns the number of empty seats.
func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, id := range ms.Seats {
		if id == userID {
			return i
		}
	}
	return -1
}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	adv, err := advisor.New(advisor.Level(cfg.AdvisorLevel))
	if err != nil {
		logger.Warn("MatchInit: %v, using default advisor", err)
		adv = &advisor.GreedyAdvisor{}
	}

	state := &MatchState{
		Tick:      time.Now().Unix(),
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(nil),
		OwnerSeat: -1,
		Advisor:   adv,
	}

	label := labelPayload{Open: state.GetOpenSeatsCount(), Game: "doudizhu", Phase: "lobby"}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	if matchState.GetOpenSeatsCount() <= 0 {
		return state, false, "Match full"
	}
	if matchState.Game != nil {
		return state, false, "Game in progress"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				break
			}
		}
	}

	if matchState.OwnerSeat < 0 || matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = -1
		for i, seatUserID := range matchState.Seats {
			if seatUserID != "" {
				matchState.OwnerSeat = i
				break
			}
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSeats(matchState, dispatcher, logger)
	return matchState
}

// MatchLeave frees seats; a match with no occupants terminates. A leave
// during an active game abandons the game back to lobby.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := matchState.seatOf(p.GetUserId())
		if seat < 0 {
			continue
		}
		matchState.Seats[seat] = ""
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)

		if matchState.Game != nil {
			logger.Info("MatchLeave: Abandoning game, seat %d left mid-game.", seat)
			matchState.Game = nil
		}
		mh.broadcastJSON(dispatcher, logger, OpPlayerLeft, playerLeftEvent{UserID: p.GetUserId(), Seat: seat}, nil)
	}

	if matchState.OwnerSeat >= 0 && matchState.Seats[matchState.OwnerSeat] == "" {
		matchState.OwnerSeat = -1
		for i, seatUserID := range matchState.Seats {
			if seatUserID != "" {
				matchState.OwnerSeat = i
				break
			}
		}
	}

	if matchState.GetOpenSeatsCount() == domain.NumSeats {
		logger.Info("MatchLeave: Terminating empty match.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		case OpRequestSuggestion:
			mh.handleSuggestion(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	return matchState
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Game != nil {
		logger.Warn("StartGame: Game already in progress.")
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		logger.Warn("StartGame: Cannot start with open seats.")
		return
	}

	var request startGameRequest
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid request from %s: %v", senderID, err)
			return
		}
	}

	landlord := domain.Seat(senderSeat)
	if request.LandlordSeat != nil {
		landlord = domain.Seat(*request.LandlordSeat)
	}

	cfg := config.GetGameConfig()
	params := domain.Params{FarmerTeamThreshold: cfg.FarmerTeamThreshold}

	hands, bonus := state.App.Deal()
	game, events, err := state.App.StartGame(hands, bonus, landlord, params)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.Game = game
	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	logger.Info("StartGame: Game started, landlord seat %d.", landlord)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil || senderSeat < 0 {
		logger.Warn("handlePlayCards: No active game or unseated sender %s.", senderID)
		return
	}

	var request playCardsRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCards: Failed to unmarshal request: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	cards, err := fromWireCards(request.Cards)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	events, err := state.App.PlayCards(state.Game, domain.Seat(senderSeat), cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil || senderSeat < 0 {
		logger.Warn("handlePassTurn: No active game or unseated sender %s.", senderID)
		return
	}

	events, err := state.App.PassTurn(state.Game, domain.Seat(senderSeat))
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

// handleSuggestion serves an advisory move for the sender's seat. Failures
// are reported to the requester only and never touch game state; the
// returned cards still go through the normal play gate if the client
// submits them.
func (mh *matchHandler) handleSuggestion(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil || senderSeat < 0 {
		logger.Warn("handleSuggestion: No active game or unseated sender %s.", senderID)
		return
	}

	info := advisor.BuildInfoSet(state.Game, domain.Seat(senderSeat))
	suggestion, err := state.Advisor.Suggest(ctx, info)
	if err != nil {
		logger.Warn("handleSuggestion: advisor failed for %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 503, "suggestion unavailable")
		return
	}

	mh.sendJSON(state, dispatcher, logger, senderID, OpSuggestion, suggestionEvent{
		Cards:      toWireCards(suggestion.Cards),
		Confidence: suggestion.Confidence,
	})
}

// broadcastEvent converts an app event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var payload any

	switch ev.Kind {
	case app.EventGameStarted:
		p := ev.Payload.(app.GameStartedPayload)
		opCode = OpGameStarted
		payload = gameStartedEvent{Landlord: int(p.Landlord), FirstTurn: int(p.FirstTurn)}
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		payload = handDealtEvent{Seat: int(p.Seat), Cards: toWireCards(p.Hand)}
	case app.EventCardPlayed:
		p := ev.Payload.(app.CardPlayedPayload)
		opCode = OpCardPlayed
		payload = cardPlayedEvent{
			Seat:        int(p.Seat),
			Cards:       toWireCards(p.Cards),
			Combination: p.Combination.String(),
			NextTurn:    int(p.NextTurn),
			BombCount:   p.BombCount,
		}
	case app.EventTurnPassed:
		p := ev.Payload.(app.TurnPassedPayload)
		opCode = OpTurnPassed
		payload = turnPassedEvent{
			Seat:     int(p.Seat),
			NextTurn: int(p.NextTurn),
			Leader:   int(p.Leader),
			NewTrick: p.NewTrick,
		}
	case app.EventGameEnded:
		p := ev.Payload.(app.GameEndedPayload)
		opCode = OpGameEnded
		payload = gameEndedEvent{Winner: string(p.Winner), Seat: int(p.Seat)}

		// Back to lobby for the next game.
		state.Game = nil
		defer mh.updateLabel(state, dispatcher, logger)
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	var recipients []runtime.Presence
	for _, seat := range ev.Recipients {
		userID := state.Seats[seat]
		if p, ok := state.Presences[userID]; ok {
			recipients = append(recipients, p)
		}
	}
	if len(ev.Recipients) > 0 && len(recipients) == 0 {
		// Targeted event with no connected recipient: do not leak it.
		return
	}

	mh.broadcastJSON(dispatcher, logger, opCode, payload, recipients)
}

func (mh *matchHandler) broadcastJSON(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any, recipients []runtime.Presence) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal payload for opcode %d: %v", opCode, err)
		return
	}
	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

func (mh *matchHandler) sendJSON(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, opCode int64, payload any) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send opcode %d to %s: presence not found", opCode, userID)
		return
	}
	mh.broadcastJSON(dispatcher, logger, opCode, payload, []runtime.Presence{presence})
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	mh.sendJSON(state, dispatcher, logger, userID, OpGameError, gameErrorEvent{Code: code, Message: message})
}

func (mh *matchHandler) broadcastSeats(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	mh.broadcastJSON(dispatcher, logger, OpPlayerJoined, playerJoinedEvent{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
	}, nil)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}

	label := labelPayload{Open: state.GetOpenSeatsCount(), Game: "doudizhu", Phase: phase}
	labelBytes, err := json.Marshal(label)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
