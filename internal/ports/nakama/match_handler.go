package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"

	"pisti/internal/app"
	"pisti/internal/app/stats"
	"pisti/internal/bot"
	"pisti/internal/config"
	"pisti/internal/domain"
	"pisti/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Seat indexes into Seats line up with domain seat indexes once a
// game is running.
type MatchState struct {
	Tier           config.TableTier            `json:"tier"`
	Seats          []string                    `json:"seats"` // user IDs, empty string means open
	OwnerSeat      int                         `json:"owner_seat"`
	LastWinnerSeat int                         `json:"last_winner_seat"`
	Tick           int64                       `json:"tick"`
	Presences      map[string]runtime.Presence `json:"-"`
	App            *app.Service                `json:"-"`
	Game           *domain.Game                `json:"-"` // nil while in lobby
	PistiCounts    []int                       `json:"pisti_counts"` // per seat, reset per game

	TurnDuration int64 `json:"turn_duration"` // ticks a human may hold the turn
	TurnDeadline int64 `json:"turn_deadline"` // tick when the active turn is force-played

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"` // ticks before bots fill a solo lobby
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	Economy ports.EconomyPort `json:"-"`
	Stats   *stats.Service    `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or
// -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the
// match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created. The "tier" param picks
// the table; it defaults to the configured default tier.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	tierID := ""
	if v, ok := params["tier"].(string); ok {
		tierID = v
	}
	tier := config.GetTier(tierID)

	state := &MatchState{
		Tier:           tier,
		Seats:          make([]string, tier.SeatCount),
		OwnerSeat:      -1,
		LastWinnerSeat: -1,
		Presences:      make(map[string]runtime.Presence),
		App:            app.NewService(nil),
		Bots:           make(map[string]*bot.Agent),
		BotsEnabled:    true,
		Economy:        NewNakamaEconomyAdapter(nk),
		Stats:          stats.NewService(NewNakamaStatsAdapter(nk)),
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["pisti_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["pisti_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
		if cfg := config.GetGameConfig(); cfg != nil && cfg.BotAutoFillDelaySeconds > 0 {
			state.BotAutoFillDelay = cfg.BotAutoFillDelaySeconds
		}
	}
	state.TurnDuration = 15
	if cfg := config.GetGameConfig(); cfg != nil && cfg.TurnDurationSeconds > 0 {
		state.TurnDuration = int64(cfg.TurnDurationSeconds)
	}

	labelJSON, err := MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "pisti",
		State: "lobby",
		Tier:  tier.ID,
	}.Marshal()
	if err != nil {
		logger.Error("MatchInit: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, labelJSON
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace while still
	// in the lobby.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
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

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
	}

	// The owner seat always belongs to a human.
	if !isHumanSeat(matchState.Seats, matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats)
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(ctx, matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	ownerLeft := false
	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)

				if matchState.OwnerSeat == i {
					ownerLeft = true
				}
				break
			}
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats)
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		} else if ownerLeft {
			logger.Debug("MatchLeave: Owner left and no human owner is available.")
		}
	}

	if shouldTerminateNoHumans(matchState.Seats) {
		logger.Info("MatchLeave: Terminating match with no humans.")
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
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(ctx, matchState, dispatcher, logger)
	}

	mh.enforceTurnTimer(ctx, matchState, dispatcher, logger)

	return matchState
}

// resetTurnTimer arms the force-play deadline for the active seat.
func (mh *matchHandler) resetTurnTimer(state *MatchState) {
	state.TurnDeadline = state.Tick + state.TurnDuration
}

// enforceTurnTimer auto-plays the first hand card of a human who has held
// the turn past the deadline, so one stalled player cannot freeze the
// table.
func (mh *matchHandler) enforceTurnTimer(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil || state.Game.Phase != domain.PhasePlaying || state.TurnDeadline == 0 {
		return
	}
	seat := state.Game.ActiveSeat
	if isBotUserId(state.Seats[seat]) {
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}

	hand := state.Game.Seats[seat].Hand
	if len(hand) == 0 {
		return
	}
	logger.Info("enforceTurnTimer: Force-playing for seat %d after timeout.", seat)

	events, err := state.App.SubmitPlay(state.Game, seat, hand[0])
	if err != nil {
		logger.Error("enforceTurnTimer: Forced play rejected for seat %d: %v", seat, err)
		return
	}
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// spawnBot fills a seat with a bot identity and creates its agent.
func (mh *matchHandler) spawnBot(state *MatchState, seat int, logger runtime.Logger) {
	identity := bot.IdentityAt(seat)
	difficulty := state.Tier.BotDifficulty
	if identity.Difficulty != "" {
		difficulty = identity.Difficulty
	}
	profile := config.GetDifficulty(difficulty)
	capability := profile.MemoryCapability
	if identity.MemoryCapability > 0 {
		capability = identity.MemoryCapability
	}

	agent, err := bot.NewAgent(seat, bot.ParseLevel(difficulty), capability, nil)
	if err != nil {
		logger.Error("spawnBot: Failed to create agent for %s: %v", identity.UserID, err)
		return
	}

	state.Seats[seat] = identity.UserID
	state.Bots[identity.UserID] = agent
	logger.Info("spawnBot: Added bot %s (%s, %s) to seat %d", identity.Username, identity.UserID, difficulty, seat)
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a lone human has waited long
	// enough.
	if state.Game == nil {
		humanCount := state.GetHumanPlayerCount()
		if humanCount == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat == "" {
						mh.spawnBot(state, i, logger)
						added = true
					}
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastMatchState(ctx, state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
	}

	// Bot turns in-game, delayed a few ticks so plays read naturally.
	if state.Game != nil && state.Game.Phase == domain.PhasePlaying {
		currentSeat := state.Game.ActiveSeat
		currentUserID := state.Seats[currentSeat]

		if !isBotUserId(currentUserID) {
			state.BotWaitUntil = 0
			return
		}

		agent, exists := state.Bots[currentUserID]
		if !exists {
			logger.Error("processBots: No agent for bot %s in seat %d", currentUserID, currentSeat)
			return
		}

		if state.BotWaitUntil == 0 {
			profile := config.GetDifficulty(agent.Level.String())
			delay := profile.PlayDelayTicks
			if delay <= 0 {
				delay = 2
			}
			state.BotWaitUntil = state.Tick + delay
			logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", currentUserID, currentSeat, state.BotWaitUntil, state.Tick)
			return
		}

		if state.Tick < state.BotWaitUntil {
			return
		}
		state.BotWaitUntil = 0

		card, err := agent.Play(state.Game)
		if err != nil {
			logger.Error("processBots: Bot %s failed to pick a card: %v", currentUserID, err)
			return
		}

		events, err := state.App.SubmitPlay(state.Game, currentSeat, card)
		if err != nil {
			logger.Error("processBots: Bot %s play rejected: %v", currentUserID, err)
			return
		}
		mh.dispatchEvents(ctx, state, dispatcher, logger, events)
	}
}

func (mh *matchHandler) broadcastMatchState(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var players []PlayerSnapshot
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		avatarIndex := 0
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if identity, ok := bot.LookupIdentity(userId); ok {
			displayName = identity.DisplayName
			avatarIndex = identity.AvatarIndex
		}

		balance := int64(0)
		if state.Economy != nil {
			if b, err := state.Economy.GetBalance(ctx, userId); err == nil {
				balance = b
			} else {
				logger.Debug("broadcastMatchState: No balance for %s: %v", userId, err)
			}
		}

		handCount, collected := 0, 0
		if state.Game != nil {
			handCount = len(state.Game.Seats[i].Hand)
			collected = len(state.Game.Seats[i].Collected)
		}

		players = append(players, PlayerSnapshot{
			UserID:      userId,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       isBotUserId(userId),
			DisplayName: displayName,
			AvatarIndex: avatarIndex,
			Balance:     balance,
			HandCount:   handCount,
			Collected:   collected,
		})
	}

	snapshot := MatchSnapshot{
		Seats:     state.Seats,
		OwnerSeat: state.OwnerSeat,
		Tier:      state.Tier.ID,
		Tick:      state.Tick,
		Players:   players,
	}
	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastMatchState: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if len(msg.GetData()) > 0 {
		var request StartGameRequest
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid request from %s: %v", senderID, err)
			return
		}
	}

	if state.Game != nil {
		logger.Warn("StartGame: Game already running.")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.GetHumanPlayerCount() < app.MinPlayersToStartGame {
		logger.Warn("StartGame: Need at least %d human player.", app.MinPlayersToStartGame)
		return
	}

	// Bots take any seats still open.
	for i, seat := range state.Seats {
		if seat == "" {
			mh.spawnBot(state, i, logger)
		}
	}

	seats := make([]app.SeatSpec, len(state.Seats))
	for i, userID := range state.Seats {
		seats[i] = app.SeatSpec{UserID: userID, Bot: isBotUserId(userID)}
	}

	// Collect the stake from every human seat before dealing.
	if err := mh.collectStakes(ctx, state, logger); err != nil {
		logger.Error("StartGame: Failed to collect stakes: %v", err)
		return
	}

	game, events, err := state.App.StartGame(seats, state.Tier.BaseBet)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		return
	}

	state.Game = game
	state.PistiCounts = make([]int, len(state.Seats))
	for _, agent := range state.Bots {
		agent.Reset()
	}
	mh.resetTurnTimer(state)

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(ctx, state, dispatcher, logger, events)

	logger.Info("StartGame: Game %s started with %d seats at tier %s.", game.ID, len(seats), state.Tier.ID)
}

// collectStakes debits the table stake from every human seat. Bot wallets
// are not tracked.
func (mh *matchHandler) collectStakes(ctx context.Context, state *MatchState, logger runtime.Logger) error {
	if state.Economy == nil || state.Tier.BaseBet <= 0 {
		return nil
	}
	updates := make([]ports.WalletUpdate, 0, len(state.Seats))
	for _, userID := range state.Seats {
		if userID == "" || isBotUserId(userID) {
			continue
		}
		updates = append(updates, ports.WalletUpdate{
			UserID: userID,
			Amount: -state.Tier.BaseBet,
			Metadata: map[string]interface{}{
				"reason": "game_stake",
				"tier":   state.Tier.ID,
			},
		})
	}
	return state.Economy.UpdateBalances(ctx, updates)
}

func (mh *matchHandler) handlePlayCard(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		logger.Warn("handlePlayCard: Game not started.")
		return
	}

	var request PlayCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Error("handlePlayCard: Failed to unmarshal request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed play request")
		return
	}

	events, err := state.App.SubmitPlay(state.Game, senderSeat, request.CardID)
	if err != nil {
		logger.Warn("handlePlayCard: User %s (seat %d) play rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(ctx, state, dispatcher, logger, events)
}

// dispatchEvents broadcasts app events and applies their side effects:
// bot memory observations, pisti counting and end-of-game settlement.
func (mh *matchHandler) dispatchEvents(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.TurnAdvancedPayload:
			mh.resetTurnTimer(state)
		case app.CardPlayedPayload:
			for _, agent := range state.Bots {
				agent.Observe(p.Card)
			}
		case app.CardsCapturedPayload:
			if p.Pisti && state.PistiCounts != nil && p.Seat < len(state.PistiCounts) {
				state.PistiCounts[p.Seat]++
			}
		case app.GameEndedPayload:
			mh.settleGame(ctx, state, logger, p)
		}

		mh.broadcastEvent(state, dispatcher, logger, ev)

		if ev.Kind == app.EventGameEnded {
			state.Game = nil
			state.TurnDeadline = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}
}

// settleGame pays the pot to the winner and folds results into player
// stats. Bots play for free and keep no wallet or stats.
func (mh *matchHandler) settleGame(ctx context.Context, state *MatchState, logger runtime.Logger, p app.GameEndedPayload) {
	state.LastWinnerSeat = p.WinnerSeat

	pot := state.Tier.BaseBet * int64(len(state.Seats))
	if state.Economy != nil && pot > 0 && isHumanSeat(state.Seats, p.WinnerSeat) {
		update := ports.WalletUpdate{
			UserID: p.WinnerUserID,
			Amount: pot,
			Metadata: map[string]interface{}{
				"reason": "game_winnings",
				"tier":   state.Tier.ID,
			},
		}
		if err := state.Economy.UpdateBalances(ctx, []ports.WalletUpdate{update}); err != nil {
			logger.Error("settleGame: Failed to pay winner %s: %v", p.WinnerUserID, err)
		}
	}

	if state.Stats == nil {
		return
	}
	for _, report := range p.Scores {
		if !isHumanSeat(state.Seats, report.Seat) {
			continue
		}
		name := report.UserID
		if presence, ok := state.Presences[report.UserID]; ok {
			name = presence.GetUsername()
		}
		pistis := 0
		if state.PistiCounts != nil && report.Seat < len(state.PistiCounts) {
			pistis = state.PistiCounts[report.Seat]
		}
		result := stats.GameResult{
			Won:        report.Seat == p.WinnerSeat,
			Score:      report.Total,
			PistiCount: pistis,
		}
		if _, err := state.Stats.RecordResult(ctx, report.UserID, name, result); err != nil {
			logger.Error("settleGame: Failed to record stats for %s: %v", report.UserID, err)
		}
	}
}

// broadcastEvent marshals an app event and dispatches it to its
// recipients, defaulting to a broadcast.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := opCodeFor(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[uid]; ok {
				recipients = append(recipients, p)
			}
		}

		// Targeted events with no connected recipients (bot hands) must
		// not leak to everyone else.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// sendError sends a GameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(GameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal GameErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	matchPhase := "lobby"
	if state.Game != nil {
		matchPhase = "playing"
	}

	labelJSON, err := MatchLabel{
		Open:  state.GetOpenSeatsCount(),
		Game:  "pisti",
		State: matchPhase,
		Tier:  state.Tier.ID,
	}.Marshal()
	if err != nil {
		logger.Error("UpdateLabel: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(labelJSON); err != nil {
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
