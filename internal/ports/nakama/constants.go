package nakama

const (
	// RpcQuickPlay is the Nakama RPC id clients call to find or create a
	// lobby-capable match for a table tier.
	RpcQuickPlay = "quick_play"

	// MatchNamePisti is the authoritative match handler name registered
	// with Nakama.
	MatchNamePisti = "pisti_match"
)

// Match label keys used in MatchList queries.
const (
	MatchLabelKey_OpenSeats = "open"
	MatchLabelKey_Game      = "game"
	MatchLabelKey_State     = "state"
	MatchLabelKey_Tier      = "tier"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCard  int64 = 2

	// Server -> Client events
	OpMatchSnapshot int64 = 101
	OpGameStarted   int64 = 103
	OpHandDealt     int64 = 104 // sent privately
	OpCardPlayed    int64 = 105
	OpCardsCaptured int64 = 106
	OpTurnAdvanced  int64 = 107
	OpRoundRedealt  int64 = 108
	OpGameEnded     int64 = 109
	OpGameError     int64 = 110
)
