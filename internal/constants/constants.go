package constants

// Centralized constants for env keys, routes and API error strings.
const (
	// Environment variable keys
	EnvConfigPath = "ECOWARS_CONFIG"
	EnvDBPath     = "ECOWARS_DB"
	EnvAddr       = "ECOWARS_ADDR"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix      = "/api"
	RouteMatches        = "/matches"
	RouteMatchesJoin    = "/matches/join"
	RouteMatchByCode    = "/matches/:code"
	RouteMatchAction    = "/matches/:code/action"
	RouteMatchSubscribe = "/matches/:code/subscribe"
	RouteOpenMatches    = "/open-matches"
	RouteLeaderboard    = "/leaderboard"
)

// Common JSON response keys
const (
	JSONKeyError    = "error"
	JSONKeyMessage  = "message"
	JSONKeyMatch    = "match"
	JSONKeyPlayerID = "player_id"
	JSONKeyJoinCode = "join_code"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest      = "Invalid request"
	ErrInvalidJoinCode     = "Invalid join code"
	ErrMatchNotFound       = "Match not found"
	ErrMatchFull           = "Match is already full"
	ErrNicknameRequired    = "Please pick a nickname"
	ErrFailedCreateMatch   = "Failed to create match"
	ErrFailedUpdateMatch   = "Failed to update match"
	ErrFailedFetchMatches  = "Failed to fetch matches"
	ErrFailedFetchRankings = "Failed to fetch rankings"
	ErrFailedSubscribe     = "Failed to open match subscription"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldPlayerID = "player_id"
	LogFieldJoinCode = "join_code"
	LogFieldAddr     = "addr"
	LogFieldAction   = "action"
)
