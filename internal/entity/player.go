package entity

// Kinds of player a game can be configured with.
const (
	PlayerKindRandom  = "random"
	PlayerKindHuman   = "human"
	PlayerKindMinimax = "minimax"
)

// IsPlayerKind - reports whether kind names a known player.
func IsPlayerKind(kind string) bool {
	switch kind {
	case PlayerKindRandom, PlayerKindHuman, PlayerKindMinimax:
		return true
	default:
		return false
	}
}
