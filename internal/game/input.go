package game

// Action is a single player intent decoded from raw input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionToggleDebug
	ActionQuit
)

// InputEvent is one action attributed to a connected player.
type InputEvent struct {
	PlayerID string
	Action   Action
}
