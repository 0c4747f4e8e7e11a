package memory

// Per-scope arena capacities.
const (
	GlobalArenaSize = 256 * 1024
	LevelArenaSize  = 512 * 1024
	FrameArenaSize  = 256 * 1024
)

// RuntimeMemory groups the three allocation scopes. Exactly one instance
// exists per process, owned by the game loop and passed explicitly.
//
// Scopes differ only in reset cadence: Global is never reset, Level is reset
// on level transitions, Frame is reset once per rendered frame. Callers pick
// the arena matching the data's lifetime; there is no cross-arena promotion.
type RuntimeMemory struct {
	Global *Arena
	Level  *Arena
	Frame  *Arena
}

// NewRuntimeMemory creates the three arenas at their fixed capacities.
func NewRuntimeMemory() *RuntimeMemory {
	return &RuntimeMemory{
		Global: NewArena(GlobalArenaSize),
		Level:  NewArena(LevelArenaSize),
		Frame:  NewArena(FrameArenaSize),
	}
}

// EndFrame reclaims all frame-scope allocations. Called exactly once per
// loop iteration, after the presentation layer has read the rendered frame.
func (m *RuntimeMemory) EndFrame() {
	m.Frame.Reset()
}

// ResetLevel reclaims all level-scope allocations on a level transition.
func (m *RuntimeMemory) ResetLevel() {
	m.Level.Reset()
}
