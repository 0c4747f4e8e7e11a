package game

// TickRate is the fixed update/render rate in ticks per second.
const TickRate = 60

// SecsToTicks converts a duration in seconds to game ticks.
func SecsToTicks(s float64) int {
	t := int(s * TickRate)
	if t < 1 {
		t = 1
	}
	return t
}

// Timing constants — expressed in seconds, converted to ticks at init.
var (
	EnemySpawnInterval = SecsToTicks(0.8) // ticks between enemy spawns
	ShipMoveStep       = 2                // pixels per tick while a key is held
)

// InputChanSize bounds the shared input queue; producers drop on overflow.
const InputChanSize = 256
