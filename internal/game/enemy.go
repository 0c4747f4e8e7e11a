package game

// MaxEnemies is the fixed capacity of the enemy pool.
const MaxEnemies = 32

// Enemy is a live runtime entity. Kept pointer-free so the pool's storage
// can live inside an arena.
type Enemy struct {
	X, Y int32
	VX   int32
}
