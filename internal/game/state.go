package game

import (
	"math/rand"

	"github.com/jackmiller2708/bit-bound/internal/memory"
	"github.com/jackmiller2708/bit-bound/internal/pool"
	"github.com/jackmiller2708/bit-bound/internal/render"
)

const starCount = 24

// Star is a background pixel, recomputed into frame-scope memory each tick.
type Star struct {
	X, Y  int32
	Color uint8
}

// GameState holds the demo game's mutable state. The ship sweeps
// horizontally and bounces off the screen edges; players steer it
// vertically while an enemy swarm drifts in from the right.
type GameState struct {
	ShipX, ShipY int
	Direction    int
	Score        uint32
	Enemies      *pool.FixedPool[Enemy]

	Ship  *render.Sprite
	Enemy *render.Sprite

	// stars is frame-arena scratch: valid from Update until the loop calls
	// RuntimeMemory.EndFrame, never retained across ticks.
	stars []Star

	rng *rand.Rand
}

// NewGameState allocates level-lifetime state. The enemy pool's storage
// comes from the level arena, so a level reset reclaims it wholesale.
func NewGameState(mem *memory.RuntimeMemory, ship, enemy *render.Sprite, seed int64) (*GameState, error) {
	enemies, err := pool.NewIn[Enemy](mem.Level, MaxEnemies)
	if err != nil {
		return nil, err
	}
	return &GameState{
		ShipX:     0,
		ShipY:     render.Height / 2,
		Direction: 1,
		Enemies:   enemies,
		Ship:      ship,
		Enemy:     enemy,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Apply mutates the state for one decoded player action.
func (s *GameState) Apply(action Action) {
	switch action {
	case ActionUp:
		s.ShipY -= ShipMoveStep
		if s.ShipY < 0 {
			s.ShipY = 0
		}
	case ActionDown:
		s.ShipY += ShipMoveStep
		if limit := render.Height - s.Ship.Height; s.ShipY > limit {
			s.ShipY = limit
		}
	}
}

// Update advances one tick: ship sweep, enemy spawn cadence, enemy motion
// and despawn, and the frame-scoped star field.
func Update(s *GameState, mem *memory.RuntimeMemory, tick uint64) {
	// Horizontal sweep with edge bounce.
	next := s.ShipX + s.Direction
	if next <= 0 {
		s.Direction = 1
	} else if next >= render.Width-s.Ship.Width {
		s.Direction = -1
	}
	s.ShipX += s.Direction

	// Spawn cadence. A full pool drops the spawn; no retry, no queue.
	if tick%uint64(EnemySpawnInterval) == 0 {
		e := Enemy{
			X:  render.Width,
			Y:  int32(s.rng.Intn(render.Height - s.Enemy.Height)),
			VX: -1 - int32(s.rng.Intn(2)),
		}
		_ = s.Enemies.Spawn(e)
	}

	// Move enemies; swap-remove despawn means the index is not advanced
	// after a removal, since the freed slot now holds the former last element.
	for i := 0; i < s.Enemies.Len(); {
		e := &s.Enemies.Items()[i]
		e.X += e.VX
		if e.X < int32(-s.Enemy.Width) {
			s.Enemies.Despawn(i)
			s.Score++
			continue
		}
		i++
	}

	// Star field scratch: best effort, skipped for the frame if the frame
	// arena happens to be exhausted.
	stars, err := memory.MakeSlice[Star](mem.Frame, starCount)
	if err != nil {
		s.stars = nil
		return
	}
	for i := range stars {
		speed := uint64(1 + i%3)
		stars[i] = Star{
			X:     int32(render.Width-1) - int32((tick*speed+uint64(i)*37)%render.Width),
			Y:     int32((i*53 + 7) % render.Height),
			Color: 1,
		}
	}
	s.stars = stars
}

// Render draws the frame: background, stars, sprites, score line.
func Render(s *GameState, fb *render.FrameBuffer) {
	fb.Clear(0)

	for _, st := range s.stars {
		fb.SetPixel(int(st.X), int(st.Y), st.Color)
	}

	for _, e := range s.Enemies.Items() {
		fb.DrawSprite(int(e.X), int(e.Y), s.Enemy)
	}
	fb.DrawSprite(s.ShipX, s.ShipY, s.Ship)

	scoreY := render.Height - render.LineHeight - 1
	fb.DrawText(2, scoreY, "SCORE", 3)
	fb.DrawUint(2+6*render.FontAdvance, scoreY, s.Score, 4, 3)
}
