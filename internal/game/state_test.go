package game

import (
	"testing"

	"github.com/jackmiller2708/bit-bound/internal/memory"
	"github.com/jackmiller2708/bit-bound/internal/render"
)

func newTestState(t *testing.T, mem *memory.RuntimeMemory) *GameState {
	t.Helper()
	s, err := NewGameState(mem, BuiltinShip(), BuiltinEnemy(), 1)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestShipBouncesAtEdges(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)

	limit := render.Width - s.Ship.Width
	for tick := uint64(1); tick <= uint64(limit)*3; tick++ {
		Update(s, mem, tick)
		mem.EndFrame()
		if s.ShipX < 0 || s.ShipX > limit {
			t.Fatalf("tick %d: ship at x=%d outside [0, %d]", tick, s.ShipX, limit)
		}
	}
}

func TestApplyClampsVerticalMovement(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)

	for i := 0; i < 1000; i++ {
		s.Apply(ActionUp)
	}
	if s.ShipY != 0 {
		t.Errorf("ShipY = %d after holding up, want 0", s.ShipY)
	}

	for i := 0; i < 1000; i++ {
		s.Apply(ActionDown)
	}
	if want := render.Height - s.Ship.Height; s.ShipY != want {
		t.Errorf("ShipY = %d after holding down, want %d", s.ShipY, want)
	}
}

func TestEnemiesSpawnAndDespawn(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)

	// First spawn lands on a spawn-cadence tick.
	Update(s, mem, uint64(EnemySpawnInterval))
	mem.EndFrame()
	if s.Enemies.Len() != 1 {
		t.Fatalf("Len() = %d after spawn tick, want 1", s.Enemies.Len())
	}

	e := s.Enemies.Items()[0]
	if e.X > render.Width || e.VX >= 0 {
		t.Fatalf("spawned enemy = %+v, want right edge moving left", e)
	}

	// Run long enough for every spawned enemy to cross and despawn, on
	// non-spawn ticks only.
	tick := uint64(EnemySpawnInterval)
	for i := 0; i < 2*render.Width; i++ {
		tick++
		if tick%uint64(EnemySpawnInterval) == 0 {
			tick++
		}
		Update(s, mem, tick)
		mem.EndFrame()
	}

	if s.Enemies.Len() != 0 {
		t.Errorf("Len() = %d after crossing, want 0", s.Enemies.Len())
	}
	if s.Score == 0 {
		t.Error("score did not increase for despawned enemies")
	}
}

func TestEnemyPoolNeverOverflows(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)

	// Freeze enemies in place so despawns never happen, then hammer spawn
	// ticks; the pool must cap at MaxEnemies with drops, not errors.
	for i := 0; i < MaxEnemies*4; i++ {
		Update(s, mem, uint64((i+1)*EnemySpawnInterval))
		for j := range s.Enemies.Items() {
			s.Enemies.Items()[j].VX = 0
			s.Enemies.Items()[j].X = 10
		}
		mem.EndFrame()
	}

	if got := s.Enemies.Len(); got != MaxEnemies {
		t.Errorf("Len() = %d, want %d", got, MaxEnemies)
	}
}

func TestUpdateUsesFrameArena(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)

	Update(s, mem, 1)
	if mem.Frame.Used() == 0 {
		t.Error("frame arena unused after Update")
	}
	if len(s.stars) != starCount {
		t.Errorf("stars = %d, want %d", len(s.stars), starCount)
	}

	mem.EndFrame()
	if mem.Frame.Used() != 0 {
		t.Error("EndFrame left frame allocations behind")
	}
}

func TestRenderDrawsShip(t *testing.T) {
	mem := memory.NewRuntimeMemory()
	s := newTestState(t, mem)
	s.ShipX = 40
	s.ShipY = 60

	fb := render.NewFrameBuffer()
	Render(s, fb)

	found := false
	for py := 0; py < s.Ship.Height && !found; py++ {
		for px := 0; px < s.Ship.Width; px++ {
			if s.Ship.PixelAt(px, py) != 0 && fb.PixelAt(40+px, 60+py) == s.Ship.PixelAt(px, py) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("ship sprite not visible in rendered frame")
	}
}

func TestBuiltinSprites(t *testing.T) {
	for name, s := range map[string]*render.Sprite{"ship": BuiltinShip(), "enemy": BuiltinEnemy()} {
		if s.Width != 8 || s.Height != 8 {
			t.Errorf("%s sprite is %dx%d, want 8x8", name, s.Width, s.Height)
		}
		opaque := 0
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				if s.PixelAt(x, y) != 0 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Errorf("%s sprite is fully transparent", name)
		}
	}
}
