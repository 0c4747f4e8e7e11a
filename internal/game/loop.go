package game

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/jackmiller2708/bit-bound/internal/memory"
	"github.com/jackmiller2708/bit-bound/internal/render"
)

// Frame is an immutable RGBA snapshot of one rendered frame,
// render.Width x render.Height in raster order.
type Frame []uint32

// FrameChan is a per-session channel receiving frame snapshots.
type FrameChan chan Frame

// Loop is the central tick loop. It exclusively owns the runtime memory,
// the framebuffer, and the game state; sessions interact only through the
// input channel and frame snapshots.
type Loop struct {
	mem   *memory.RuntimeMemory
	fb    *render.FrameBuffer
	state *GameState

	inputCh   chan InputEvent
	tickCount uint64

	mu         sync.RWMutex
	frameChans map[string]FrameChan

	debug           bool
	lastFrameMicros uint32
}

// NewLoop wires the loop around its singletons. When debug is set, the
// memory/FPS overlay is drawn on every frame.
func NewLoop(mem *memory.RuntimeMemory, fb *render.FrameBuffer, state *GameState, debug bool) *Loop {
	return &Loop{
		mem:        mem,
		fb:         fb,
		state:      state,
		inputCh:    make(chan InputEvent, InputChanSize),
		frameChans: make(map[string]FrameChan),
		debug:      debug,
	}
}

// InputChan returns the shared input channel for sessions to send events.
func (l *Loop) InputChan() chan<- InputEvent {
	return l.inputCh
}

// Subscribe registers a frame consumer under the given session id.
func (l *Loop) Subscribe(id string) FrameChan {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(FrameChan, 2)
	l.frameChans[id] = ch
	return ch
}

// Unsubscribe removes and closes a session's frame channel.
func (l *Loop) Unsubscribe(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if ch, ok := l.frameChans[id]; ok {
		close(ch)
		delete(l.frameChans, id)
	}
}

// Run drives the loop at TickRate until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(time.Second/TickRate), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		l.tick()
	}
}

// tick runs one update-render cycle. Ordering is load-bearing: the RGBA
// snapshot is taken before the frame arena reset, so frame-scope data is
// never read after invalidation.
func (l *Loop) tick() {
	frameStart := time.Now()

	for {
		select {
		case ev := <-l.inputCh:
			l.processInput(ev)
			continue
		default:
		}
		break
	}

	l.tickCount++

	Update(l.state, l.mem, l.tickCount)
	Render(l.state, l.fb)

	if l.debug {
		l.fb.DrawDebugOverlay(render.DebugInfo{
			FrameMicros: l.lastFrameMicros,
			GlobalUsed:  uint32(l.mem.Global.Used()),
			LevelUsed:   uint32(l.mem.Level.Used()),
			FrameUsed:   uint32(l.mem.Frame.Used()),
		})
	}

	snapshot := make(Frame, render.Width*render.Height)
	l.fb.ToRGBA(snapshot)

	l.mu.RLock()
	for _, ch := range l.frameChans {
		select {
		case ch <- snapshot:
		default:
			// Drop frame for slow consumer.
		}
	}
	l.mu.RUnlock()

	l.mem.EndFrame()

	l.lastFrameMicros = uint32(time.Since(frameStart).Microseconds())
}

func (l *Loop) processInput(ev InputEvent) {
	if ev.Action == ActionToggleDebug {
		l.debug = !l.debug
		return
	}
	l.state.Apply(ev.Action)
}
