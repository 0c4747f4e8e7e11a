package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jackmiller2708/bit-bound/internal/game"
	"github.com/jackmiller2708/bit-bound/internal/memory"
	"github.com/jackmiller2708/bit-bound/internal/render"
)

const windowScale = 4

var errQuit = errors.New("quit requested")

// display adapts the game loop's frame snapshots to the ebiten front end.
type display struct {
	loop   *game.Loop
	frames game.FrameChan
	pixels []byte // preallocated RGBA buffer for WritePixels
}

func newDisplay(loop *game.Loop) *display {
	return &display{
		loop:   loop,
		frames: loop.Subscribe("desktop"),
		pixels: make([]byte, render.Width*render.Height*4),
	}
}

// Update forwards keyboard state as input events and drains the latest
// frame into the pixel buffer.
func (d *display) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return errQuit
	}

	keys := []struct {
		key    ebiten.Key
		action game.Action
	}{
		{ebiten.KeyW, game.ActionUp},
		{ebiten.KeyArrowUp, game.ActionUp},
		{ebiten.KeyS, game.ActionDown},
		{ebiten.KeyArrowDown, game.ActionDown},
	}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k.key) {
			select {
			case d.loop.InputChan() <- game.InputEvent{PlayerID: "desktop", Action: k.action}:
			default:
			}
		}
	}

	// Keep only the newest pending frame.
	for {
		select {
		case frame, ok := <-d.frames:
			if !ok {
				return errQuit
			}
			for i, argb := range frame {
				d.pixels[i*4] = byte(argb >> 16)
				d.pixels[i*4+1] = byte(argb >> 8)
				d.pixels[i*4+2] = byte(argb)
				d.pixels[i*4+3] = byte(argb >> 24)
			}
		default:
			return nil
		}
	}
}

// Draw blits the current pixel buffer to the screen.
func (d *display) Draw(screen *ebiten.Image) {
	screen.WritePixels(d.pixels)
}

// Layout reports the fixed logical resolution.
func (d *display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.Width, render.Height
}

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	debug := flag.Bool("debug", false, "draw the memory/FPS overlay")
	flag.Parse()

	mem := memory.NewRuntimeMemory()
	fb := render.NewFrameBuffer()
	state, err := game.NewGameState(mem, game.BuiltinShip(), game.BuiltinEnemy(), time.Now().UnixNano())
	if err != nil {
		log.Fatalf("Game state: %v", err)
	}
	loop := game.NewLoop(mem, fb, state, *debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	ebiten.SetWindowSize(render.Width*windowScale, render.Height*windowScale)
	ebiten.SetWindowTitle("BitBound")
	ebiten.SetTPS(game.TickRate)

	if err := ebiten.RunGame(newDisplay(loop)); err != nil && !errors.Is(err, errQuit) {
		log.Fatalf("Display error: %v", err)
	}
}
