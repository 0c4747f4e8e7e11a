package render

// Debug overlay layout: one text row across the top of the screen.
const (
	debugY  = 2
	fpsX    = 6
	globalX = 46
	levelX  = 86
	frameX  = 126
)

// DebugInfo is the per-frame data shown by the overlay.
type DebugInfo struct {
	FrameMicros uint32
	GlobalUsed  uint32
	LevelUsed   uint32
	FrameUsed   uint32
}

// DrawDebugOverlay renders frame time and per-arena usage counters into the
// framebuffer, on top of whatever the frame already drew.
func (fb *FrameBuffer) DrawDebugOverlay(info DebugInfo) {
	var fps uint32
	if info.FrameMicros > 0 {
		fps = 1_000_000 / info.FrameMicros
	}

	fb.DrawText(fpsX, debugY, "FPS", 3)
	fb.DrawText(globalX, debugY, "G", 3)
	fb.DrawText(levelX, debugY, "L", 3)
	fb.DrawText(frameX, debugY, "F", 3)

	fb.DrawUint(fpsX+12, debugY, fps, 3, 3)
	fb.DrawUint(globalX+4, debugY, info.GlobalUsed, 3, 3)
	fb.DrawUint(levelX+4, debugY, info.LevelUsed, 3, 3)
	fb.DrawUint(frameX+4, debugY, info.FrameUsed, 3, 3)
}
