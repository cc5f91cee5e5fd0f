package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays (FPS, heap, scene stats). All
// overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowScene    bool

	// Stats, when set, reports the scene shape count and mode for the
	// scene overlay line.
	Stats func() (shapes int, mode string)

	font          rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount    uint32
	lastFpsText   string
	lastMemText   string
	lastSceneText string
	lastMemStats  runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetFont sets the font used to draw the overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// Draw renders any enabled debug overlays. Call after the viewport and
// console in the draw loop. Text is only recomputed every updateInterval
// frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}
	if d.ShowScene && d.lastSceneText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawLine(d.lastFpsText, screenW, y)
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawLine(d.lastMemText, screenW, y)
		y += fpsLineHeight
	}

	if d.ShowScene && d.Stats != nil {
		if update {
			shapes, mode := d.Stats()
			d.lastSceneText = fmt.Sprintf("Shapes: %d  Mode: %s", shapes, mode)
		}
		d.drawLine(d.lastSceneText, screenW, y)
	}
}

// drawLine right-aligns one overlay line at the given y.
func (d *Debug) drawLine(text string, screenW, y int32) {
	if text == "" {
		return
	}
	if d.font.Texture.ID != 0 {
		sz := float32(fpsFontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(fpsPadding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
	} else {
		w := rl.MeasureText(text, fpsFontSize)
		rl.DrawText(text, screenW-w-fpsPadding, y, fpsFontSize, rl.Green)
	}
}
