package terminal

import (
	"unicode/utf8"

	"atlas-engine/internal/commands"
	"atlas-engine/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible (avoids being cut off by taskbar/window bounds).
	WindowedBarOffset = 56
	prompt            = "T# > "
	fontSize          = 20
	padding           = 8
	// Number of console lines drawn above the input bar when the terminal is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame when drawing the terminal bar to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)

	levelColors = map[string]rl.Color{
		logger.LevelInfo:    rl.LightGray,
		logger.LevelWarning: rl.Orange,
		logger.LevelError:   rl.Red,
		logger.LevelSuccess: rl.Green,
		logger.LevelSay:     rl.White,
	}
)

// Terminal is the script console at the bottom of the screen, shown/hidden
// with ESC. When open, it captures typing; when closed the player can move.
// Lines starting with "cmd " are parsed as subcommand + flags and executed via
// the command registry. Every other line is a T# statement handed to OnScript.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	history  []string
	histPos  int
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font

	// OnScript runs a submitted non-cmd line through the interpreter.
	OnScript func(line string)
}

// New returns a Terminal that logs lines and runs "cmd ..." through reg. It starts closed (hidden); press ESC to open.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg, histPos: -1}
}

// IsOpen returns true when the terminal is visible and capturing input (player cannot move).
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the terminal bar. Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles ESC (toggle open/closed), and when open: typing, backspace,
// history recall with up/down, enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.open = !t.open
		if t.open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if rl.IsKeyPressed(rl.KeyUp) && len(t.history) > 0 {
		if t.histPos < 0 {
			t.histPos = len(t.history) - 1
		} else if t.histPos > 0 {
			t.histPos--
		}
		t.inputBuf = t.history[t.histPos]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.histPos >= 0 {
		t.histPos++
		if t.histPos >= len(t.history) {
			t.histPos = -1
			t.inputBuf = ""
		} else {
			t.inputBuf = t.history[t.histPos]
		}
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.log.Log(logger.LevelInfo, prompt+line)
		t.history = append(t.history, line)
		t.histPos = -1
		t.inputBuf = ""

		if args, isCmd := commands.Parse(line); isCmd {
			if err := t.reg.Execute(args); err != nil {
				t.log.Log(logger.LevelError, err.Error())
			}
		} else if t.OnScript != nil {
			t.OnScript(line)
		}
	}
}

// Draw draws the terminal bar at the bottom when open, and the recent console lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system (correct in fullscreen).
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	// Console history area above the bar: last maxLinesOnScreen lines
	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := chatY + (i-start)*lineHeight + padding
		text := lines[i].Text
		if len(text) > 200 {
			text = text[:197] + "..."
		}
		color, ok := levelColors[lines[i].Level]
		if !ok {
			color = rl.LightGray
		}
		if t.font.Texture.ID != 0 {
			rl.DrawTextEx(t.font, text, rl.NewVector2(float32(padding), float32(y)), float32(fontSize), 1, color)
		} else {
			rl.DrawText(text, int32(padding), int32(y), int32(fontSize), color)
		}
	}

	// Input bar
	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)

	text := prompt + t.inputBuf + "|"
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(padding), float32(barY+padding)), float32(fontSize), 1, rl.White)
	} else {
		rl.DrawText(text, int32(padding), int32(barY+padding), int32(fontSize), rl.White)
	}
}
