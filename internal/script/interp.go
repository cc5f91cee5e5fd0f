// Package script implements the T# scripting language: pattern-matched
// verbs over plain English statements, with variables, control flow,
// functions, imports, and the 3D world verbs that drive the viewport.
package script

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atlas-engine/internal/scene"
)

// handler executes one verb. The full statement is passed through so each
// handler parses its own argument shape.
type handler func(i *Interpreter, stmt string)

// verbs is the dispatch table. Registration happens in the cmd_*.go init
// functions; a later registration for the same verb replaces the earlier
// one, which is also how aliases that appear twice resolve.
var verbs = map[string]handler{}

func register(h handler, names ...string) {
	for _, name := range names {
		verbs[name] = h
	}
}

// Surface receives the 2D drawing and sprite verbs. The frontend provides
// one; a nil surface turns those verbs into no-ops.
type Surface interface {
	Clear()
	FillScreen(color string)
	Line(x1, y1, x2, y2 float64, color string, width float64)
	Rect(x, y, w, h float64, color string)
	Circle(x, y, r float64, color string, fill bool)
	Text(x, y float64, text, color string)
	CreateSprite(name string, x, y, w, h float64, color string)
	MoveSprite(name string, x, y float64)
	ColorSprite(name, color string)
	ShowSprite(name string)
	HideSprite(name string)
	DeleteSprite(name string)
	SetMode(graphics bool)
}

// View receives the viewport-facing 3D verbs (HUD toggles, sky color,
// on-screen messages). The frontend provides one; nil makes them no-ops.
type View interface {
	SetHUDVisible(on bool)
	SetCrosshairVisible(on bool)
	SetSkyColor(color string)
	ShowMessage(text string, seconds float64)
}

// PlayerControl exposes the first-person controller tunables to scripts.
type PlayerControl interface {
	SetSpeed(speed float64)
	SetJumpForce(force float64)
}

// Interpreter executes T# code against a scene. Say is the user-facing
// output channel; Log carries system and diagnostic messages. The two never
// mix: a script's say output is not log traffic.
type Interpreter struct {
	Variables map[string]Value
	Functions map[string]string

	Scene     *scene.Scene
	Surface   Surface
	ScriptDir string

	View   View
	Player PlayerControl

	Say   func(text string)
	Log   func(level, msg string)
	Input func(prompt string) (string, bool)

	// PendingWait accumulates wait/sleep requests. The main loop drains it
	// between frames; script execution itself never blocks.
	PendingWait time.Duration

	imported map[string]bool
	breaking bool
	skipping bool
	rng      *rand.Rand
}

// New returns an interpreter with the math constants preloaded.
func New(sc *scene.Scene) *Interpreter {
	i := &Interpreter{
		Variables: make(map[string]Value),
		Functions: make(map[string]string),
		Scene:     sc,
		imported:  make(map[string]bool),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	i.Variables["PI"] = math.Pi
	i.Variables["E"] = math.E
	i.Variables["TAU"] = 2 * math.Pi
	return i
}

// Run strips comments, splits the code into statements, and executes them.
func (i *Interpreter) Run(code string) {
	for _, stmt := range SplitStatements(StripComments(code)) {
		i.Exec(stmt)
	}
}

// Exec executes a single statement: verb dispatch first, then the
// assignment forms, then a bare function call.
func (i *Interpreter) Exec(stmt string) {
	stmt = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(stmt), ";"))
	if stmt == "" {
		return
	}

	if h, ok := verbs[firstWord(stmt)]; ok {
		h(i, stmt)
		return
	}

	if i.tryAssignment(stmt) {
		return
	}

	if i.tryInfix(stmt) {
		return
	}

	if i.tryCall(stmt) {
		return
	}

	// Verbs written call-style with no space, like callupon("file.tcc"),
	// have no whitespace-delimited first word; retry on the identifier
	// prefix.
	if name, after, ok := identifier(stmt); ok && strings.HasPrefix(after, "(") {
		if h, ok := verbs[strings.ToLower(name)]; ok {
			h(i, stmt)
			return
		}
	}

	i.logf("error", "Unknown statement: %s", stmt)
}

// tryAssignment handles "x = value", "x is value", and "x becomes value".
func (i *Interpreter) tryAssignment(stmt string) bool {
	name, after, ok := identifier(stmt)
	if !ok {
		return false
	}
	var expr string
	switch {
	case strings.HasPrefix(after, "="):
		expr = strings.TrimSpace(after[1:])
	case strings.HasPrefix(strings.ToLower(after), "is "):
		expr = strings.TrimSpace(after[3:])
	case strings.HasPrefix(strings.ToLower(after), "becomes "):
		expr = strings.TrimSpace(after[8:])
	default:
		return false
	}
	if expr == "" {
		return false
	}
	v := i.Eval(expr)
	i.Variables[name] = v
	i.logf("info", "%s = %s", name, Format(v))
	return true
}

// tryCall handles "name(args)" for user functions and the print builtin.
func (i *Interpreter) tryCall(stmt string) bool {
	name, after, ok := identifier(stmt)
	if !ok || !strings.HasPrefix(after, "(") || !strings.HasSuffix(after, ")") {
		return false
	}
	args := strings.TrimSpace(after[1 : len(after)-1])

	if body, ok := i.Functions[name]; ok {
		i.Run(body)
		return true
	}
	switch strings.ToLower(name) {
	case "print":
		for _, arg := range commaParts(args) {
			if arg != "" {
				i.say(Format(i.Eval(arg)))
			}
		}
		return true
	case "sqrt":
		if n, ok := asNumber(i.Eval(args)); ok {
			i.show(fmt.Sprintf("sqrt(%s) = %s", args, Format(math.Sqrt(n))))
		}
		return true
	}
	return false
}

// runBlock executes a brace block's statements, honoring break and
// continue signals raised inside it.
func (i *Interpreter) runBlock(body string) {
	for _, stmt := range SplitStatements(body) {
		if i.breaking || i.skipping {
			return
		}
		i.Exec(stmt)
	}
}

// Number implements the variable view the player and combat code reads:
// missing or non-numeric variables yield the fallback.
func (i *Interpreter) Number(name string, fallback float64) float64 {
	if v, ok := i.Variables[name]; ok {
		if n, ok := asNumber(v); ok {
			return n
		}
	}
	return fallback
}

// SetNumber stores a numeric variable.
func (i *Interpreter) SetNumber(name string, value float64) {
	i.Variables[name] = value
}

// RunFile loads and executes a script file relative to ScriptDir.
func (i *Interpreter) RunFile(name string) error {
	path := name
	if !filepath.IsAbs(path) && i.ScriptDir != "" {
		path = filepath.Join(i.ScriptDir, name)
	}
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script %s: %w", name, err)
	}
	i.Run(string(code))
	return nil
}

func (i *Interpreter) say(text string) {
	if i.Say != nil {
		i.Say(text)
	}
}

func (i *Interpreter) sayf(format string, args ...any) {
	i.say(fmt.Sprintf(format, args...))
}

// show routes informational verb output through the same user channel.
func (i *Interpreter) show(text string) {
	i.say(text)
}

func (i *Interpreter) logf(level, format string, args ...any) {
	if i.Log != nil {
		i.Log(level, fmt.Sprintf(format, args...))
	}
}

// setNum stores a number under name, creating it if missing.
func (i *Interpreter) setNum(name string, v float64) {
	i.Variables[name] = v
}

// addNum adds delta to a numeric variable, seeding it with base when the
// variable does not exist yet.
func (i *Interpreter) addNum(name string, delta, base float64) float64 {
	n := i.Number(name, base)
	n += delta
	i.Variables[name] = n
	return n
}

func (i *Interpreter) randInt(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + i.rng.Intn(hi-lo+1)
}
