package script

func init() {
	register(cmdSwitchGraphics, "switchgraphics")
	register(cmdSwitchText, "switchtext")
	register(cmdSprite, "sprite")
	register(cmdMoveSprite, "movesprite")
	register(cmdColorSprite, "colorsprite")
	register(cmdHideSprite, "hidesprite")
	register(cmdShowSprite, "showsprite")
	register(cmdDeleteSprite, "deletesprite")
	register(cmdFillScreen, "fillscreen")
	register(cmdDrawLine, "drawline")
	register(cmdDrawRect, "drawrect")
	register(cmdDrawCircle, "drawcircle")
	register(cmdDrawText, "drawtext")
	register(cmdTriangle, "triangle")
	register(cmdParticle, "particle")
}

// coords evaluates a comma-separated coordinate pair or triple.
func (i *Interpreter) coords(s string, n int) ([]float64, bool) {
	parts := commaParts(s)
	if len(parts) < n {
		return nil, false
	}
	out := make([]float64, n)
	for idx := 0; idx < n; idx++ {
		v, ok := asNumber(i.Eval(parts[idx]))
		if !ok {
			return nil, false
		}
		out[idx] = v
	}
	return out, true
}

// colorArg pulls an optional trailing `color "..."` argument, returning the
// remaining text and the color (or the fallback).
func colorArg(s, fallback string) (remaining, color string) {
	before, after, ok := cutWord(" "+s, "color")
	if !ok {
		return s, fallback
	}
	if c, _, qok := quoted(after); qok {
		return before, c
	}
	return before, fallback
}

func cmdSwitchGraphics(i *Interpreter, stmt string) {
	if i.Surface != nil {
		i.Surface.SetMode(true)
	}
}

func cmdSwitchText(i *Interpreter, stmt string) {
	if i.Surface != nil {
		i.Surface.SetMode(false)
	}
}

// cmdSprite creates a named sprite: sprite name at x, y size w, h color "c".
func cmdSprite(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	name, spec, ok := cutWord(" "+rest(stmt), "at")
	if !ok {
		return
	}
	pos, sizeSpec, ok := cutWord(" "+spec, "size")
	if !ok {
		return
	}
	sizeSpec, color := colorArg(sizeSpec, "#00ff00")
	xy, pok := i.coords(pos, 2)
	wh, sok := i.coords(sizeSpec, 2)
	if !pok || !sok {
		return
	}
	i.Surface.CreateSprite(name, xy[0], xy[1], wh[0], wh[1], color)
	i.logf("info", "🎨 Created sprite '%s'", name)
}

func cmdMoveSprite(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	name, pos, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if xy, pok := i.coords(pos, 2); pok {
		i.Surface.MoveSprite(name, xy[0], xy[1])
	}
}

func cmdColorSprite(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	name, cs, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if color, _, qok := quoted(cs); qok {
		i.Surface.ColorSprite(name, color)
	}
}

func cmdHideSprite(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok && i.Surface != nil {
		i.Surface.HideSprite(name)
	}
}

func cmdShowSprite(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok && i.Surface != nil {
		i.Surface.ShowSprite(name)
	}
}

func cmdDeleteSprite(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok && i.Surface != nil {
		i.Surface.DeleteSprite(name)
		i.logf("info", "🗑️ Deleted sprite '%s'", name)
	}
}

func cmdFillScreen(i *Interpreter, stmt string) {
	if color, _, ok := quoted(stmt); ok && i.Surface != nil {
		i.Surface.FillScreen(color)
	}
}

func cmdDrawLine(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	from, to, ok := cutWord(" "+dropWord(rest(stmt), "from"), "to")
	if !ok {
		return
	}
	to, color := colorArg(to, "#ffffff")
	p1, aok := i.coords(from, 2)
	p2, bok := i.coords(to, 2)
	if aok && bok {
		i.Surface.Line(p1[0], p1[1], p2[0], p2[1], color, 1)
	}
}

func cmdDrawRect(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	pos, sizeSpec, ok := cutWord(" "+dropWord(rest(stmt), "at"), "size")
	if !ok {
		return
	}
	sizeSpec, color := colorArg(sizeSpec, "#ffffff")
	xy, pok := i.coords(pos, 2)
	wh, sok := i.coords(sizeSpec, 2)
	if pok && sok {
		i.Surface.Rect(xy[0], xy[1], wh[0], wh[1], color)
	}
}

func cmdDrawCircle(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	pos, radiusSpec, ok := cutWord(" "+dropWord(rest(stmt), "at"), "radius")
	if !ok {
		return
	}
	radiusSpec, color := colorArg(radiusSpec, "#ffffff")
	xy, pok := i.coords(pos, 2)
	r, rok := asNumber(i.Eval(radiusSpec))
	if pok && rok {
		i.Surface.Circle(xy[0], xy[1], r, color, false)
	}
}

func cmdDrawText(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	text, after, ok := quoted(rest(stmt))
	if !ok {
		return
	}
	pos, color := colorArg(dropWord(after, "at"), "#ffffff")
	if xy, pok := i.coords(pos, 2); pok {
		i.Surface.Text(xy[0], xy[1], text, color)
	}
}

func cmdTriangle(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	pts, ok := i.coords(dropWord(rest(stmt), "at"), 6)
	if !ok {
		return
	}
	i.Surface.Line(pts[0], pts[1], pts[2], pts[3], "#ffffff", 2)
	i.Surface.Line(pts[2], pts[3], pts[4], pts[5], "#ffffff", 2)
	i.Surface.Line(pts[4], pts[5], pts[0], pts[1], "#ffffff", 2)
}

// cmdParticle scatters filled dots around a point:
// particle at x, y color "c" amount n.
func cmdParticle(i *Interpreter, stmt string) {
	if i.Surface == nil {
		return
	}
	spec := dropWord(rest(stmt), "at")
	amount := 10.0
	if before, as, ok := cutWord(" "+spec, "amount"); ok {
		spec = before
		if n, nok := asNumber(i.Eval(as)); nok {
			amount = n
		}
	}
	spec, color := colorArg(spec, "#ffffff")
	xy, ok := i.coords(spec, 2)
	if !ok {
		return
	}
	for n := 0; n < int(amount); n++ {
		px := xy[0] + float64(i.randInt(-20, 20))
		py := xy[1] + float64(i.randInt(-20, 20))
		i.Surface.Circle(px, py, 2, color, true)
	}
}
