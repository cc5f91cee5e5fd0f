package script

import (
	"math"
	"strconv"
	"strings"
)

// Eval evaluates a T# expression. Recognition order matters: quoted
// concatenation, string literal, list literal, bare number, variable,
// "first/last/count/length of" forms, then arithmetic. Anything that fails
// every stage comes back as literal text.
func (i *Interpreter) Eval(expr string) Value {
	expr = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(expr), ";"))
	if expr == "" {
		return ""
	}

	if strings.ContainsAny(expr, `"'`) && strings.Contains(expr, "+") {
		if parts, ok := splitConcat(expr); ok && len(parts) > 1 {
			var out strings.Builder
			for _, p := range parts {
				out.WriteString(Format(i.Eval(p)))
			}
			return out.String()
		}
	}

	if s, ok := stringLiteral(expr); ok {
		return s
	}

	if strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]") {
		var list []Value
		for _, item := range splitTop(expr[1:len(expr)-1], ',') {
			item = strings.TrimSpace(item)
			if item != "" {
				list = append(list, i.Eval(item))
			}
		}
		return list
	}

	if n, err := strconv.ParseFloat(expr, 64); err == nil {
		return n
	}

	if v, ok := i.Variables[expr]; ok {
		return v
	}

	if v, ok := i.evalOfForm(expr); ok {
		return v
	}

	if v, ok := i.evalArith(expr); ok {
		return v
	}

	return expr
}

// EvalCondition evaluates a condition, rewriting the natural-language
// comparators first. A condition that cannot be parsed is false.
func (i *Interpreter) EvalCondition(cond string) bool {
	cond = " " + strings.TrimSpace(cond) + " "
	cond = strings.ReplaceAll(cond, " is not ", " != ")
	cond = strings.ReplaceAll(cond, " is ", " == ")
	cond = strings.ReplaceAll(cond, " equals ", " == ")
	cond = strings.ReplaceAll(cond, " greater than ", " > ")
	cond = strings.ReplaceAll(cond, " less than ", " < ")
	cond = strings.TrimSpace(cond)

	p := &exprParser{src: cond, interp: i}
	v, err := p.parseOr()
	if err != nil || !p.atEnd() {
		return false
	}
	return truthy(v)
}

// evalOfForm handles "first of X", "last of X", "count of X", "length of X".
func (i *Interpreter) evalOfForm(expr string) (Value, bool) {
	fields := strings.Fields(expr)
	if len(fields) != 3 || !strings.EqualFold(fields[1], "of") {
		return nil, false
	}
	v, ok := i.Variables[fields[2]]
	if !ok {
		return nil, false
	}
	switch strings.ToLower(fields[0]) {
	case "first":
		if l, ok := asList(v); ok && len(l) > 0 {
			return l[0], true
		}
	case "last":
		if l, ok := asList(v); ok && len(l) > 0 {
			return l[len(l)-1], true
		}
	case "count", "length":
		if l, ok := asList(v); ok {
			return float64(len(l)), true
		}
		if s, ok := v.(string); ok {
			return float64(len(s)), true
		}
	}
	return nil, false
}

func (i *Interpreter) evalArith(expr string) (Value, bool) {
	p := &exprParser{src: expr, interp: i}
	v, err := p.parseOr()
	if err != nil || !p.atEnd() {
		return nil, false
	}
	return v, true
}

// stringLiteral matches a single quoted string with no trailing content.
func stringLiteral(expr string) (string, bool) {
	if len(expr) < 2 {
		return "", false
	}
	q := expr[0]
	if (q != '"' && q != '\'') || expr[len(expr)-1] != q {
		return "", false
	}
	inner := expr[1 : len(expr)-1]
	if strings.ContainsRune(inner, rune(q)) {
		return "", false
	}
	return inner, true
}

// splitConcat splits on + outside quotes. Reports false when any part looks
// purely numeric on both sides of every +, which keeps "1+2" arithmetic.
func splitConcat(expr string) ([]string, bool) {
	var parts []string
	current := ""
	inString := byte(0)
	for idx := 0; idx < len(expr); idx++ {
		c := expr[idx]
		switch {
		case inString != 0:
			current += string(c)
			if c == inString {
				inString = 0
			}
		case c == '"' || c == '\'':
			inString = c
			current += string(c)
		case c == '+':
			parts = append(parts, strings.TrimSpace(current))
			current = ""
		default:
			current += string(c)
		}
	}
	if strings.TrimSpace(current) != "" {
		parts = append(parts, strings.TrimSpace(current))
	}
	hasQuoted := false
	for _, p := range parts {
		if strings.ContainsAny(p, `"'`) {
			hasQuoted = true
		}
	}
	return parts, hasQuoted
}

// splitTop splits on sep at the top level, respecting quotes and brackets.
func splitTop(s string, sep byte) []string {
	var parts []string
	depth := 0
	inString := byte(0)
	current := ""
	for idx := 0; idx < len(s); idx++ {
		c := s[idx]
		switch {
		case inString != 0:
			current += string(c)
			if c == inString {
				inString = 0
			}
		case c == '"' || c == '\'':
			inString = c
			current += string(c)
		case c == '[' || c == '(':
			depth++
			current += string(c)
		case c == ']' || c == ')':
			depth--
			current += string(c)
		case c == sep && depth == 0:
			parts = append(parts, current)
			current = ""
		default:
			current += string(c)
		}
	}
	parts = append(parts, current)
	return parts
}

// exprParser is a small recursive-descent parser for the arithmetic and
// comparison subset: + - * / % ^, parentheses, the math builtins, pi and e,
// and variable references.
type exprParser struct {
	src    string
	pos    int
	interp *Interpreter
}

type parseError struct{ msg string }

func (e *parseError) Error() string { return e.msg }

func errAt(msg string) error { return &parseError{msg: msg} }

func (p *exprParser) atEnd() bool {
	p.skipSpace()
	return p.pos >= len(p.src)
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) accept(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *exprParser) acceptWord(word string) bool {
	p.skipSpace()
	rest := p.src[p.pos:]
	if !strings.HasPrefix(rest, word) {
		return false
	}
	if len(rest) > len(word) && isIdentChar(rest[len(word)]) {
		return false
	}
	p.pos += len(word)
	return true
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (p *exprParser) parseOr() (Value, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.acceptWord("or") {
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = truthy(left) || truthy(right)
	}
	return left, nil
}

func (p *exprParser) parseAnd() (Value, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.acceptWord("and") {
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = truthy(left) && truthy(right)
	}
	return left, nil
}

func (p *exprParser) parseComparison() (Value, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept("=="):
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = valueEqual(left, right)
		case p.accept("!="):
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = !valueEqual(left, right)
		case p.accept(">="):
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = !valueLess(left, right)
		case p.accept("<="):
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = valueLess(left, right) || valueEqual(left, right)
		case p.peek() == '>':
			p.pos++
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = valueLess(right, left)
		case p.peek() == '<':
			p.pos++
			right, err := p.parseSum()
			if err != nil {
				return nil, err
			}
			left = valueLess(left, right)
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseSum() (Value, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peek() == '+':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			ln, lok := asNumber(left)
			rn, rok := asNumber(right)
			if lok && rok {
				left = ln + rn
			} else {
				left = Format(left) + Format(right)
			}
		case p.peek() == '-':
			p.pos++
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			ln, lok := asNumber(left)
			rn, rok := asNumber(right)
			if !lok || !rok {
				return nil, errAt("non-numeric subtraction")
			}
			left = ln - rn
		default:
			return left, nil
		}
	}
}

func (p *exprParser) parseProduct() (Value, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' && op != '%' {
			return left, nil
		}
		p.pos++
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		ln, lok := asNumber(left)
		rn, rok := asNumber(right)
		if !lok || !rok {
			return nil, errAt("non-numeric operand")
		}
		switch op {
		case '*':
			left = ln * rn
		case '/':
			if rn == 0 {
				return nil, errAt("division by zero")
			}
			left = ln / rn
		case '%':
			if rn == 0 {
				return nil, errAt("modulo by zero")
			}
			left = math.Mod(ln, rn)
		}
	}
}

func (p *exprParser) parsePower() (Value, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.accept("**") || p.peek() == '^' {
		if p.peek() == '^' {
			p.pos++
		}
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		ln, lok := asNumber(left)
		rn, rok := asNumber(right)
		if !lok || !rok {
			return nil, errAt("non-numeric exponent")
		}
		return math.Pow(ln, rn), nil
	}
	return left, nil
}

func (p *exprParser) parseUnary() (Value, error) {
	if p.peek() == '-' {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		n, ok := asNumber(v)
		if !ok {
			return nil, errAt("cannot negate text")
		}
		return -n, nil
	}
	if p.acceptWord("not") {
		v, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return !truthy(v), nil
	}
	return p.parseAtom()
}

func (p *exprParser) parseAtom() (Value, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, errAt("unexpected end of expression")
	}
	c := p.src[p.pos]

	if c == '(' {
		p.pos++
		v, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, errAt("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}

	if c == '"' || c == '\'' {
		end := strings.IndexByte(p.src[p.pos+1:], c)
		if end < 0 {
			return nil, errAt("unterminated string")
		}
		s := p.src[p.pos+1 : p.pos+1+end]
		p.pos += end + 2
		return s, nil
	}

	if c >= '0' && c <= '9' || c == '.' {
		start := p.pos
		for p.pos < len(p.src) && (p.src[p.pos] >= '0' && p.src[p.pos] <= '9' || p.src[p.pos] == '.') {
			p.pos++
		}
		n, err := strconv.ParseFloat(p.src[start:p.pos], 64)
		if err != nil {
			return nil, errAt("bad number")
		}
		return n, nil
	}

	if isIdentChar(c) {
		start := p.pos
		for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
			p.pos++
		}
		name := p.src[start:p.pos]

		if p.peek() == '(' {
			return p.parseCall(name)
		}

		switch strings.ToLower(name) {
		case "pi":
			return math.Pi, nil
		case "e":
			return math.E, nil
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		if v, ok := p.interp.Variables[name]; ok {
			return v, nil
		}
		return nil, errAt("unknown name " + name)
	}

	return nil, errAt("unexpected character")
}

// parseCall evaluates the math builtins: abs, pow, round, min, max, sum,
// sin, cos, tan, sqrt.
func (p *exprParser) parseCall(name string) (Value, error) {
	p.pos++ // consume (
	var args []float64
	if p.peek() != ')' {
		for {
			v, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			n, ok := asNumber(v)
			if !ok {
				if l, isList := asList(v); isList {
					for _, item := range l {
						ln, lok := asNumber(item)
						if !lok {
							return nil, errAt("non-numeric list item")
						}
						args = append(args, ln)
					}
				} else {
					return nil, errAt("non-numeric argument")
				}
			} else {
				args = append(args, n)
			}
			if p.peek() != ',' {
				break
			}
			p.pos++
		}
	}
	if p.peek() != ')' {
		return nil, errAt("missing closing parenthesis")
	}
	p.pos++

	need := func(n int) error {
		if len(args) < n {
			return errAt(name + " needs more arguments")
		}
		return nil
	}

	switch strings.ToLower(name) {
	case "abs":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Abs(args[0]), nil
	case "pow":
		if err := need(2); err != nil {
			return nil, err
		}
		return math.Pow(args[0], args[1]), nil
	case "round":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Round(args[0]), nil
	case "sqrt":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Sqrt(args[0]), nil
	case "sin":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Sin(args[0]), nil
	case "cos":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Cos(args[0]), nil
	case "tan":
		if err := need(1); err != nil {
			return nil, err
		}
		return math.Tan(args[0]), nil
	case "min":
		if err := need(1); err != nil {
			return nil, err
		}
		out := args[0]
		for _, a := range args[1:] {
			out = math.Min(out, a)
		}
		return out, nil
	case "max":
		if err := need(1); err != nil {
			return nil, err
		}
		out := args[0]
		for _, a := range args[1:] {
			out = math.Max(out, a)
		}
		return out, nil
	case "sum":
		out := 0.0
		for _, a := range args {
			out += a
		}
		return out, nil
	}
	return nil, errAt("unknown function " + name)
}
