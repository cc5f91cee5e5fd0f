package script

import (
	"math"
	"strings"
)

func init() {
	register(cmdRemember, "remember")
	register(cmdForget, "forget")
	register(cmdRecall, "recall")
	register(cmdMake, "make")
	register(cmdSet, "set")
	register(cmdCreate, "create")
	register(cmdChange, "change")
	register(cmdIncrease, "increase")
	register(cmdDecrease, "decrease")
	register(cmdCopyVar, "copy")
	register(cmdSwap, "swap")
	register(cmdIncrement, "increment")
	register(cmdDecrement, "decrement")
	register(cmdMultiply, "multiply")
	register(cmdDivide, "divide")
	register(cmdModulo, "modulo")
	register(cmdConvert, "convert")
	register(cmdExists, "exists")
	register(cmdTypeof, "typeof")
}

// assignTo parses "name <sep> value" where sep is one of the accepted
// separators, evaluates the value, and stores it.
func (i *Interpreter) assignTo(args string, seps ...string) (string, bool) {
	name, after, ok := identifier(args)
	if !ok {
		return "", false
	}
	lower := strings.ToLower(after)
	for _, sep := range seps {
		if sep == "=" || sep == ":" {
			if strings.HasPrefix(after, sep) {
				i.Variables[name] = i.Eval(strings.TrimSpace(after[len(sep):]))
				return name, true
			}
			continue
		}
		if strings.HasPrefix(lower, sep+" ") {
			i.Variables[name] = i.Eval(strings.TrimSpace(after[len(sep)+1:]))
			return name, true
		}
	}
	return "", false
}

func cmdRemember(i *Interpreter, stmt string) {
	if name, ok := i.assignTo(rest(stmt), "as", "is", "=", ":"); ok {
		i.logf("info", "🧠 %s = %s", name, Format(i.Variables[name]))
	}
}

func cmdForget(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		if _, exists := i.Variables[name]; exists {
			delete(i.Variables, name)
			i.logf("info", "💭 Forgot %s", name)
		}
	}
}

func cmdRecall(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		if v, exists := i.Variables[name]; exists {
			i.show(name + " = " + Format(v))
		}
	}
}

func cmdMake(i *Interpreter, stmt string) {
	args := rest(stmt)
	if name, after, ok := identifier(args); ok {
		lower := strings.ToLower(after)
		if strings.HasPrefix(lower, "equal to ") {
			i.Variables[name] = i.Eval(strings.TrimSpace(after[len("equal to "):]))
			i.logf("info", "✨ %s = %s", name, Format(i.Variables[name]))
			return
		}
	}
	if name, ok := i.assignTo(args, "="); ok {
		i.logf("info", "✨ %s = %s", name, Format(i.Variables[name]))
	}
}

func cmdSet(i *Interpreter, stmt string) {
	if name, ok := i.assignTo(rest(stmt), "to", "="); ok {
		i.logf("info", "⚙️ %s = %s", name, Format(i.Variables[name]))
	}
}

func cmdCreate(i *Interpreter, stmt string) {
	if name, ok := i.assignTo(rest(stmt), "as", "with"); ok {
		i.logf("info", "🆕 %s = %s", name, Format(i.Variables[name]))
	}
}

func cmdChange(i *Interpreter, stmt string) {
	if name, ok := i.assignTo(rest(stmt), "to"); ok {
		i.logf("info", "🔄 %s = %s", name, Format(i.Variables[name]))
	}
}

// adjustBy handles "increase/decrease name by amount". Only existing
// numeric variables change.
func (i *Interpreter) adjustBy(args string, sign float64, arrow string) {
	name, after, ok := cutWord(" "+args, "by")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if _, exists := i.Variables[name]; !exists {
		return
	}
	amount, ok := asNumber(i.Eval(after))
	if !ok {
		return
	}
	n := i.Number(name, 0)
	i.Variables[name] = n + sign*amount
	i.logf("info", "%s %s = %s", arrow, name, Format(i.Variables[name]))
}

func cmdIncrease(i *Interpreter, stmt string) {
	i.adjustBy(rest(stmt), 1, "⬆️")
}

func cmdDecrease(i *Interpreter, stmt string) {
	i.adjustBy(rest(stmt), -1, "⬇️")
}

func cmdCopyVar(i *Interpreter, stmt string) {
	from, to, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	from = strings.TrimSpace(from)
	if v, exists := i.Variables[from]; exists {
		i.Variables[to] = v
		i.logf("info", "📋 Copied %s to %s", from, to)
	}
}

func cmdSwap(i *Interpreter, stmt string) {
	a, b, ok := cutWord(" "+rest(stmt), "and")
	if !ok {
		return
	}
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	va, aok := i.Variables[a]
	vb, bok := i.Variables[b]
	if aok && bok {
		i.Variables[a], i.Variables[b] = vb, va
		i.logf("info", "🔄 Swapped %s and %s", a, b)
	}
}

func cmdIncrement(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		if _, exists := i.Variables[name]; exists {
			i.Variables[name] = i.Number(name, 0) + 1
			i.logf("info", "⬆️ %s = %s", name, Format(i.Variables[name]))
		}
	}
}

func cmdDecrement(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		if _, exists := i.Variables[name]; exists {
			i.Variables[name] = i.Number(name, 0) - 1
			i.logf("info", "⬇️ %s = %s", name, Format(i.Variables[name]))
		}
	}
}

func (i *Interpreter) scaleBy(args string, op byte) {
	name, after, ok := cutWord(" "+args, "by")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if _, exists := i.Variables[name]; !exists {
		return
	}
	amount, ok := asNumber(i.Eval(after))
	if !ok || ((op == '/' || op == '%') && amount == 0) {
		return
	}
	n := i.Number(name, 0)
	switch op {
	case '*':
		n *= amount
	case '/':
		n /= amount
	case '%':
		n = math.Mod(n, amount)
	}
	i.Variables[name] = n
	i.logf("info", "%s = %s", name, Format(n))
}

func cmdMultiply(i *Interpreter, stmt string) {
	i.scaleBy(rest(stmt), '*')
}

func cmdDivide(i *Interpreter, stmt string) {
	i.scaleBy(rest(stmt), '/')
}

func cmdModulo(i *Interpreter, stmt string) {
	i.scaleBy(rest(stmt), '%')
}

func cmdConvert(i *Interpreter, stmt string) {
	name, target, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	v, exists := i.Variables[name]
	if !exists {
		return
	}
	switch strings.ToLower(strings.TrimSpace(target)) {
	case "number":
		if n, ok := asNumber(v); ok {
			i.Variables[name] = n
		}
	case "text":
		i.Variables[name] = Format(v)
	case "list":
		if s, ok := v.(string); ok {
			list := make([]Value, 0, len(s))
			for _, r := range s {
				list = append(list, string(r))
			}
			i.Variables[name] = list
		}
	default:
		return
	}
	i.logf("info", "🔄 Converted %s to %s", name, strings.ToLower(strings.TrimSpace(target)))
}

func cmdExists(i *Interpreter, stmt string) {
	if name, _, ok := identifier(rest(stmt)); ok {
		_, exists := i.Variables[name]
		i.Variables["_exists"] = exists
		i.show(name + " exists: " + Format(exists))
	}
}

func cmdTypeof(i *Interpreter, stmt string) {
	name, _, ok := identifier(rest(stmt))
	if !ok {
		return
	}
	v, exists := i.Variables[name]
	if !exists {
		return
	}
	var kind string
	switch v.(type) {
	case float64, int:
		kind = "number"
	case string:
		kind = "text"
	case bool:
		kind = "boolean"
	case []Value:
		kind = "list"
	default:
		kind = "object"
	}
	i.Variables["_type"] = kind
	i.show(name + " is " + kind)
}
