package script

import (
	"strings"
)

func init() {
	register(cmdJoin, "join")
	register(cmdSplit, "split")
	register(cmdLength, "length")
	register(cmdUppercase, "uppercase")
	register(cmdLowercase, "lowercase")
	register(cmdTitlecase, "titlecase")
	register(cmdReverse, "reverse")
	register(cmdTrim, "trim")
	register(cmdReplace, "replace")
	register(cmdSubstring, "substring")
	register(cmdPadleft, "padleft")
	register(cmdPadright, "padright")
	register(cmdIndexof, "indexof")
}

func cmdJoin(i *Interpreter, stmt string) {
	as, bs, ok := cutWord(" "+rest(stmt), "and")
	if !ok {
		return
	}
	result := Format(i.Eval(as)) + Format(i.Eval(bs))
	i.Variables["_joined"] = result
	i.show("Joined: " + result)
}

func cmdSplit(i *Interpreter, stmt string) {
	ts, ds, ok := cutWord(" "+rest(stmt), "by")
	if !ok {
		return
	}
	delim, _, ok := quoted(ds)
	if !ok {
		return
	}
	text := Format(i.Eval(ts))
	parts := strings.Split(text, delim)
	result := make([]Value, len(parts))
	for idx, p := range parts {
		result[idx] = p
	}
	i.Variables["_split"] = result
	i.show("Split: " + Format(result))
}

func cmdLength(i *Interpreter, stmt string) {
	v := i.Eval(dropWord(rest(stmt), "of"))
	length := 0.0
	if l, ok := asList(v); ok {
		length = float64(len(l))
	} else if s, ok := v.(string); ok {
		length = float64(len(s))
	}
	i.Variables["_length"] = length
	i.show("Length: " + Format(length))
}

// transformText is the shared body of the simple one-argument text verbs.
func (i *Interpreter) transformText(stmt string, fn func(string) string) {
	result := fn(Format(i.Eval(rest(stmt))))
	i.Variables["_text"] = result
	i.show(result)
}

func cmdUppercase(i *Interpreter, stmt string) {
	i.transformText(stmt, strings.ToUpper)
}

func cmdLowercase(i *Interpreter, stmt string) {
	i.transformText(stmt, strings.ToLower)
}

func cmdTitlecase(i *Interpreter, stmt string) {
	i.transformText(stmt, func(s string) string {
		words := strings.Fields(s)
		for idx, w := range words {
			if w != "" {
				words[idx] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
			}
		}
		return strings.Join(words, " ")
	})
}

// cmdReverse reverses a list variable in place, or reverses text.
func cmdReverse(i *Interpreter, stmt string) {
	arg := rest(stmt)
	if name, after, ok := identifier(arg); ok && after == "" {
		if l, isList := asList(i.Variables[name]); isList {
			for a, b := 0, len(l)-1; a < b; a, b = a+1, b-1 {
				l[a], l[b] = l[b], l[a]
			}
			i.logf("info", "🔄 Reversed %s", name)
			return
		}
	}
	i.transformText(stmt, func(s string) string {
		runes := []rune(s)
		for a, b := 0, len(runes)-1; a < b; a, b = a+1, b-1 {
			runes[a], runes[b] = runes[b], runes[a]
		}
		return string(runes)
	})
}

func cmdTrim(i *Interpreter, stmt string) {
	i.transformText(stmt, strings.TrimSpace)
}

func cmdReplace(i *Interpreter, stmt string) {
	args := rest(stmt)
	old, afterOld, ok := quoted(args)
	if !ok {
		return
	}
	afterOld = dropWord(afterOld, "with")
	new_, afterNew, ok := quoted(afterOld)
	if !ok {
		return
	}
	text := Format(i.Eval(dropWord(afterNew, "in")))
	result := strings.ReplaceAll(text, old, new_)
	i.Variables["_text"] = result
	i.show(result)
}

func cmdSubstring(i *Interpreter, stmt string) {
	args := dropWord(rest(stmt), "of")
	ts, span, ok := cutWord(" "+args, "from")
	if !ok {
		return
	}
	ss, es, ok := cutWord(" "+span, "to")
	if !ok {
		return
	}
	text := Format(i.Eval(ts))
	start, sok := asNumber(i.Eval(ss))
	end, eok := asNumber(i.Eval(es))
	if !sok || !eok {
		return
	}
	lo, hi := int(start), int(end)
	if lo < 0 {
		lo = 0
	}
	if hi > len(text) {
		hi = len(text)
	}
	if lo > hi {
		return
	}
	result := text[lo:hi]
	i.Variables["_text"] = result
	i.show(result)
}

func (i *Interpreter) padText(stmt string, left bool) {
	args, spec, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	text := Format(i.Eval(args))
	pad := " "
	ls := spec
	if before, after, has := cutWord(" "+spec, "with"); has {
		ls = before
		if q, _, ok := quoted(after); ok && q != "" {
			pad = q[:1]
		}
	}
	length, ok := asNumber(i.Eval(ls))
	if !ok {
		return
	}
	for len(text) < int(length) {
		if left {
			text = pad + text
		} else {
			text += pad
		}
	}
	i.Variables["_text"] = text
	i.show(text)
}

func cmdPadleft(i *Interpreter, stmt string) {
	i.padText(stmt, true)
}

func cmdPadright(i *Interpreter, stmt string) {
	i.padText(stmt, false)
}

func cmdIndexof(i *Interpreter, stmt string) {
	args := rest(stmt)
	needle, after, ok := quoted(args)
	if !ok {
		return
	}
	text := Format(i.Eval(dropWord(after, "in")))
	idx := strings.Index(text, needle)
	i.Variables["_index"] = float64(idx)
	if idx < 0 {
		i.show("Not found (-1)")
	} else {
		i.show("Index: " + Format(float64(idx)))
	}
}
