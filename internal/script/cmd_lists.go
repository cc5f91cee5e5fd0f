package script

import (
	"sort"
	"strings"
)

func init() {
	register(cmdAppend, "append")
	register(cmdPrepend, "prepend")
	register(cmdInsert, "insert")
	register(cmdRemove, "remove")
	register(cmdPop, "pop")
	register(cmdShift, "shift")
	register(cmdClear, "clear")
	register(cmdSort, "sort")
	register(cmdUnique, "unique")
	register(cmdCount, "count")
	register(cmdFirst, "first")
	register(cmdLast, "last")
	register(cmdSlice, "slice")
	register(cmdMerge, "merge")
}

// listVar resolves a variable name to its list value, or false when the
// variable is missing or not a list.
func (i *Interpreter) listVar(name string) ([]Value, bool) {
	return asList(i.Variables[name])
}

func cmdAppend(i *Interpreter, stmt string) {
	is, ns, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if l, exists := i.listVar(ns); exists {
		item := i.Eval(is)
		i.Variables[ns] = append(l, item)
		i.logf("info", "➕ Appended %s to %s", Format(item), ns)
	}
}

func cmdPrepend(i *Interpreter, stmt string) {
	is, ns, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	if l, exists := i.listVar(ns); exists {
		item := i.Eval(is)
		i.Variables[ns] = append([]Value{item}, l...)
		i.logf("info", "➕ Prepended %s to %s", Format(item), ns)
	}
}

func cmdInsert(i *Interpreter, stmt string) {
	is, spec, ok := cutWord(" "+rest(stmt), "at")
	if !ok {
		return
	}
	xs, ns, ok := cutWord(" "+spec, "in")
	if !ok {
		return
	}
	idx, iok := asNumber(i.Eval(xs))
	l, exists := i.listVar(ns)
	if !iok || !exists {
		return
	}
	at := int(idx)
	if at < 0 {
		at = 0
	}
	if at > len(l) {
		at = len(l)
	}
	item := i.Eval(is)
	l = append(l[:at], append([]Value{item}, l[at:]...)...)
	i.Variables[ns] = l
	i.logf("info", "➕ Inserted %s at index %d", Format(item), at)
}

func cmdRemove(i *Interpreter, stmt string) {
	is, ns, ok := cutWord(" "+rest(stmt), "from")
	if !ok {
		return
	}
	l, exists := i.listVar(ns)
	if !exists {
		return
	}
	item := i.Eval(is)
	for idx, v := range l {
		if valueEqual(v, item) {
			i.Variables[ns] = append(l[:idx], l[idx+1:]...)
			i.logf("info", "➖ Removed %s from %s", Format(item), ns)
			return
		}
	}
	i.logf("warning", "⚠️ Item not found")
}

func cmdPop(i *Interpreter, stmt string) {
	name := dropWord(rest(stmt), "from")
	if l, exists := i.listVar(name); exists && len(l) > 0 {
		item := l[len(l)-1]
		i.Variables[name] = l[:len(l)-1]
		i.Variables["_popped"] = item
		i.show("Popped: " + Format(item))
	}
}

func cmdShift(i *Interpreter, stmt string) {
	name := dropWord(rest(stmt), "from")
	if l, exists := i.listVar(name); exists && len(l) > 0 {
		item := l[0]
		i.Variables[name] = l[1:]
		i.Variables["_shifted"] = item
		i.show("Shifted: " + Format(item))
	}
}

// cmdClear empties a named list; with no list argument it clears the
// output surface instead.
func cmdClear(i *Interpreter, stmt string) {
	name := rest(stmt)
	if _, exists := i.listVar(name); exists {
		i.Variables[name] = []Value{}
		i.logf("info", "🗑️ Cleared %s", name)
		return
	}
	if i.Surface != nil {
		i.Surface.Clear()
	}
	i.show("✓ Cleared")
}

func cmdSort(i *Interpreter, stmt string) {
	name := rest(stmt)
	if l, exists := i.listVar(name); exists {
		sort.SliceStable(l, func(a, b int) bool { return valueLess(l[a], l[b]) })
		i.logf("info", "📊 Sorted %s", name)
	}
}

func cmdUnique(i *Interpreter, stmt string) {
	name := dropWord(rest(stmt), "of")
	l, exists := i.listVar(name)
	if !exists {
		return
	}
	var result []Value
	seen := make(map[string]bool)
	for _, v := range l {
		key := Format(v)
		if !seen[key] {
			seen[key] = true
			result = append(result, v)
		}
	}
	i.Variables["_unique"] = result
	i.show("Unique: " + Format(result))
}

func cmdCount(i *Interpreter, stmt string) {
	is, ns, ok := cutWord(" "+rest(stmt), "in")
	if !ok {
		return
	}
	l, exists := i.listVar(ns)
	if !exists {
		return
	}
	item := i.Eval(is)
	count := 0.0
	for _, v := range l {
		if valueEqual(v, item) {
			count++
		}
	}
	i.Variables["_count"] = count
	i.show("Count: " + Format(count))
}

func cmdFirst(i *Interpreter, stmt string) {
	name := dropWord(rest(stmt), "of")
	if l, exists := i.listVar(name); exists && len(l) > 0 {
		i.Variables["_first"] = l[0]
		i.show("First: " + Format(l[0]))
	}
}

func cmdLast(i *Interpreter, stmt string) {
	name := dropWord(rest(stmt), "of")
	if l, exists := i.listVar(name); exists && len(l) > 0 {
		i.Variables["_last"] = l[len(l)-1]
		i.show("Last: " + Format(l[len(l)-1]))
	}
}

func cmdSlice(i *Interpreter, stmt string) {
	ns, span, ok := cutWord(" "+rest(stmt), "from")
	if !ok {
		return
	}
	ss, es, ok := cutWord(" "+span, "to")
	if !ok {
		return
	}
	l, exists := i.listVar(strings.TrimSpace(ns))
	if !exists {
		return
	}
	start, sok := asNumber(i.Eval(ss))
	end, eok := asNumber(i.Eval(es))
	if !sok || !eok {
		return
	}
	lo, hi := int(start), int(end)
	if lo < 0 {
		lo = 0
	}
	if hi > len(l) {
		hi = len(l)
	}
	if lo > hi {
		return
	}
	result := append([]Value{}, l[lo:hi]...)
	i.Variables["_slice"] = result
	i.show("Slice: " + Format(result))
}

func cmdMerge(i *Interpreter, stmt string) {
	as, bs, ok := cutWord(" "+rest(stmt), "and")
	if !ok {
		return
	}
	la, aok := i.listVar(strings.TrimSpace(as))
	lb, bok := i.listVar(strings.TrimSpace(bs))
	if aok && bok {
		result := append(append([]Value{}, la...), lb...)
		i.Variables["_merged"] = result
		i.show("Merged: " + Format(result))
	}
}
