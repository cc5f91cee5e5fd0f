package script

import "strings"

// Iteration ceilings stop runaway scripts: conditional loops cap at
// maxLoopIterations, the bare "loop" verb at maxBareLoopIterations.
const (
	maxLoopIterations     = 10000
	maxBareLoopIterations = 100
)

func init() {
	register(cmdRepeat, "repeat")
	register(cmdIf, "if", "when", "whenever")
	register(cmdWhile, "while")
	register(cmdUntil, "until")
	register(cmdFor, "for")
	register(cmdForeach, "foreach")
	register(cmdLoop, "loop")
	register(cmdDo, "do")
	register(cmdBreak, "break", "stop")
	register(cmdContinue, "continue", "skip")
	register(cmdReturn, "return", "give")
	register(cmdFunction, "function", "define")
	register(cmdCall, "call", "run")
	register(cmdTry, "try")
	register(cmdCatch, "catch")
	register(cmdFinally, "finally")
	register(cmdCallupon, "callupon")
}

// iterate runs body once per loop pass, consuming a continue signal and
// reporting whether a break fired.
func (i *Interpreter) iterate(body string) (stop bool) {
	i.runBlock(body)
	i.skipping = false
	if i.breaking {
		i.breaking = false
		return true
	}
	return false
}

func cmdRepeat(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	arg := strings.TrimSuffix(strings.TrimSuffix(rest(head), " times"), " time")
	count, cok := asNumber(i.Eval(arg))
	if !cok || count < 0 {
		return
	}
	for n := 1; n <= int(count); n++ {
		i.Variables["iteration"] = float64(n)
		if i.iterate(body) {
			return
		}
	}
}

// cmdIf walks the full if / elif / else chain: the first clause whose
// condition holds runs, the rest are skipped.
func cmdIf(i *Interpreter, stmt string) {
	for _, c := range clauses(stmt) {
		head := strings.ToLower(firstWord(c.head))
		switch head {
		case "if", "when", "whenever", "elif", "elseif":
			if i.EvalCondition(rest(c.head)) {
				i.runBlock(c.body)
				return
			}
		case "else", "otherwise":
			i.runBlock(c.body)
			return
		default:
			return
		}
	}
}

func cmdWhile(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	cond := rest(head)
	for n := 0; n < maxLoopIterations && i.EvalCondition(cond); n++ {
		if i.iterate(body) {
			return
		}
	}
}

func cmdUntil(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	cond := rest(head)
	for n := 0; n < maxLoopIterations && !i.EvalCondition(cond); n++ {
		if i.iterate(body) {
			return
		}
	}
}

func cmdFor(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	name, span, ok := cutWord(" "+rest(head), "from")
	if !ok {
		return
	}
	ss, es, ok := cutWord(" "+span, "to")
	if !ok {
		return
	}
	start, sok := asNumber(i.Eval(ss))
	end, eok := asNumber(i.Eval(es))
	if !sok || !eok {
		return
	}
	for n := int(start); n <= int(end); n++ {
		i.Variables[name] = float64(n)
		if i.iterate(body) {
			return
		}
	}
}

func cmdForeach(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	name, listName, ok := cutWord(" "+rest(head), "in")
	if !ok {
		return
	}
	list, exists := i.listVar(listName)
	if !exists {
		return
	}
	for _, item := range list {
		i.Variables[name] = item
		if i.iterate(body) {
			return
		}
	}
}

func cmdLoop(i *Interpreter, stmt string) {
	_, body, ok := block(stmt)
	if !ok {
		return
	}
	for n := 0; n < maxBareLoopIterations; n++ {
		if i.iterate(body) {
			return
		}
	}
}

func cmdDo(i *Interpreter, stmt string) {
	if action := rest(stmt); action != "" {
		i.Exec(action)
	}
}

func cmdBreak(i *Interpreter, stmt string) {
	i.breaking = true
}

func cmdContinue(i *Interpreter, stmt string) {
	i.skipping = true
}

func cmdReturn(i *Interpreter, stmt string) {
	if arg := rest(stmt); arg != "" {
		i.Variables["_return"] = i.Eval(arg)
	}
	i.breaking = true
}

func cmdFunction(i *Interpreter, stmt string) {
	head, body, ok := block(stmt)
	if !ok {
		return
	}
	name, _, ok := identifier(rest(head))
	if !ok {
		return
	}
	i.Functions[name] = body
	i.logf("info", "📦 Function defined: %s", name)
}

func cmdCall(i *Interpreter, stmt string) {
	name, _, ok := identifier(rest(stmt))
	if !ok {
		return
	}
	body, exists := i.Functions[name]
	if !exists {
		i.logf("error", "✗ Function not found: %s", name)
		return
	}
	i.runBlock(body)
	i.breaking = false
}

// cmdTry runs the try block, treating any error-channel output from it as
// recoverable: execution always continues, and the catch block runs when
// the try block raised an error.
func cmdTry(i *Interpreter, stmt string) {
	cs := clauses(stmt)
	if len(cs) == 0 {
		return
	}

	failed := false
	prevLog := i.Log
	i.Log = func(level, msg string) {
		if level == "error" {
			failed = true
			i.Variables["_error"] = msg
		}
		if prevLog != nil {
			prevLog(level, msg)
		}
	}
	i.runBlock(cs[0].body)
	i.Log = prevLog

	for _, c := range cs[1:] {
		switch strings.ToLower(firstWord(c.head)) {
		case "catch":
			if failed {
				i.runBlock(c.body)
			}
		case "finally":
			i.runBlock(c.body)
		}
	}
}

func cmdCatch(i *Interpreter, stmt string) {}

func cmdFinally(i *Interpreter, stmt string) {
	if _, body, ok := block(stmt); ok {
		i.runBlock(body)
	}
}

// cmdCallupon imports a script file once: callupon("file.tcc").
func cmdCallupon(i *Interpreter, stmt string) {
	name, _, ok := quoted(stmt)
	if !ok || !strings.HasSuffix(name, ".tcc") {
		return
	}
	if i.imported[name] {
		i.logf("warning", "⚠️ Already imported %s", name)
		return
	}
	i.imported[name] = true
	if err := i.RunFile(name); err != nil {
		i.logf("error", "✗ Cannot find %s", name)
		return
	}
	i.logf("info", "📥 Called upon %s", name)
}
