package script

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register(cmdSay, "say", "print", "log")
	register(cmdShout, "shout")
	register(cmdWhisper, "whisper")
	register(cmdShow, "show", "display")
	register(cmdInput, "input")
	register(cmdListVars, "list")
	register(cmdDebugMsg, "debug")
	register(cmdWarnMsg, "warn", "warning")
	register(cmdErrorMsg, "error", "throw")
	register(cmdInfoMsg, "info")
	register(cmdSuccessMsg, "success")
	register(cmdAssert, "assert", "verify")
	register(cmdComment, "comment", "note")
	register(cmdClearGraphics, "cleargraphics")
}

func cmdSay(i *Interpreter, stmt string) {
	i.say(Format(i.Eval(rest(stmt))))
}

func cmdShout(i *Interpreter, stmt string) {
	i.say(strings.ToUpper(Format(i.Eval(rest(stmt)))) + "!")
}

func cmdWhisper(i *Interpreter, stmt string) {
	i.say(strings.ToLower(Format(i.Eval(rest(stmt)))))
}

func cmdShow(i *Interpreter, stmt string) {
	i.show(Format(i.Eval(rest(stmt))))
}

// cmdInput reads a value through the frontend prompt. "input "prompt" into
// name", "input name "prompt"", and "input name" all work. Numeric answers
// are stored as numbers.
func cmdInput(i *Interpreter, stmt string) {
	args := rest(stmt)
	var prompt, name string

	if strings.HasPrefix(args, `"`) || strings.HasPrefix(args, `'`) {
		if text, after, ok := quoted(args); ok {
			prompt = text
			name = dropWord(after, "into")
		}
	} else if n, after, ok := identifier(args); ok {
		name = n
		if text, _, ok := quoted(after); ok {
			prompt = text
		} else {
			prompt = "Enter value:"
		}
	}
	if name == "" {
		return
	}

	if i.Input == nil {
		i.Variables[name] = ""
		return
	}
	answer, ok := i.Input(prompt)
	if !ok {
		i.Variables[name] = ""
		return
	}
	if n, err := strconv.ParseFloat(answer, 64); err == nil {
		i.Variables[name] = n
	} else {
		i.Variables[name] = answer
	}
	i.show(fmt.Sprintf("✓ %s = %s", name, Format(i.Variables[name])))
}

// cmdListVars prints user variables, skipping constants and the _-prefixed
// result slots.
func cmdListVars(i *Interpreter, stmt string) {
	if !containsWord(stmt, "variables") && !containsWord(stmt, "variable") {
		return
	}
	i.show("Variables:")
	for name, value := range i.Variables {
		if strings.HasPrefix(name, "_") || name == strings.ToUpper(name) {
			continue
		}
		i.say(fmt.Sprintf("  %s = %s", name, Format(value)))
	}
}

func cmdDebugMsg(i *Interpreter, stmt string) {
	i.logf("info", "🐛 DEBUG: %s", Format(i.Eval(rest(stmt))))
}

func cmdWarnMsg(i *Interpreter, stmt string) {
	i.logf("warning", "⚠️ WARNING: %s", Format(i.Eval(rest(stmt))))
}

func cmdErrorMsg(i *Interpreter, stmt string) {
	i.logf("error", "❌ ERROR: %s", Format(i.Eval(rest(stmt))))
}

func cmdInfoMsg(i *Interpreter, stmt string) {
	i.logf("info", "ℹ️ INFO: %s", Format(i.Eval(rest(stmt))))
}

func cmdSuccessMsg(i *Interpreter, stmt string) {
	i.logf("success", "✅ SUCCESS: %s", Format(i.Eval(rest(stmt))))
}

func cmdAssert(i *Interpreter, stmt string) {
	cond := rest(stmt)
	if i.EvalCondition(cond) {
		i.logf("success", "✅ Assert passed: %s", cond)
	} else {
		i.logf("error", "❌ Assert failed: %s", cond)
	}
}

func cmdComment(i *Interpreter, stmt string) {}

func cmdClearGraphics(i *Interpreter, stmt string) {
	if i.Surface != nil {
		i.Surface.Clear()
		i.show("✓ Graphics cleared")
	}
}
