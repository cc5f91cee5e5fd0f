package script

import "strings"

func init() {
	register(cmdNot, "not")
}

func cmdNot(i *Interpreter, stmt string) {
	result := !truthy(i.Eval(rest(stmt)))
	i.Variables["_logic"] = result
	i.show("Result: " + Format(result))
}

// tryInfix handles the comparison statements whose verb sits in the middle:
// "x contains "y"", "x equals y", "x greater than y", "x between a and b".
// The result lands in the matching _-variable.
func (i *Interpreter) tryInfix(stmt string) bool {
	if ls, rs, ok := cutWord(stmt, "contains"); ok {
		needle, _, qok := quoted(rs)
		if !qok {
			needle = Format(i.Eval(rs))
		}
		result := strings.Contains(Format(i.Eval(ls)), needle)
		i.Variables["_contains"] = result
		i.show("Contains: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "startswith"); ok {
		prefix, _, qok := quoted(rs)
		if !qok {
			prefix = Format(i.Eval(rs))
		}
		result := strings.HasPrefix(Format(i.Eval(ls)), prefix)
		i.Variables["_startswith"] = result
		i.show("Starts with: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "endswith"); ok {
		suffix, _, qok := quoted(rs)
		if !qok {
			suffix = Format(i.Eval(rs))
		}
		result := strings.HasSuffix(Format(i.Eval(ls)), suffix)
		i.Variables["_endswith"] = result
		i.show("Ends with: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "notequals"); ok {
		result := !valueEqual(i.Eval(ls), i.Eval(rs))
		i.Variables["_notequals"] = result
		i.show("Not equals: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "equals"); ok {
		result := valueEqual(i.Eval(ls), i.Eval(rs))
		i.Variables["_equals"] = result
		i.show("Equals: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "greater"); ok {
		result := valueLess(i.Eval(dropWord(rs, "than")), i.Eval(ls))
		i.Variables["_greater"] = result
		i.show("Greater: " + Format(result))
		return true
	}
	if ls, rs, ok := cutWord(stmt, "less"); ok {
		result := valueLess(i.Eval(ls), i.Eval(dropWord(rs, "than")))
		i.Variables["_less"] = result
		i.show("Less: " + Format(result))
		return true
	}
	if ls, span, ok := cutWord(stmt, "between"); ok {
		los, his, aok := cutWord(" "+span, "and")
		if !aok {
			return false
		}
		v, vok := asNumber(i.Eval(ls))
		lo, lok := asNumber(i.Eval(los))
		hi, hok := asNumber(i.Eval(his))
		if !vok || !lok || !hok {
			return false
		}
		result := lo <= v && v <= hi
		i.Variables["_between"] = result
		i.show("Between: " + Format(result))
		return true
	}
	return false
}
