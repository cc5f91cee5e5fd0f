package script

import (
	"fmt"
	"math"
)

func init() {
	register(cmdCalculate, "calculate", "compute")
	register(cmdPower, "power")
	register(cmdRoot, "root")
	register(cmdAbsolute, "absolute")
	register(cmdRoundup, "roundup", "ceil")
	register(cmdRounddown, "rounddown", "floor")
	register(cmdRound, "round")
	register(cmdSin, "sin")
	register(cmdCos, "cos")
	register(cmdTan, "tan")
	register(cmdMin, "min")
	register(cmdMax, "max")
	register(cmdAverage, "average", "mean")
	register(cmdSum, "sum")
	register(cmdProduct, "product")
	register(cmdPercent, "percent")
	register(cmdFactorial, "factorial")
	register(cmdSquared, "squared")
	register(cmdCubed, "cubed")
	register(cmdLn, "ln")
	register(cmdExp, "exp")
	register(cmdSign, "sign")
	register(cmdClamp, "clamp")
	register(cmdRandom, "random")
	register(cmdChoose, "choose")
	register(cmdCompare, "compare")
}

func cmdCalculate(i *Interpreter, stmt string) {
	result := i.Eval(rest(stmt))
	i.Variables["result"] = result
	i.show("Result: " + Format(result))
}

func cmdPower(i *Interpreter, stmt string) {
	bs, es, ok := cutWord(" "+rest(stmt), "to")
	if !ok {
		return
	}
	base, bok := asNumber(i.Eval(bs))
	exp, eok := asNumber(i.Eval(es))
	if bok && eok {
		result := math.Pow(base, exp)
		i.Variables["_power"] = result
		i.show("Power: " + Format(result))
	}
}

// numArg evaluates the remainder of a one-argument math verb, with the "of"
// filler word allowed.
func (i *Interpreter) numArg(stmt string) (float64, bool) {
	return asNumber(i.Eval(dropWord(rest(stmt), "of")))
}

func cmdRoot(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok && v >= 0 {
		result := math.Sqrt(v)
		i.Variables["_root"] = result
		i.show("Root: " + Format(result))
	}
}

func cmdAbsolute(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := math.Abs(v)
		i.Variables["_absolute"] = result
		i.show("Absolute: " + Format(result))
	}
}

func cmdRoundup(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := math.Ceil(v)
		i.Variables["_rounded"] = result
		i.show(fmt.Sprintf("ceil(%s) = %s", Format(v), Format(result)))
	}
}

func cmdRounddown(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := math.Floor(v)
		i.Variables["_rounded"] = result
		i.show(fmt.Sprintf("floor(%s) = %s", Format(v), Format(result)))
	}
}

func cmdRound(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := math.Round(v)
		i.Variables["_rounded"] = result
		i.show(fmt.Sprintf("round(%s) = %s", Format(v), Format(result)))
	}
}

// The trig verbs take degrees, matching how rotations are written
// everywhere else in the engine.
func (i *Interpreter) trig(stmt string, fn func(float64) float64, name string) {
	if angle, ok := i.numArg(stmt); ok {
		result := fn(angle * math.Pi / 180)
		i.Variables["_trig"] = result
		i.show(fmt.Sprintf("%s(%s°) = %.4f", name, Format(angle), result))
	}
}

func cmdSin(i *Interpreter, stmt string) { i.trig(stmt, math.Sin, "sin") }
func cmdCos(i *Interpreter, stmt string) { i.trig(stmt, math.Cos, "cos") }
func cmdTan(i *Interpreter, stmt string) { i.trig(stmt, math.Tan, "tan") }

// listArg evaluates the remainder into a numeric slice; a plain number
// yields a single-item slice.
func (i *Interpreter) listArg(stmt string) ([]float64, bool) {
	v := i.Eval(dropWord(rest(stmt), "of"))
	if l, ok := asList(v); ok {
		out := make([]float64, 0, len(l))
		for _, item := range l {
			n, ok := asNumber(item)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, len(out) > 0
	}
	if n, ok := asNumber(v); ok {
		return []float64{n}, true
	}
	return nil, false
}

func cmdMin(i *Interpreter, stmt string) {
	if nums, ok := i.listArg(stmt); ok {
		result := nums[0]
		for _, n := range nums[1:] {
			result = math.Min(result, n)
		}
		i.Variables["_min"] = result
		i.show("Min: " + Format(result))
	}
}

func cmdMax(i *Interpreter, stmt string) {
	if nums, ok := i.listArg(stmt); ok {
		result := nums[0]
		for _, n := range nums[1:] {
			result = math.Max(result, n)
		}
		i.Variables["_max"] = result
		i.show("Max: " + Format(result))
	}
}

func cmdAverage(i *Interpreter, stmt string) {
	if nums, ok := i.listArg(stmt); ok {
		total := 0.0
		for _, n := range nums {
			total += n
		}
		result := total / float64(len(nums))
		i.Variables["_average"] = result
		i.show(fmt.Sprintf("Average: %.2f", result))
	}
}

func cmdSum(i *Interpreter, stmt string) {
	if nums, ok := i.listArg(stmt); ok {
		result := 0.0
		for _, n := range nums {
			result += n
		}
		i.Variables["_sum"] = result
		i.show("Sum: " + Format(result))
	}
}

func cmdProduct(i *Interpreter, stmt string) {
	if nums, ok := i.listArg(stmt); ok {
		result := 1.0
		for _, n := range nums {
			result *= n
		}
		i.Variables["_product"] = result
		i.show("Product: " + Format(result))
	}
}

func cmdPercent(i *Interpreter, stmt string) {
	vs, ts, ok := cutWord(" "+rest(stmt), "of")
	if !ok {
		return
	}
	value, vok := asNumber(i.Eval(vs))
	total, tok := asNumber(i.Eval(ts))
	if vok && tok && total != 0 {
		result := value / total * 100
		i.Variables["_percent"] = result
		i.show(fmt.Sprintf("%s is %.2f%% of %s", Format(value), result, Format(total)))
	}
}

func cmdFactorial(i *Interpreter, stmt string) {
	v, ok := i.numArg(stmt)
	if !ok || v < 0 || v > 170 {
		return
	}
	n := int(v)
	result := 1.0
	for k := 2; k <= n; k++ {
		result *= float64(k)
	}
	i.Variables["_factorial"] = result
	i.show(fmt.Sprintf("%d! = %s", n, Format(result)))
}

func cmdSquared(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := v * v
		i.Variables["_squared"] = result
		i.show(fmt.Sprintf("%s² = %s", Format(v), Format(result)))
	}
}

func cmdCubed(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := v * v * v
		i.Variables["_cubed"] = result
		i.show(fmt.Sprintf("%s³ = %s", Format(v), Format(result)))
	}
}

func cmdLn(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok && v > 0 {
		result := math.Log(v)
		i.Variables["_ln"] = result
		i.show(fmt.Sprintf("ln(%s) = %.4f", Format(v), result))
	}
}

func cmdExp(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := math.Exp(v)
		i.Variables["_exp"] = result
		i.show(fmt.Sprintf("e^%s = %.4f", Format(v), result))
	}
}

func cmdSign(i *Interpreter, stmt string) {
	if v, ok := i.numArg(stmt); ok {
		result := 0.0
		if v > 0 {
			result = 1
		} else if v < 0 {
			result = -1
		}
		i.Variables["_sign"] = result
		i.show(fmt.Sprintf("sign(%s) = %s", Format(v), Format(result)))
	}
}

func cmdClamp(i *Interpreter, stmt string) {
	vs, bounds, ok := cutWord(" "+rest(stmt), "between")
	if !ok {
		return
	}
	los, his, ok := cutWord(" "+bounds, "and")
	if !ok {
		return
	}
	v, vok := asNumber(i.Eval(vs))
	lo, lok := asNumber(i.Eval(los))
	hi, hok := asNumber(i.Eval(his))
	if vok && lok && hok {
		result := math.Max(lo, math.Min(hi, v))
		i.Variables["_clamped"] = result
		i.show("Clamped: " + Format(result))
	}
}

func cmdRandom(i *Interpreter, stmt string) {
	los, his, ok := cutWord(" "+dropWord(rest(stmt), "from"), "to")
	if !ok {
		// "random from a to b" with the from already dropped leaves
		// "a to b"; a bare "random" rolls 0-100.
		los, his = "0", "100"
	}
	lo, lok := asNumber(i.Eval(los))
	hi, hok := asNumber(i.Eval(his))
	if lok && hok {
		result := float64(i.randInt(int(lo), int(hi)))
		i.Variables["random"] = result
		i.show("Random: " + Format(result))
	}
}

func cmdChoose(i *Interpreter, stmt string) {
	items, ok := asList(i.Eval(dropWord(rest(stmt), "from")))
	if !ok || len(items) == 0 {
		return
	}
	choice := items[i.randInt(0, len(items)-1)]
	i.Variables["choice"] = choice
	i.show("Chosen: " + Format(choice))
}

func cmdCompare(i *Interpreter, stmt string) {
	as, bs, ok := cutWord(" "+rest(stmt), "and")
	if !ok {
		return
	}
	a := i.Eval(as)
	b := i.Eval(bs)
	var result string
	switch {
	case valueEqual(a, b):
		result = "equal"
	case valueLess(a, b):
		result = "less"
	default:
		result = "greater"
	}
	i.Variables["_comparison"] = result
	i.show(fmt.Sprintf("%s is %s than %s", Format(a), result, Format(b)))
}
