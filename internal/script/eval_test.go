package script

import (
	"testing"

	"atlas-engine/internal/scene"
)

func TestEval(t *testing.T) {
	i := New(scene.New())
	i.Variables["score"] = 7.0
	i.Variables["name"] = "hello"
	i.Variables["items"] = []Value{1.0, 2.0, 3.0}

	cases := []struct {
		expr string
		want string
	}{
		{"2 + 3", "5"},
		{"10 / 4", "2.5"},
		{"2 ^ 3", "8"},
		{"2 ** 3", "8"},
		{"7 % 4", "3"},
		{"-5", "-5"},
		{"(1 + 2) * 3", "9"},
		{`"hello"`, "hello"},
		{`"a" + "b"`, "ab"},
		{`"score: " + score`, "score: 7"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"score", "7"},
		{"score + 1", "8"},
		{"name", "hello"},
		{"first of items", "1"},
		{"last of items", "3"},
		{"count of items", "3"},
		{"length of name", "5"},
		{"sqrt(16)", "4"},
		{"abs(-3)", "3"},
		{"round(2.7)", "3"},
		{"min(3, 1, 2)", "1"},
		{"max(3, 1, 2)", "3"},
		{"sum(1, 2, 3)", "6"},
		{"pow(2, 10)", "1024"},
		{"sum(items)", "6"},
		{"just some words", "just some words"},
		{"", ""},
	}
	for _, c := range cases {
		got := Format(i.Eval(c.expr))
		if got != c.want {
			t.Fatalf("Eval(%q) = %q, want %q", c.expr, got, c.want)
		}
	}
}

func TestEvalCondition(t *testing.T) {
	i := New(scene.New())
	i.Variables["x"] = 5.0
	i.Variables["name"] = "Ada"

	cases := []struct {
		cond string
		want bool
	}{
		{"5 greater than 3", true},
		{"5 less than 3", false},
		{"x is 5", true},
		{"x is not 5", false},
		{"x is not 6", true},
		{"x equals 5", true},
		{`name is "Ada"`, true},
		{`name is "Bob"`, false},
		{"x >= 5", true},
		{"x <= 4", false},
		{"1 < 2 and 3 < 4", true},
		{"1 > 2 or 3 < 4", true},
		{"not false", true},
		{"true", true},
		{"false", false},
		{"complete gibberish here", false},
	}
	for _, c := range cases {
		if got := i.EvalCondition(c.cond); got != c.want {
			t.Fatalf("EvalCondition(%q) = %v, want %v", c.cond, got, c.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{3.0, "3"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{true, "true"},
		{false, "false"},
		{"text", "text"},
		{[]Value{1.0, "a", true}, "[1, a, true]"},
		{nil, ""},
		{scene.Handle(7), "7"},
	}
	for _, c := range cases {
		if got := Format(c.v); got != c.want {
			t.Fatalf("Format(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestEvalFallbackKeepsRawText(t *testing.T) {
	i := New(scene.New())
	got := i.Eval("the quick brown fox")
	if got != "the quick brown fox" {
		t.Fatalf("unparseable expression changed: %q", got)
	}
}
