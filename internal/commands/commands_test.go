package commands

import (
	"flag"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd grid -visible=false", []string{"grid", "-visible=false"}, true},
		{"cmd ", nil, true},
		{"say hello", nil, false},
		{"cmdgrid", nil, false},
	}
	for _, c := range cases {
		args, ok := Parse(c.line)
		if ok != c.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", c.line, ok, c.ok)
		}
		if len(args) != len(c.args) {
			t.Fatalf("Parse(%q) = %v, want %v", c.line, args, c.args)
		}
	}
}

func TestRegistryExecute(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	visible := fs.Bool("visible", true, "")
	ran := false
	r.Register("grid", fs, func() error {
		ran = true
		return nil
	})

	if err := r.Execute([]string{"grid", "-visible=false"}); err != nil {
		t.Fatal(err)
	}
	if !ran || *visible {
		t.Fatalf("ran=%v visible=%v", ran, *visible)
	}

	if err := r.Execute([]string{"nope"}); err == nil {
		t.Fatal("unknown command did not error")
	}
	if err := r.Execute(nil); err == nil {
		t.Fatal("empty args did not error")
	}
}

func TestNamesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("b", flag.NewFlagSet("b", flag.ContinueOnError), func() error { return nil })
	r.Register("a", flag.NewFlagSet("a", flag.ContinueOnError), func() error { return nil })
	r.Register("b", flag.NewFlagSet("b", flag.ContinueOnError), func() error { return nil })
	names := r.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("Names() = %v", names)
	}
}
