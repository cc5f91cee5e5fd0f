package script

import (
	"strings"
	"testing"
)

func TestStripComments(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"say \"hi\" // trailing", "say \"hi\" "},
		{"# full line\nsay \"hi\"", "\nsay \"hi\""},
		{"a /* mid */ b", "a  b"},
		{"before \"\"\" doc\ncomment \"\"\" after", "before \n after"},
		{`say "not // a comment"`, `say "not // a comment"`},
		{`say "keep # this"`, `say "keep # this"`},
	}
	for _, c := range cases {
		if got := StripComments(c.in); got != c.want {
			t.Fatalf("StripComments(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSplitStatements(t *testing.T) {
	code := `
say "one"
repeat 3 times {
    say "two"
}
say "three"
`
	stmts := SplitStatements(code)
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3: %v", len(stmts), stmts)
	}
	if !strings.HasPrefix(stmts[1], "repeat 3 times") {
		t.Fatalf("block statement lost its head: %q", stmts[1])
	}
	if !strings.Contains(stmts[1], `say "two"`) {
		t.Fatalf("block statement lost its body: %q", stmts[1])
	}
	// Line breaks inside the block must survive so the body re-splits into
	// its own statements.
	if !strings.Contains(stmts[1], "\n") {
		t.Fatalf("block statement flattened to one line: %q", stmts[1])
	}
}

func TestSplitStatementsIgnoresBracesInStrings(t *testing.T) {
	stmts := SplitStatements("say \"curly {\"\nsay \"done\"")
	if len(stmts) != 2 {
		t.Fatalf("quoted brace corrupted splitting: %v", stmts)
	}
	if stmts[1] != `say "done"` {
		t.Fatalf("second statement = %q", stmts[1])
	}
}

func TestSplitStatementsUnclosedBlock(t *testing.T) {
	stmts := SplitStatements("while true {\n  say \"x\"")
	if len(stmts) != 1 {
		t.Fatalf("unclosed block dropped: %v", stmts)
	}
}

func TestSplitStatementsChainedClauses(t *testing.T) {
	code := "if x > 1 {\n say \"big\"\n} else {\n say \"small\"\n}"
	stmts := SplitStatements(code)
	if len(stmts) != 1 {
		t.Fatalf("if/else chain split apart: %v", stmts)
	}
	cs := clauses(stmts[0])
	if len(cs) != 2 {
		t.Fatalf("got %d clauses, want 2", len(cs))
	}
	if firstWord(cs[1].head) != "else" {
		t.Fatalf("second clause head = %q", cs[1].head)
	}
}
