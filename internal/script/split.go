package script

import "strings"

// StripComments removes // and # line comments plus /* */ and """ """
// block comments.
func StripComments(code string) string {
	var out strings.Builder
	inLine := false
	inBlock := false
	inDoc := false
	inString := byte(0)

	for i := 0; i < len(code); i++ {
		c := code[i]

		switch {
		case inLine:
			if c == '\n' {
				inLine = false
				out.WriteByte(c)
			}
		case inBlock:
			if c == '*' && i+1 < len(code) && code[i+1] == '/' {
				inBlock = false
				i++
			} else if c == '\n' {
				out.WriteByte(c)
			}
		case inDoc:
			if c == '"' && strings.HasPrefix(code[i:], `"""`) {
				inDoc = false
				i += 2
			} else if c == '\n' {
				out.WriteByte(c)
			}
		case inString != 0:
			out.WriteByte(c)
			if c == inString {
				inString = 0
			}
		default:
			switch {
			case c == '"' && strings.HasPrefix(code[i:], `"""`):
				inDoc = true
				i += 2
			case c == '"' || c == '\'':
				inString = c
				out.WriteByte(c)
			case c == '/' && i+1 < len(code) && code[i+1] == '/':
				inLine = true
			case c == '#':
				inLine = true
			case c == '/' && i+1 < len(code) && code[i+1] == '*':
				inBlock = true
				i++
			default:
				out.WriteByte(c)
			}
		}
	}
	return out.String()
}

// SplitStatements breaks code into statements. Lines accumulate while a
// brace block is open, keeping their newlines so a block body re-splits
// into its own statements; a balanced line is a complete statement on its
// own. An unclosed block at the end of the input is still returned so the
// error surfaces at execution rather than being silently dropped.
func SplitStatements(code string) []string {
	var statements []string
	current := ""
	depth := 0

	for _, raw := range strings.Split(code, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		depth += braceDelta(line)
		if current == "" {
			current = line
		} else {
			current += "\n" + line
		}

		if depth <= 0 {
			statements = append(statements, strings.TrimSpace(current))
			current = ""
			depth = 0
		}
	}

	if strings.TrimSpace(current) != "" {
		statements = append(statements, strings.TrimSpace(current))
	}
	return statements
}

// braceDelta counts the net brace depth change of a line, ignoring braces
// inside quoted text.
func braceDelta(line string) int {
	depth := 0
	inString := byte(0)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if inString != 0 {
			if c == inString {
				inString = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = c
		case '{':
			depth++
		case '}':
			depth--
		}
	}
	return depth
}
