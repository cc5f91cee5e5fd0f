package script

import "strings"

// The verb handlers parse their arguments with these helpers instead of
// regular expressions. Each works on the statement with the verb word
// already removed.

// rest strips the leading verb word and returns the remainder.
func rest(stmt string) string {
	fields := strings.SplitN(strings.TrimSpace(stmt), " ", 2)
	if len(fields) < 2 {
		return ""
	}
	return strings.TrimSpace(fields[1])
}

// firstWord returns the verb word, lowercased.
func firstWord(stmt string) string {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}

// cutWord splits s at the first standalone occurrence of word (case
// insensitive, outside quotes).
func cutWord(s, word string) (before, after string, ok bool) {
	lower := strings.ToLower(s)
	needle := " " + strings.ToLower(word) + " "
	inString := byte(0)
	for i := 0; i+len(needle) <= len(s); i++ {
		c := s[i]
		if inString != 0 {
			if c == inString {
				inString = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			inString = c
			continue
		}
		if lower[i:i+len(needle)] == needle {
			return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(needle):]), true
		}
	}
	return "", "", false
}

// dropWord removes a leading optional word ("of", "set", "for"...).
func dropWord(s, word string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	prefix := strings.ToLower(word) + " "
	if strings.HasPrefix(lower, prefix) {
		return strings.TrimSpace(strings.TrimSpace(s)[len(prefix):])
	}
	return strings.TrimSpace(s)
}

// quoted extracts the first quoted run in s, returning the text inside the
// quotes and everything after the closing quote.
func quoted(s string) (text, after string, ok bool) {
	start := strings.IndexAny(s, `"'`)
	if start < 0 {
		return "", "", false
	}
	q := s[start]
	end := strings.IndexByte(s[start+1:], q)
	if end < 0 {
		return "", "", false
	}
	return s[start+1 : start+1+end], strings.TrimSpace(s[start+2+end:]), true
}

// commaParts splits s on top-level commas and trims each part.
func commaParts(s string) []string {
	raw := splitTop(s, ',')
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// identifier reports the leading identifier of s and the remainder.
func identifier(s string) (name, after string, ok bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && isIdentChar(s[end]) {
		end++
	}
	if end == 0 {
		return "", "", false
	}
	return s[:end], strings.TrimSpace(s[end:]), true
}

// containsWord reports whether word appears as its own token in s.
func containsWord(s, word string) bool {
	for _, f := range strings.Fields(strings.ToLower(s)) {
		if f == strings.ToLower(word) {
			return true
		}
	}
	return false
}

// block splits "head { body }" at the first brace, requiring the statement
// to end with the matching close brace.
func block(stmt string) (head, body string, ok bool) {
	open := strings.IndexByte(stmt, '{')
	if open < 0 {
		return "", "", false
	}
	depth := 0
	for i := open; i < len(stmt); i++ {
		switch stmt[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				head = strings.TrimSpace(stmt[:open])
				body = strings.TrimSpace(stmt[open+1 : i])
				// Anything after the close brace belongs to a chained
				// clause (elif/else/catch/finally); callers split on it.
				return head, body, true
			}
		}
	}
	return "", "", false
}

// clauses splits a chained statement like
// "if a { x } elif b { y } else { z }" into (head, body) pairs.
func clauses(stmt string) []clause {
	var out []clause
	s := strings.TrimSpace(stmt)
	for s != "" {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			break
		}
		depth := 0
		closeAt := -1
		for i := open; i < len(s); i++ {
			switch s[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					closeAt = i
				}
			}
			if closeAt >= 0 {
				break
			}
		}
		if closeAt < 0 {
			break
		}
		out = append(out, clause{
			head: strings.TrimSpace(s[:open]),
			body: strings.TrimSpace(s[open+1 : closeAt]),
		})
		s = strings.TrimSpace(s[closeAt+1:])
	}
	return out
}

type clause struct {
	head string
	body string
}
