package thrift

import "strings"

// Lexical primitives. There is no token stream: every rule takes the
// remaining input and returns the remainder after what it consumed. A
// failing rule consumes nothing.

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || b == '.' || (b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// parseIdentifier recognizes a (possibly dotted) name: a letter or
// underscore followed by letters, digits, dots, and underscores.
func parseIdentifier(input string) (IdentifierView, string, *syntaxError) {
	if len(input) == 0 || !isIdentStart(input[0]) {
		return IdentifierView{}, "", noMatch(input, "identifier")
	}
	end := 1
	for end < len(input) && isIdentPart(input[end]) {
		end++
	}
	return IdentifierView{Name: input[:end]}, input[end:], nil
}

// parseSpace consumes one or more horizontal whitespace bytes.
func parseSpace(input string) (string, *syntaxError) {
	end := 0
	for end < len(input) && (input[end] == ' ' || input[end] == '\t') {
		end++
	}
	if end == 0 {
		return "", noMatch(input, "whitespace")
	}
	return input[end:], nil
}

// parseLinefeed consumes one line ending: \r\n, \n, or \r.
func parseLinefeed(input string) (string, *syntaxError) {
	switch {
	case strings.HasPrefix(input, "\r\n"):
		return input[2:], nil
	case len(input) > 0 && (input[0] == '\n' || input[0] == '\r'):
		return input[1:], nil
	default:
		return "", noMatch(input, "line ending")
	}
}

// parseComment recognizes a // or # line comment, or a /* */ block
// comment. The text is returned with the delimiters stripped. Line
// comments end at (and do not consume) the line ending. Block comments do
// not nest; an unterminated one is an incomplete failure because no later
// rule could recover from it.
func parseComment(input string) (CommentView, string, *syntaxError) {
	switch {
	case strings.HasPrefix(input, "//"):
		return lineComment(input[2:])
	case strings.HasPrefix(input, "#"):
		return lineComment(input[1:])
	case strings.HasPrefix(input, "/*"):
		body := input[2:]
		end := strings.Index(body, "*/")
		if end < 0 {
			return CommentView{}, "", incomplete(input, "closing */")
		}
		return CommentView{Text: body[:end]}, body[end+2:], nil
	default:
		return CommentView{}, "", noMatch(input, "comment")
	}
}

func lineComment(body string) (CommentView, string, *syntaxError) {
	end := strings.IndexAny(body, "\r\n")
	if end < 0 {
		end = len(body)
	}
	return CommentView{Text: body[:end]}, body[end:], nil
}

// parseSeparator consumes a non-empty run of whitespace and comments.
func parseSeparator(input string) (string, *syntaxError) {
	rem := input
	for {
		start := rem
		for len(rem) > 0 && (rem[0] == ' ' || rem[0] == '\t' || rem[0] == '\n' || rem[0] == '\r') {
			rem = rem[1:]
		}
		if _, after, err := parseComment(rem); err == nil {
			rem = after
		} else if isIncomplete(err) {
			return "", err
		}
		if len(rem) == len(start) {
			break
		}
	}
	if len(rem) == len(input) {
		return "", noMatch(input, "separator")
	}
	return rem, nil
}

// skipSeparator consumes a separator run if one is present.
func skipSeparator(input string) (string, *syntaxError) {
	rem, err := parseSeparator(input)
	if err != nil {
		if isIncomplete(err) {
			return "", err
		}
		return input, nil
	}
	return rem, nil
}

// parseListSeparator divides elements of a comma-tolerant list: either a
// , or ; with optional surrounding separators, or a bare separator run.
func parseListSeparator(input string) (string, *syntaxError) {
	rem, err := skipSeparator(input)
	if err != nil {
		return "", err
	}
	if len(rem) > 0 && (rem[0] == ',' || rem[0] == ';') {
		after, err := skipSeparator(rem[1:])
		if err != nil {
			return "", err
		}
		return after, nil
	}
	if len(rem) < len(input) {
		return rem, nil
	}
	return "", noMatch(input, "list separator")
}

// keyword matches a reserved word. The byte after the word must not
// continue an identifier, so "structZZZ" does not match "struct".
func keyword(input string, kw string) (string, *syntaxError) {
	if !strings.HasPrefix(input, kw) {
		return "", noMatch(input, kw)
	}
	rem := input[len(kw):]
	if len(rem) > 0 && isIdentPart(rem[0]) {
		return "", noMatch(input, kw)
	}
	return rem, nil
}

func expectByte(input string, b byte, expected string) (string, *syntaxError) {
	if len(input) == 0 || input[0] != b {
		return "", noMatch(input, expected)
	}
	return input[1:], nil
}

// parseDocComment recognizes the documentation prefix of a definition: a
// comment immediately followed by one line ending and optional horizontal
// space. When the shape does not match, no input is consumed and the
// definition simply has no documentation.
func parseDocComment(input string) (*CommentView, string, *syntaxError) {
	comment, rem, err := parseComment(input)
	if err != nil {
		if isIncomplete(err) {
			return nil, "", err
		}
		return nil, input, nil
	}
	rem, err = parseLinefeed(rem)
	if err != nil {
		return nil, input, nil
	}
	if after, err := parseSpace(rem); err == nil {
		rem = after
	}
	return &comment, rem, nil
}

// separatedList0 parses zero or more elements divided by sep. A trailing
// separator is left unconsumed. A no-match from the element parser ends
// the list; an incomplete failure is propagated.
func separatedList0[T any](
	input string,
	sep func(string) (string, *syntaxError),
	elem func(string) (T, string, *syntaxError),
) ([]T, string, *syntaxError) {
	first, rem, err := elem(input)
	if err != nil {
		if isIncomplete(err) {
			return nil, "", err
		}
		return nil, input, nil
	}
	out := []T{first}
	for {
		afterSep, err := sep(rem)
		if err != nil {
			if isIncomplete(err) {
				return nil, "", err
			}
			return out, rem, nil
		}
		next, afterElem, err := elem(afterSep)
		if err != nil {
			if isIncomplete(err) {
				return nil, "", err
			}
			return out, rem, nil
		}
		out = append(out, next)
		rem = afterElem
	}
}
