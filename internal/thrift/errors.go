package thrift

import "fmt"

// FailureKind classifies a parse failure. The distinction drives
// backtracking: a NoMatch means the rule never recognized its leading
// anchor and an alternative may still apply, while an Incomplete means
// the anchor matched and the remaining input cannot complete the rule,
// so trying alternatives would only produce a worse diagnostic.
type FailureKind uint8

const (
	FailureNoMatch FailureKind = iota
	FailureIncomplete
)

func (k FailureKind) String() string {
	switch k {
	case FailureIncomplete:
		return "incomplete"
	default:
		return "no match"
	}
}

// SyntaxError is the failure reported by the exported parse entry points.
// Offset is a byte offset into the input passed to the entry point.
type SyntaxError struct {
	Kind     FailureKind
	Offset   int
	Expected string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d: expected %s", e.Kind, e.Offset, e.Expected)
}

// syntaxError is the internal failure value threaded through the rule
// functions. It records how much input remained when the failure was
// raised; the entry point turns that into a byte offset once the original
// input length is known.
type syntaxError struct {
	kind     FailureKind
	remain   int
	expected string
}

func (e *syntaxError) Error() string {
	return fmt.Sprintf("%s: expected %s", e.kind, e.expected)
}

func noMatch(remainder string, expected string) *syntaxError {
	return &syntaxError{kind: FailureNoMatch, remain: len(remainder), expected: expected}
}

func incomplete(remainder string, expected string) *syntaxError {
	return &syntaxError{kind: FailureIncomplete, remain: len(remainder), expected: expected}
}

func isNoMatch(err error) bool {
	se, ok := err.(*syntaxError)
	return ok && se.kind == FailureNoMatch
}

func isIncomplete(err error) bool {
	se, ok := err.(*syntaxError)
	return ok && se.kind == FailureIncomplete
}

// require promotes a NoMatch to an Incomplete. Rules call it on the
// failures of sub-rules that are mandatory once the rule's anchor has
// been consumed.
func require(err *syntaxError) *syntaxError {
	if err != nil && err.kind == FailureNoMatch {
		return &syntaxError{kind: FailureIncomplete, remain: err.remain, expected: err.expected}
	}
	return err
}

// toSyntaxError converts an internal failure to the exported form,
// anchoring the offset to the input given to the entry point.
func toSyntaxError(input string, err *syntaxError) *SyntaxError {
	offset := len(input) - err.remain
	if offset < 0 {
		offset = 0
	}
	return &SyntaxError{Kind: err.kind, Offset: offset, Expected: err.expected}
}
