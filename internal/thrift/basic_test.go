package thrift

import (
	"testing"

	testifyrequire "github.com/stretchr/testify/require"
)

func TestParseIdentifier(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input     string
		expected  string
		remainder string
		fails     bool
	}{
		{input: "name rest", expected: "name", remainder: " rest"},
		{input: "shared.Base {", expected: "shared.Base", remainder: " {"},
		{input: "_private", expected: "_private"},
		{input: "x1_y2", expected: "x1_y2"},
		{input: "1abc", fails: true},
		{input: "", fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			ident, rem, err := parseIdentifier(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				testifyrequire.True(t, isNoMatch(err))
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, IdentifierView{Name: testCase.expected}, ident)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestKeywordBoundary(t *testing.T) {
	t.Parallel()

	rem, err := keyword("struct Foo", "struct")
	testifyrequire.Nil(t, err)
	testifyrequire.Equal(t, " Foo", rem)

	_, err = keyword("structZZZ", "struct")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isNoMatch(err))

	_, err = keyword("struct.x", "struct")
	testifyrequire.NotNil(t, err)
}

func TestParseComment(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		expected   string
		remainder  string
		fails      bool
		incomplete bool
	}{
		{name: "line", input: "// hi\nrest", expected: " hi", remainder: "\nrest"},
		{name: "hash", input: "# hi\nrest", expected: " hi", remainder: "\nrest"},
		{name: "line at eof", input: "// hi", expected: " hi", remainder: ""},
		{name: "block", input: "/* a */x", expected: " a ", remainder: "x"},
		{name: "block with newlines", input: "/* a\nb */", expected: " a\nb ", remainder: ""},
		{name: "unterminated block", input: "/* a", fails: true, incomplete: true},
		{name: "not a comment", input: "x // y", fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			comment, rem, err := parseComment(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				testifyrequire.Equal(t, testCase.incomplete, isIncomplete(err))
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, CommentView{Text: testCase.expected}, comment)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseSeparator(t *testing.T) {
	t.Parallel()

	rem, err := parseSeparator("  \t\n// note\n  x")
	testifyrequire.Nil(t, err)
	testifyrequire.Equal(t, "x", rem)

	_, err = parseSeparator("x")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isNoMatch(err))

	_, err = parseSeparator("")
	testifyrequire.NotNil(t, err)
}

func TestParseListSeparator(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		remainder string
		fails     bool
	}{
		{name: "comma", input: ",x", remainder: "x"},
		{name: "semicolon", input: ";x", remainder: "x"},
		{name: "padded comma", input: " , x", remainder: "x"},
		{name: "bare whitespace", input: " x", remainder: "x"},
		{name: "nothing", input: "x", fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rem, err := parseListSeparator(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseDocComment(t *testing.T) {
	t.Parallel()

	doc, rem, err := parseDocComment("// doc\n  struct")
	testifyrequire.Nil(t, err)
	testifyrequire.NotNil(t, doc)
	testifyrequire.Equal(t, " doc", doc.Text)
	testifyrequire.Equal(t, "struct", rem)

	// No line break after a block comment means no attachment.
	doc, rem, err = parseDocComment("/* doc */struct")
	testifyrequire.Nil(t, err)
	testifyrequire.Nil(t, doc)
	testifyrequire.Equal(t, "/* doc */struct", rem)

	doc, rem, err = parseDocComment("struct")
	testifyrequire.Nil(t, err)
	testifyrequire.Nil(t, doc)
	testifyrequire.Equal(t, "struct", rem)
}
