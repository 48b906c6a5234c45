package thrift

import (
	"testing"

	testifyrequire "github.com/stretchr/testify/require"
)

func TestParseIntConstant(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input     string
		expected  int64
		remainder string
		fails     bool
	}{
		{input: "123abc", expected: 123, remainder: "abc"},
		{input: "-45 ", expected: -45, remainder: " "},
		{input: "+7", expected: 7},
		{input: "abc", fails: true},
		{input: "-", fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			value, rem, err := parseIntConstant(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, IntConstant{Value: testCase.expected}, value)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseFloatConstant(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input     string
		expected  float64
		remainder string
		fails     bool
	}{
		{input: "1.5e3,", expected: 1500, remainder: ","},
		{input: ".5", expected: 0.5},
		{input: "-2.25", expected: -2.25},
		{input: "1e3", expected: 1000},
		{input: "1E-2", expected: 0.01},
		// A bare digit run is an integer.
		{input: "123", fails: true},
		{input: "1.", fails: true},
		{input: ".", fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			value, rem, err := parseFloatConstant(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, FloatConstant{Value: testCase.expected}, value)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseStringLiteral(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		input      string
		expected   string
		remainder  string
		incomplete bool
		fails      bool
	}{
		{name: "double quoted", input: `"hi" x`, expected: "hi", remainder: " x"},
		{name: "single quoted", input: `'a"b' x`, expected: `a"b`, remainder: " x"},
		{name: "empty", input: `""`, expected: ""},
		// Escape sequences pass through as raw bytes.
		{name: "raw backslash", input: `"a\nb"`, expected: `a\nb`},
		{name: "unterminated", input: `"abc`, fails: true, incomplete: true},
		{name: "not a literal", input: `abc`, fails: true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, rem, err := parseStringLiteral(testCase.input)
			if testCase.fails {
				testifyrequire.NotNil(t, err)
				testifyrequire.Equal(t, testCase.incomplete, isIncomplete(err))
				return
			}
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, LiteralView{Text: testCase.expected}, value)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseConstValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected ConstValueView
	}{
		{name: "int", input: "42", expected: IntConstant{Value: 42}},
		{name: "float", input: "4.2", expected: FloatConstant{Value: 4.2}},
		{name: "literal", input: `"s"`, expected: LiteralView{Text: "s"}},
		{name: "reference", input: "Lang.GO", expected: IdentifierView{Name: "Lang.GO"}},
		{
			name:  "list",
			input: `[1, 2.0, 'x']`,
			expected: ConstListView{Values: []ConstValueView{
				IntConstant{Value: 1},
				FloatConstant{Value: 2},
				LiteralView{Text: "x"},
			}},
		},
		{
			name:  "nested list",
			input: `[[1],[2]]`,
			expected: ConstListView{Values: []ConstValueView{
				ConstListView{Values: []ConstValueView{IntConstant{Value: 1}}},
				ConstListView{Values: []ConstValueView{IntConstant{Value: 2}}},
			}},
		},
		{
			name:  "list with trailing comma",
			input: `[1, 2,]`,
			expected: ConstListView{Values: []ConstValueView{
				IntConstant{Value: 1},
				IntConstant{Value: 2},
			}},
		},
		{
			name:  "map",
			input: `{'a': 1, 'b': 2}`,
			expected: ConstMapView{Entries: []ConstMapEntryView{
				{Key: LiteralView{Text: "a"}, Value: IntConstant{Value: 1}},
				{Key: LiteralView{Text: "b"}, Value: IntConstant{Value: 2}},
			}},
		},
		{
			name:  "map of lists",
			input: `{ "k" : [1] }`,
			expected: ConstMapView{Entries: []ConstMapEntryView{
				{
					Key:   LiteralView{Text: "k"},
					Value: ConstListView{Values: []ConstValueView{IntConstant{Value: 1}}},
				},
			}},
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, rem, err := parseConstValue(testCase.input)
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, testCase.expected, value)
			testifyrequire.Equal(t, "", rem)
		})
	}

	_, _, err := parseConstValue("[1, 2")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isIncomplete(err))
}

func TestConstValueToOwned(t *testing.T) {
	t.Parallel()

	view, rem, err := parseConstValue(`{'a': [1, 2.5], 'b': name}`)
	testifyrequire.Nil(t, err)
	testifyrequire.Equal(t, "", rem)
	testifyrequire.Equal(t, ConstMap{Entries: []ConstMapEntry{
		{Key: Literal{Text: "a"}, Value: ConstList{Values: []ConstValue{
			IntConstant{Value: 1},
			FloatConstant{Value: 2.5},
		}}},
		{Key: Literal{Text: "b"}, Value: Identifier{Name: "name"}},
	}}, OwnedConstValue(view))
}
