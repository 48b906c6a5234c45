package thrift

import (
	"testing"

	testifyrequire "github.com/stretchr/testify/require"
)

func intConst(v int64) *IntConstant {
	return &IntConstant{Value: v}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		input     string
		expected  FieldView
		remainder string
	}{
		{
			name:  "full form",
			input: "1: required string name",
			expected: FieldView{
				ID:           intConst(1),
				Requiredness: RequirednessRequired,
				Type:         BaseTypeString,
				Name:         IdentifierView{Name: "name"},
			},
		},
		{
			name:  "optional with default and terminator",
			input: "2: optional i64 id = 42;",
			expected: FieldView{
				ID:           intConst(2),
				Requiredness: RequirednessOptional,
				Type:         BaseTypeI64,
				Name:         IdentifierView{Name: "id"},
				Default:      IntConstant{Value: 42},
			},
		},
		{
			name:  "bare type and name",
			input: "i32 x",
			expected: FieldView{
				Type: BaseTypeI32,
				Name: IdentifierView{Name: "x"},
			},
		},
		{
			name:  "id without qualifier",
			input: "3 : list<string> tags,",
			expected: FieldView{
				ID:   intConst(3),
				Type: ListTypeView{Element: BaseTypeString},
				Name: IdentifierView{Name: "tags"},
			},
		},
		{
			name:  "default list",
			input: `4: list<i32> xs = [1, 2]`,
			expected: FieldView{
				ID:      intConst(4),
				Type:    ListTypeView{Element: BaseTypeI32},
				Name:    IdentifierView{Name: "xs"},
				Default: ConstListView{Values: []ConstValueView{IntConstant{Value: 1}, IntConstant{Value: 2}}},
			},
		},
		{
			// A separator before the terminator belongs to the field
			// only when the terminator is present.
			name:      "no terminator leaves trailing space",
			input:     "i32 x }",
			expected:  FieldView{Type: BaseTypeI32, Name: IdentifierView{Name: "x"}},
			remainder: " }",
		},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			field, rem, err := parseField(testCase.input)
			testifyrequire.Nil(t, err)
			testifyrequire.Equal(t, testCase.expected, field)
			testifyrequire.Equal(t, testCase.remainder, rem)
		})
	}
}

func TestParseFieldFailures(t *testing.T) {
	t.Parallel()

	// Nothing that starts a field.
	_, _, err := parseField("}")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isNoMatch(err))

	// The id colon commits the rule.
	_, _, err = parseField("3: }")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isIncomplete(err))

	// A type without a name is incomplete once the qualifier matched.
	_, _, err = parseField("required i32")
	testifyrequire.NotNil(t, err)
	testifyrequire.True(t, isIncomplete(err))
}

func TestParseFieldToOwned(t *testing.T) {
	t.Parallel()

	view, rem, err := parseField(`1: optional map<string,i32> counts = {"a": 1}`)
	testifyrequire.Nil(t, err)
	testifyrequire.Equal(t, "", rem)
	testifyrequire.Equal(t, Field{
		ID:           intConst(1),
		Requiredness: RequirednessOptional,
		Type:         MapType{Key: BaseTypeString, Value: BaseTypeI32},
		Name:         Identifier{Name: "counts"},
		Default: ConstMap{Entries: []ConstMapEntry{
			{Key: Literal{Text: "a"}, Value: IntConstant{Value: 1}},
		}},
	}, view.ToOwned())
}
