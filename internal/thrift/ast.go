package thrift

import "fmt"

// Every syntactic node exists in two forms. The view form is produced by
// the parse functions: its text-bearing fields are substrings of the
// source buffer and share its backing array, so they are only valid while
// the buffer is retained. The owned form is produced by ToOwned: its
// fields are detached copies with no tie to the buffer. The two forms are
// structurally identical and ToOwned never drops, reorders, or
// reinterprets a field.

// IdentifierView is a name as it appears in the source buffer.
type IdentifierView struct {
	Name string
}

// Identifier is the owned counterpart of IdentifierView.
type Identifier struct {
	Name string
}

// CommentView is the text of one comment, delimiters stripped.
type CommentView struct {
	Text string
}

type Comment struct {
	Text string
}

// IntConstant is a signed 64-bit integer literal. It carries no source
// text, so the same type serves as both the view and the owned form.
type IntConstant struct {
	Value int64
}

// FloatConstant is a floating point literal. Like IntConstant it serves
// as both forms.
type FloatConstant struct {
	Value float64
}

// LiteralView is a quoted string literal. The quotes are not part of the
// text and no escape sequences are interpreted: content between the
// delimiters is preserved verbatim.
type LiteralView struct {
	Text string
}

type Literal struct {
	Text string
}

// ConstValueView is the borrowing form of a constant value: an integer,
// float, string literal, reference to a named constant or enum member, or
// a recursive list or map of constant values.
// Conversion to the owned form goes through OwnedConstValue: the leaf
// types (IntConstant, LiteralView, IdentifierView, ...) keep their own
// concrete ToOwned methods.
type ConstValueView interface {
	constValueView()
}

// ConstValue is the owned form of a constant value.
type ConstValue interface {
	constValue()
}

// ConstListView is an ordered list of constant values.
type ConstListView struct {
	Values []ConstValueView
}

type ConstList struct {
	Values []ConstValue
}

// ConstMapView is a key-ordered map of constant values. Entries keep
// source order.
type ConstMapView struct {
	Entries []ConstMapEntryView
}

type ConstMapEntryView struct {
	Key   ConstValueView
	Value ConstValueView
}

type ConstMap struct {
	Entries []ConstMapEntry
}

type ConstMapEntry struct {
	Key   ConstValue
	Value ConstValue
}

// BaseType is one of the fixed scalar type keywords. It carries no source
// text, so it serves as both the view and the owned form of a field type.
type BaseType uint8

const (
	BaseTypeBool BaseType = iota
	BaseTypeByte
	BaseTypeI8
	BaseTypeI16
	BaseTypeI32
	BaseTypeI64
	BaseTypeDouble
	BaseTypeString
	BaseTypeBinary
)

func (t BaseType) String() string {
	switch t {
	case BaseTypeBool:
		return "bool"
	case BaseTypeByte:
		return "byte"
	case BaseTypeI8:
		return "i8"
	case BaseTypeI16:
		return "i16"
	case BaseTypeI32:
		return "i32"
	case BaseTypeI64:
		return "i64"
	case BaseTypeDouble:
		return "double"
	case BaseTypeString:
		return "string"
	case BaseTypeBinary:
		return "binary"
	default:
		return fmt.Sprintf("basetype-%d", uint8(t))
	}
}

// FieldTypeView is the borrowing form of a type expression: a base type,
// a named reference to a typedef/struct/enum/union/exception, or a
// recursive container type.
type FieldTypeView interface {
	fieldTypeView()
	// ToOwned returns the owned counterpart of the type expression.
	ToOwned() FieldType
}

// FieldType is the owned form of a type expression.
type FieldType interface {
	fieldType()
}

// NamedTypeView is a reference to a type defined elsewhere. Resolution is
// a later, cross-file concern.
type NamedTypeView struct {
	Name IdentifierView
}

type NamedType struct {
	Name Identifier
}

type ListTypeView struct {
	Element FieldTypeView
}

type ListType struct {
	Element FieldType
}

type SetTypeView struct {
	Element FieldTypeView
}

type SetType struct {
	Element FieldType
}

type MapTypeView struct {
	Key   FieldTypeView
	Value FieldTypeView
}

type MapType struct {
	Key   FieldType
	Value FieldType
}

// Requiredness is the tri-state qualifier on a field. Unspecified is
// distinct from both keywords and must round-trip as such: downstream
// code generation policy differs by language target.
type Requiredness uint8

const (
	RequirednessUnspecified Requiredness = iota
	RequirednessRequired
	RequirednessOptional
)

func (r Requiredness) String() string {
	switch r {
	case RequirednessRequired:
		return "required"
	case RequirednessOptional:
		return "optional"
	default:
		return "unspecified"
	}
}

// FieldView is one member of a struct, union, exception, parameter list,
// or throws list.
type FieldView struct {
	ID           *IntConstant
	Requiredness Requiredness
	Type         FieldTypeView
	Name         IdentifierView
	Default      ConstValueView // nil when the field has no default
}

type Field struct {
	ID           *IntConstant
	Requiredness Requiredness
	Type         FieldType
	Name         Identifier
	Default      ConstValue
}

// EnumValueView is one enum member. When Value is absent the effective
// numeric value is the previous member's effective value plus one, or
// zero for the first member; this core records only what the source says
// and leaves the numbering to the assembling layer.
type EnumValueView struct {
	Name  IdentifierView
	Value *IntConstant
}

type EnumValue struct {
	Name  Identifier
	Value *IntConstant
}

// FunctionView is one service method.
type FunctionView struct {
	Oneway     bool
	Returns    FieldTypeView // nil means void
	Name       IdentifierView
	Parameters []FieldView
	Exceptions []FieldView // nil when there is no throws clause
}

type Function struct {
	Oneway     bool
	Returns    FieldType
	Name       Identifier
	Parameters []Field
	Exceptions []Field
}

// DefinitionView is the union of the seven top-level definitions in their
// borrowing form.
type DefinitionView interface {
	definitionView()
}

// Definition is the union of the seven top-level definitions in their
// owned form.
type Definition interface {
	definition()
}

type ConstView struct {
	Doc   *CommentView
	Name  IdentifierView
	Type  FieldTypeView
	Value ConstValueView
}

type Const struct {
	Doc   *Comment
	Name  Identifier
	Type  FieldType
	Value ConstValue
}

// TypedefView aliases a base or container type. The underlying type may
// not itself be a bare named reference at the grammar level.
type TypedefView struct {
	Doc   *CommentView
	Old   FieldTypeView
	Alias IdentifierView
}

type Typedef struct {
	Doc   *Comment
	Old   FieldType
	Alias Identifier
}

type EnumView struct {
	Doc      *CommentView
	Name     IdentifierView
	Children []EnumValueView
}

type Enum struct {
	Doc      *Comment
	Name     Identifier
	Children []EnumValue
}

type StructView struct {
	Doc    *CommentView
	Name   IdentifierView
	Fields []FieldView
}

type Struct struct {
	Doc    *Comment
	Name   Identifier
	Fields []Field
}

type UnionView struct {
	Doc    *CommentView
	Name   IdentifierView
	Fields []FieldView
}

type Union struct {
	Doc    *Comment
	Name   Identifier
	Fields []Field
}

type ExceptionView struct {
	Doc    *CommentView
	Name   IdentifierView
	Fields []FieldView
}

type Exception struct {
	Doc    *Comment
	Name   Identifier
	Fields []Field
}

type ServiceView struct {
	Doc       *CommentView
	Name      IdentifierView
	Extension *IdentifierView // base service named by an extends clause
	Functions []FunctionView
}

type Service struct {
	Doc       *Comment
	Name      Identifier
	Extension *Identifier
	Functions []Function
}

// IncludeView is an include header. Resolving the included file is the
// caller's concern.
type IncludeView struct {
	Path LiteralView
}

type Include struct {
	Path Literal
}

// NamespaceView is a namespace header. Scope is a language scope
// identifier or "*"; Name may be dotted (com.example.x).
type NamespaceView struct {
	Scope IdentifierView
	Name  IdentifierView
}

type Namespace struct {
	Scope Identifier
	Name  Identifier
}

// DocumentView is one whole source buffer: headers followed by
// definitions, all in source order.
type DocumentView struct {
	Includes    []IncludeView
	Namespaces  []NamespaceView
	Definitions []DefinitionView
}

type Document struct {
	Includes    []Include
	Namespaces  []Namespace
	Definitions []Definition
}

func (IntConstant) constValueView()    {}
func (FloatConstant) constValueView()  {}
func (LiteralView) constValueView()    {}
func (IdentifierView) constValueView() {}
func (ConstListView) constValueView()  {}
func (ConstMapView) constValueView()   {}

func (IntConstant) constValue()   {}
func (FloatConstant) constValue() {}
func (Literal) constValue()       {}
func (Identifier) constValue()    {}
func (ConstList) constValue()     {}
func (ConstMap) constValue()      {}

func (BaseType) fieldTypeView()      {}
func (NamedTypeView) fieldTypeView() {}
func (ListTypeView) fieldTypeView()  {}
func (SetTypeView) fieldTypeView()   {}
func (MapTypeView) fieldTypeView()   {}

func (BaseType) fieldType()  {}
func (NamedType) fieldType() {}
func (ListType) fieldType()  {}
func (SetType) fieldType()   {}
func (MapType) fieldType()   {}

func (ConstView) definitionView()     {}
func (TypedefView) definitionView()   {}
func (EnumView) definitionView()      {}
func (StructView) definitionView()    {}
func (UnionView) definitionView()     {}
func (ExceptionView) definitionView() {}
func (ServiceView) definitionView()   {}

func (Const) definition()     {}
func (Typedef) definition()   {}
func (Enum) definition()      {}
func (Struct) definition()    {}
func (Union) definition()     {}
func (Exception) definition() {}
func (Service) definition()   {}
