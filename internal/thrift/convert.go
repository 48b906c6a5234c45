package thrift

import "strings"

// Conversions from the view forms to the owned forms. Every method is
// total and produces a new node without mutating the receiver. Text
// fields are detached with strings.Clone so the owned node does not pin
// the source buffer.

func (v IdentifierView) ToOwned() Identifier {
	return Identifier{Name: strings.Clone(v.Name)}
}

func (v CommentView) ToOwned() Comment {
	return Comment{Text: strings.Clone(v.Text)}
}

func (v LiteralView) ToOwned() Literal {
	return Literal{Text: strings.Clone(v.Text)}
}

func (v ConstListView) ToOwned() ConstList {
	values := make([]ConstValue, 0, len(v.Values))
	for _, value := range v.Values {
		values = append(values, OwnedConstValue(value))
	}
	return ConstList{Values: values}
}

func (v ConstMapView) ToOwned() ConstMap {
	entries := make([]ConstMapEntry, 0, len(v.Entries))
	for _, entry := range v.Entries {
		entries = append(entries, ConstMapEntry{
			Key:   OwnedConstValue(entry.Key),
			Value: OwnedConstValue(entry.Value),
		})
	}
	return ConstMap{Entries: entries}
}

// OwnedConstValue converts any constant value view to its owned
// counterpart. IntConstant and FloatConstant carry no source text and
// pass through unchanged.
func OwnedConstValue(v ConstValueView) ConstValue {
	switch c := v.(type) {
	case IntConstant:
		return c
	case FloatConstant:
		return c
	case LiteralView:
		return c.ToOwned()
	case IdentifierView:
		return c.ToOwned()
	case ConstListView:
		return c.ToOwned()
	case ConstMapView:
		return c.ToOwned()
	default:
		return nil
	}
}

func (t BaseType) ToOwned() FieldType {
	return t
}

func (v NamedTypeView) ToOwned() FieldType {
	return NamedType{Name: v.Name.ToOwned()}
}

func (v ListTypeView) ToOwned() FieldType {
	return ListType{Element: v.Element.ToOwned()}
}

func (v SetTypeView) ToOwned() FieldType {
	return SetType{Element: v.Element.ToOwned()}
}

func (v MapTypeView) ToOwned() FieldType {
	return MapType{Key: v.Key.ToOwned(), Value: v.Value.ToOwned()}
}

func (v FieldView) ToOwned() Field {
	f := Field{
		Requiredness: v.Requiredness,
		Type:         v.Type.ToOwned(),
		Name:         v.Name.ToOwned(),
	}
	if v.ID != nil {
		id := *v.ID
		f.ID = &id
	}
	if v.Default != nil {
		f.Default = OwnedConstValue(v.Default)
	}
	return f
}

func (v EnumValueView) ToOwned() EnumValue {
	ev := EnumValue{Name: v.Name.ToOwned()}
	if v.Value != nil {
		value := *v.Value
		ev.Value = &value
	}
	return ev
}

func (v FunctionView) ToOwned() Function {
	f := Function{
		Oneway:     v.Oneway,
		Name:       v.Name.ToOwned(),
		Parameters: ownedFields(v.Parameters),
	}
	if v.Returns != nil {
		f.Returns = v.Returns.ToOwned()
	}
	if v.Exceptions != nil {
		f.Exceptions = ownedFields(v.Exceptions)
	}
	return f
}

func (v ConstView) ToOwned() Const {
	return Const{
		Doc:   ownedDoc(v.Doc),
		Name:  v.Name.ToOwned(),
		Type:  v.Type.ToOwned(),
		Value: OwnedConstValue(v.Value),
	}
}

func (v TypedefView) ToOwned() Typedef {
	return Typedef{
		Doc:   ownedDoc(v.Doc),
		Old:   v.Old.ToOwned(),
		Alias: v.Alias.ToOwned(),
	}
}

func (v EnumView) ToOwned() Enum {
	e := Enum{
		Doc:  ownedDoc(v.Doc),
		Name: v.Name.ToOwned(),
	}
	if v.Children != nil {
		e.Children = make([]EnumValue, 0, len(v.Children))
		for _, child := range v.Children {
			e.Children = append(e.Children, child.ToOwned())
		}
	}
	return e
}

func (v StructView) ToOwned() Struct {
	return Struct{
		Doc:    ownedDoc(v.Doc),
		Name:   v.Name.ToOwned(),
		Fields: ownedFields(v.Fields),
	}
}

func (v UnionView) ToOwned() Union {
	return Union{
		Doc:    ownedDoc(v.Doc),
		Name:   v.Name.ToOwned(),
		Fields: ownedFields(v.Fields),
	}
}

func (v ExceptionView) ToOwned() Exception {
	return Exception{
		Doc:    ownedDoc(v.Doc),
		Name:   v.Name.ToOwned(),
		Fields: ownedFields(v.Fields),
	}
}

func (v ServiceView) ToOwned() Service {
	s := Service{
		Doc:  ownedDoc(v.Doc),
		Name: v.Name.ToOwned(),
	}
	if v.Extension != nil {
		ext := v.Extension.ToOwned()
		s.Extension = &ext
	}
	if v.Functions != nil {
		s.Functions = make([]Function, 0, len(v.Functions))
		for _, fn := range v.Functions {
			s.Functions = append(s.Functions, fn.ToOwned())
		}
	}
	return s
}

func (v IncludeView) ToOwned() Include {
	return Include{Path: v.Path.ToOwned()}
}

func (v NamespaceView) ToOwned() Namespace {
	return Namespace{Scope: v.Scope.ToOwned(), Name: v.Name.ToOwned()}
}

func (v DocumentView) ToOwned() Document {
	d := Document{}
	if v.Includes != nil {
		d.Includes = make([]Include, 0, len(v.Includes))
		for _, inc := range v.Includes {
			d.Includes = append(d.Includes, inc.ToOwned())
		}
	}
	if v.Namespaces != nil {
		d.Namespaces = make([]Namespace, 0, len(v.Namespaces))
		for _, ns := range v.Namespaces {
			d.Namespaces = append(d.Namespaces, ns.ToOwned())
		}
	}
	if v.Definitions != nil {
		d.Definitions = make([]Definition, 0, len(v.Definitions))
		for _, def := range v.Definitions {
			d.Definitions = append(d.Definitions, OwnedDefinition(def))
		}
	}
	return d
}

// OwnedDefinition converts any definition view to its owned counterpart.
func OwnedDefinition(v DefinitionView) Definition {
	switch d := v.(type) {
	case ConstView:
		return d.ToOwned()
	case TypedefView:
		return d.ToOwned()
	case EnumView:
		return d.ToOwned()
	case StructView:
		return d.ToOwned()
	case UnionView:
		return d.ToOwned()
	case ExceptionView:
		return d.ToOwned()
	case ServiceView:
		return d.ToOwned()
	default:
		return nil
	}
}

func ownedDoc(v *CommentView) *Comment {
	if v == nil {
		return nil
	}
	doc := v.ToOwned()
	return &doc
}

func ownedFields(vs []FieldView) []Field {
	if vs == nil {
		return nil
	}
	fields := make([]Field, 0, len(vs))
	for _, v := range vs {
		fields = append(fields, v.ToOwned())
	}
	return fields
}
