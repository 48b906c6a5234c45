// Package thrift parses Thrift IDL source text into an AST.
//
// The exported Parse functions take the source text, try to recognize
// one construct at the very start of it, and return the node together
// with the unconsumed remainder. On failure they return a *SyntaxError
// whose offset is a byte position into the given input. The returned
// view nodes borrow from the input string; call ToOwned (or
// OwnedDefinition / OwnedConstValue for the interface unions) to detach
// them from the buffer.
package thrift

// ParseDocument parses a whole source buffer: optional include and
// namespace headers followed by definitions. The remainder is empty on
// success; anything that is not a recognizable construct fails the
// whole parse.
func ParseDocument(input string) (DocumentView, string, error) {
	doc, rem, err := parseDocument(input)
	if err != nil {
		return DocumentView{}, input, toSyntaxError(input, err)
	}
	return doc, rem, nil
}

// ParseDefinition parses one top-level definition of any kind.
func ParseDefinition(input string) (DefinitionView, string, error) {
	def, rem, err := parseDefinition(input)
	if err != nil {
		return nil, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseConst(input string) (ConstView, string, error) {
	def, rem, err := parseConst(input)
	if err != nil {
		return ConstView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseTypedef(input string) (TypedefView, string, error) {
	def, rem, err := parseTypedef(input)
	if err != nil {
		return TypedefView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseEnum(input string) (EnumView, string, error) {
	def, rem, err := parseEnum(input)
	if err != nil {
		return EnumView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseStruct(input string) (StructView, string, error) {
	def, rem, err := parseStruct(input)
	if err != nil {
		return StructView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseUnion(input string) (UnionView, string, error) {
	def, rem, err := parseUnion(input)
	if err != nil {
		return UnionView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseException(input string) (ExceptionView, string, error) {
	def, rem, err := parseException(input)
	if err != nil {
		return ExceptionView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}

func ParseService(input string) (ServiceView, string, error) {
	def, rem, err := parseService(input)
	if err != nil {
		return ServiceView{}, input, toSyntaxError(input, err)
	}
	return def, rem, nil
}
