package thrift

// Top-level definition rules. Each rule backtracks as a whole until its
// keyword has matched: a failing keyword rewinds past the doc comment
// too, so the next alternative sees the full input. Once the keyword has
// matched the rule is committed and further failures are incomplete.

// parseConst recognizes
//
//	'const' FieldType Identifier '=' ConstValue (","|";")?
func parseConst(input string) (ConstView, string, *syntaxError) {
	doc, rem, err := parseDocComment(input)
	if err != nil {
		return ConstView{}, "", err
	}
	rem, err = keyword(rem, "const")
	if err != nil {
		return ConstView{}, "", noMatch(input, "const")
	}
	def := ConstView{Doc: doc}
	rem, err = parseSeparator(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	def.Type, rem, err = parseFieldType(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	def.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	rem, err = expectByte(rem, '=', "=")
	if err != nil {
		return ConstView{}, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	def.Value, rem, err = parseConstValue(rem)
	if err != nil {
		return ConstView{}, "", require(err)
	}
	if after, serr := skipSeparator(rem); serr == nil {
		if len(after) > 0 && (after[0] == ',' || after[0] == ';') {
			rem = after[1:]
		}
	} else {
		return ConstView{}, "", serr
	}
	return def, rem, nil
}

// parseTypedef recognizes
//
//	'typedef' DefinitionType Identifier
//
// where the underlying type must be a base or container type.
func parseTypedef(input string) (TypedefView, string, *syntaxError) {
	doc, rem, err := parseDocComment(input)
	if err != nil {
		return TypedefView{}, "", err
	}
	rem, err = keyword(rem, "typedef")
	if err != nil {
		return TypedefView{}, "", noMatch(input, "typedef")
	}
	def := TypedefView{Doc: doc}
	rem, err = parseSeparator(rem)
	if err != nil {
		return TypedefView{}, "", require(err)
	}
	def.Old, rem, err = parseDefinitionType(rem)
	if err != nil {
		return TypedefView{}, "", require(err)
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return TypedefView{}, "", require(err)
	}
	def.Alias, rem, err = parseIdentifier(rem)
	if err != nil {
		return TypedefView{}, "", require(err)
	}
	return def, rem, nil
}

// parseEnum recognizes
//
//	'enum' Identifier '{' (Identifier ('=' IntConstant)? (","|";")?)* '}'
//
// Members may be divided by commas, semicolons, or bare whitespace, and a
// trailing divider before the closing brace is allowed.
func parseEnum(input string) (EnumView, string, *syntaxError) {
	doc, rem, err := parseDocComment(input)
	if err != nil {
		return EnumView{}, "", err
	}
	rem, err = keyword(rem, "enum")
	if err != nil {
		return EnumView{}, "", noMatch(input, "enum")
	}
	def := EnumView{Doc: doc}
	rem, err = parseSeparator(rem)
	if err != nil {
		return EnumView{}, "", require(err)
	}
	def.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		return EnumView{}, "", require(err)
	}
	rem, err = openBrace(rem)
	if err != nil {
		return EnumView{}, "", err
	}
	def.Children, rem, err = separatedList0(rem, parseListSeparator, parseEnumValue)
	if err != nil {
		return EnumView{}, "", require(err)
	}
	if after, serr := parseListSeparator(rem); serr == nil {
		rem = after
	} else if isIncomplete(serr) {
		return EnumView{}, "", serr
	}
	rem, err = closeBrace(rem)
	if err != nil {
		return EnumView{}, "", err
	}
	return def, rem, nil
}

func parseEnumValue(input string) (EnumValueView, string, *syntaxError) {
	name, rem, err := parseIdentifier(input)
	if err != nil {
		return EnumValueView{}, "", err
	}
	value := EnumValueView{Name: name}
	if after, serr := skipSeparator(rem); serr == nil {
		if after, eqErr := expectByte(after, '=', "="); eqErr == nil {
			after, serr = skipSeparator(after)
			if serr != nil {
				return EnumValueView{}, "", require(serr)
			}
			num, after, nerr := parseIntConstant(after)
			if nerr != nil {
				return EnumValueView{}, "", require(nerr)
			}
			value.Value = &num
			rem = after
		}
	} else {
		return EnumValueView{}, "", serr
	}
	return value, rem, nil
}

func parseStruct(input string) (StructView, string, *syntaxError) {
	doc, name, fields, rem, err := parseStructLike(input, "struct")
	if err != nil {
		return StructView{}, "", err
	}
	return StructView{Doc: doc, Name: name, Fields: fields}, rem, nil
}

func parseUnion(input string) (UnionView, string, *syntaxError) {
	doc, name, fields, rem, err := parseStructLike(input, "union")
	if err != nil {
		return UnionView{}, "", err
	}
	return UnionView{Doc: doc, Name: name, Fields: fields}, rem, nil
}

func parseException(input string) (ExceptionView, string, *syntaxError) {
	doc, name, fields, rem, err := parseStructLike(input, "exception")
	if err != nil {
		return ExceptionView{}, "", err
	}
	return ExceptionView{Doc: doc, Name: name, Fields: fields}, rem, nil
}

// parseStructLike factors the shared shape of struct, union, and
// exception:
//
//	kw Identifier '{' Field* '}'
//
// Fields are divided by whitespace or comments; each field carries its
// own optional , or ; terminator.
func parseStructLike(input string, kw string) (*CommentView, IdentifierView, []FieldView, string, *syntaxError) {
	doc, rem, err := parseDocComment(input)
	if err != nil {
		return nil, IdentifierView{}, nil, "", err
	}
	rem, err = keyword(rem, kw)
	if err != nil {
		return nil, IdentifierView{}, nil, "", noMatch(input, kw)
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return nil, IdentifierView{}, nil, "", require(err)
	}
	name, rem, err := parseIdentifier(rem)
	if err != nil {
		return nil, IdentifierView{}, nil, "", require(err)
	}
	rem, err = openBrace(rem)
	if err != nil {
		return nil, IdentifierView{}, nil, "", err
	}
	fields, rem, err := separatedList0(rem, parseSeparator, parseField)
	if err != nil {
		return nil, IdentifierView{}, nil, "", require(err)
	}
	rem, err = closeBrace(rem)
	if err != nil {
		return nil, IdentifierView{}, nil, "", err
	}
	return doc, name, fields, rem, nil
}

// parseService recognizes
//
//	'service' Identifier ('extends' Identifier)? '{' Function* '}'
func parseService(input string) (ServiceView, string, *syntaxError) {
	doc, rem, err := parseDocComment(input)
	if err != nil {
		return ServiceView{}, "", err
	}
	rem, err = keyword(rem, "service")
	if err != nil {
		return ServiceView{}, "", noMatch(input, "service")
	}
	def := ServiceView{Doc: doc}
	rem, err = parseSeparator(rem)
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	def.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	if after, kerr := keyword(rem, "extends"); kerr == nil {
		after, err = parseSeparator(after)
		if err != nil {
			return ServiceView{}, "", require(err)
		}
		ext, after, ierr := parseIdentifier(after)
		if ierr != nil {
			return ServiceView{}, "", require(ierr)
		}
		def.Extension = &ext
		rem, err = skipSeparator(after)
		if err != nil {
			return ServiceView{}, "", require(err)
		}
	}
	rem, err = expectByte(rem, '{', "{")
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	def.Functions, rem, err = separatedList0(rem, parseSeparator, parseFunction)
	if err != nil {
		return ServiceView{}, "", require(err)
	}
	rem, err = closeBrace(rem)
	if err != nil {
		return ServiceView{}, "", err
	}
	return def, rem, nil
}

// openBrace consumes optional separators, a {, and optional separators.
// The rule is already committed when a body opens, so a missing brace is
// an incomplete failure.
func openBrace(input string) (string, *syntaxError) {
	rem, err := skipSeparator(input)
	if err != nil {
		return "", require(err)
	}
	rem, err = expectByte(rem, '{', "{")
	if err != nil {
		return "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return "", require(err)
	}
	return rem, nil
}

func closeBrace(input string) (string, *syntaxError) {
	rem, err := skipSeparator(input)
	if err != nil {
		return "", require(err)
	}
	rem, err = expectByte(rem, '}', "}")
	if err != nil {
		return "", require(err)
	}
	return rem, nil
}

// parseDefinition tries the seven definition rules in turn. A no-match
// moves on to the next alternative; an incomplete failure means a keyword
// already matched and is reported as is.
func parseDefinition(input string) (DefinitionView, string, *syntaxError) {
	if def, rem, err := parseConst(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseTypedef(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseEnum(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseStruct(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseUnion(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseException(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	if def, rem, err := parseService(input); err == nil || isIncomplete(err) {
		return def, rem, err
	}
	return nil, "", noMatch(input, "definition")
}
