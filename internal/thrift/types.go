package thrift

// Type expression rules.

var baseTypeNames = []struct {
	name string
	kind BaseType
}{
	{"bool", BaseTypeBool},
	{"byte", BaseTypeByte},
	{"i8", BaseTypeI8},
	{"i16", BaseTypeI16},
	{"i32", BaseTypeI32},
	{"i64", BaseTypeI64},
	{"double", BaseTypeDouble},
	{"string", BaseTypeString},
	{"binary", BaseTypeBinary},
}

// parseBaseType matches one of the scalar type keywords. The keyword
// boundary check keeps "stringType" from matching "string".
func parseBaseType(input string) (BaseType, string, *syntaxError) {
	for _, bt := range baseTypeNames {
		if rem, err := keyword(input, bt.name); err == nil {
			return bt.kind, rem, nil
		}
	}
	return 0, "", noMatch(input, "base type")
}

// parseContainerType matches list<T>, set<T>, or map<K,V>. The rule only
// commits once the opening angle bracket is seen: "list" without a
// following "<" is left for the named-type rule, since it is a legal
// identifier.
func parseContainerType(input string) (FieldTypeView, string, *syntaxError) {
	if v, rem, err := parseListType(input); err == nil || isIncomplete(err) {
		return v, rem, err
	}
	if v, rem, err := parseSetType(input); err == nil || isIncomplete(err) {
		return v, rem, err
	}
	if v, rem, err := parseMapType(input); err == nil || isIncomplete(err) {
		return v, rem, err
	}
	return nil, "", noMatch(input, "container type")
}

func parseListType(input string) (FieldTypeView, string, *syntaxError) {
	body, err := containerOpen(input, "list")
	if err != nil {
		return nil, "", err
	}
	element, rem, err := parseFieldType(body)
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = containerClose(rem)
	if err != nil {
		return nil, "", err
	}
	return ListTypeView{Element: element}, rem, nil
}

func parseSetType(input string) (FieldTypeView, string, *syntaxError) {
	body, err := containerOpen(input, "set")
	if err != nil {
		return nil, "", err
	}
	element, rem, err := parseFieldType(body)
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = containerClose(rem)
	if err != nil {
		return nil, "", err
	}
	return SetTypeView{Element: element}, rem, nil
}

func parseMapType(input string) (FieldTypeView, string, *syntaxError) {
	body, err := containerOpen(input, "map")
	if err != nil {
		return nil, "", err
	}
	key, rem, err := parseFieldType(body)
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = expectByte(rem, ',', ",")
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return nil, "", require(err)
	}
	value, rem, err := parseFieldType(rem)
	if err != nil {
		return nil, "", require(err)
	}
	rem, err = containerClose(rem)
	if err != nil {
		return nil, "", err
	}
	return MapTypeView{Key: key, Value: value}, rem, nil
}

// containerOpen matches the container keyword up to and including its
// opening angle bracket. A missing bracket is a no-match of the whole
// rule, not an incomplete: the keyword alone is a valid identifier.
func containerOpen(input string, kw string) (string, *syntaxError) {
	rem, err := keyword(input, kw)
	if err != nil {
		return "", err
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return "", err
	}
	rem, err = expectByte(rem, '<', "<")
	if err != nil {
		return "", noMatch(input, kw+" type")
	}
	body, err := skipSeparator(rem)
	if err != nil {
		return "", require(err)
	}
	return body, nil
}

func containerClose(input string) (string, *syntaxError) {
	rem, err := skipSeparator(input)
	if err != nil {
		return "", require(err)
	}
	rem, err = expectByte(rem, '>', ">")
	if err != nil {
		return "", require(err)
	}
	return rem, nil
}

// parseFieldType matches any type expression: a base type, a container,
// or a named reference.
func parseFieldType(input string) (FieldTypeView, string, *syntaxError) {
	if bt, rem, err := parseBaseType(input); err == nil {
		return bt, rem, nil
	}
	if ct, rem, err := parseContainerType(input); err == nil || isIncomplete(err) {
		return ct, rem, err
	}
	if name, rem, err := parseIdentifier(input); err == nil {
		return NamedTypeView{Name: name}, rem, nil
	}
	return nil, "", noMatch(input, "type")
}

// parseDefinitionType matches the underlying type of a typedef, which
// the grammar restricts to base and container types.
func parseDefinitionType(input string) (FieldTypeView, string, *syntaxError) {
	if bt, rem, err := parseBaseType(input); err == nil {
		return bt, rem, nil
	}
	if ct, rem, err := parseContainerType(input); err == nil || isIncomplete(err) {
		return ct, rem, err
	}
	return nil, "", noMatch(input, "base or container type")
}
