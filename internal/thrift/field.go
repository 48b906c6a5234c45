package thrift

// parseField recognizes one field of a struct, union, exception,
// parameter list, or throws list:
//
//	(IntConstant ":")? ("required" | "optional")? FieldType Identifier
//	("=" ConstValue)? (","|";")?
//
// Every optional prefix backtracks as a whole: a bare integer that is not
// followed by a colon is not a field id, and "required" not followed by a
// separator is read as a type name instead of a qualifier.
func parseField(input string) (FieldView, string, *syntaxError) {
	var field FieldView
	rem := input
	committed := false

	if id, after, err := parseIntConstant(rem); err == nil {
		after, serr := skipSeparator(after)
		if serr != nil {
			return FieldView{}, "", serr
		}
		if after, cerr := expectByte(after, ':', ":"); cerr == nil {
			after, serr = skipSeparator(after)
			if serr != nil {
				return FieldView{}, "", require(serr)
			}
			fieldID := id
			field.ID = &fieldID
			rem = after
			committed = true
		}
	}

	for _, rq := range []struct {
		kw   string
		mode Requiredness
	}{
		{"required", RequirednessRequired},
		{"optional", RequirednessOptional},
	} {
		after, err := keyword(rem, rq.kw)
		if err != nil {
			continue
		}
		after, err = parseSeparator(after)
		if err != nil {
			if isIncomplete(err) {
				return FieldView{}, "", err
			}
			continue
		}
		field.Requiredness = rq.mode
		rem = after
		committed = true
		break
	}

	fieldType, rem, err := parseFieldType(rem)
	if err != nil {
		if isIncomplete(err) {
			return FieldView{}, "", err
		}
		if committed {
			return FieldView{}, "", require(err)
		}
		return FieldView{}, "", noMatch(input, "field")
	}
	field.Type = fieldType

	rem, err = parseSeparator(rem)
	if err != nil {
		return FieldView{}, "", require(err)
	}
	field.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		return FieldView{}, "", require(err)
	}

	if after, serr := skipSeparator(rem); serr == nil {
		if after, eqErr := expectByte(after, '=', "="); eqErr == nil {
			after, serr = skipSeparator(after)
			if serr != nil {
				return FieldView{}, "", require(serr)
			}
			value, after, verr := parseConstValue(after)
			if verr != nil {
				return FieldView{}, "", require(verr)
			}
			field.Default = value
			rem = after
		}
	} else {
		return FieldView{}, "", serr
	}

	// A field may carry its own trailing , or ; . The separator run in
	// front of the punctuation is only consumed when the punctuation is
	// actually there.
	if after, serr := skipSeparator(rem); serr == nil {
		if len(after) > 0 && (after[0] == ',' || after[0] == ';') {
			rem = after[1:]
		}
	} else {
		return FieldView{}, "", serr
	}

	return field, rem, nil
}
