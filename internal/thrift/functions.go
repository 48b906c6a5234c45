package thrift

// parseFunction recognizes one service method:
//
//	"oneway"? ("void" | FieldType) Identifier "(" Field* ")"
//	("throws" "(" Field+ ")")? (","|";")?
//
// A nil Returns means void. A nil Exceptions slice means there was no
// throws clause, which is distinct from an empty one: the grammar
// requires at least one field inside throws parentheses.
func parseFunction(input string) (FunctionView, string, *syntaxError) {
	var fn FunctionView
	rem := input
	committed := false

	if after, err := keyword(rem, "oneway"); err == nil {
		after, serr := parseSeparator(after)
		if serr != nil {
			if isIncomplete(serr) {
				return FunctionView{}, "", serr
			}
		} else {
			fn.Oneway = true
			rem = after
			committed = true
		}
	}

	if after, err := keyword(rem, "void"); err == nil {
		rem = after
	} else {
		returns, after, err := parseFieldType(rem)
		if err != nil {
			if isIncomplete(err) || committed {
				return FunctionView{}, "", require(err)
			}
			return FunctionView{}, "", noMatch(input, "function")
		}
		fn.Returns = returns
		rem = after
	}

	rem, err := parseSeparator(rem)
	if err != nil {
		if isIncomplete(err) || committed {
			return FunctionView{}, "", require(err)
		}
		return FunctionView{}, "", noMatch(input, "function")
	}
	fn.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		if committed {
			return FunctionView{}, "", require(err)
		}
		return FunctionView{}, "", noMatch(input, "function")
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return FunctionView{}, "", err
	}
	rem, err = expectByte(rem, '(', "(")
	if err != nil {
		if committed {
			return FunctionView{}, "", require(err)
		}
		return FunctionView{}, "", noMatch(input, "function")
	}
	committed = true

	rem, err = skipSeparator(rem)
	if err != nil {
		return FunctionView{}, "", require(err)
	}
	fn.Parameters, rem, err = separatedList0(rem, parseListSeparator, parseField)
	if err != nil {
		return FunctionView{}, "", require(err)
	}
	if after, serr := parseListSeparator(rem); serr == nil {
		rem = after
	} else if isIncomplete(serr) {
		return FunctionView{}, "", serr
	}
	rem, err = expectByte(rem, ')', ")")
	if err != nil {
		return FunctionView{}, "", require(err)
	}

	if after, serr := skipSeparator(rem); serr == nil {
		if after, kerr := keyword(after, "throws"); kerr == nil {
			exceptions, after, terr := parseThrows(after)
			if terr != nil {
				return FunctionView{}, "", require(terr)
			}
			fn.Exceptions = exceptions
			rem = after
		}
	} else {
		return FunctionView{}, "", serr
	}

	if after, serr := skipSeparator(rem); serr == nil {
		if len(after) > 0 && (after[0] == ',' || after[0] == ';') {
			rem = after[1:]
		}
	} else {
		return FunctionView{}, "", serr
	}

	return fn, rem, nil
}

// parseThrows recognizes the parenthesized field list after the throws
// keyword, which has already been consumed.
func parseThrows(input string) ([]FieldView, string, *syntaxError) {
	rem, err := skipSeparator(input)
	if err != nil {
		return nil, "", err
	}
	rem, err = expectByte(rem, '(', "(")
	if err != nil {
		return nil, "", err
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return nil, "", err
	}
	fields, rem, err := separatedList0(rem, parseListSeparator, parseField)
	if err != nil {
		return nil, "", err
	}
	if len(fields) == 0 {
		return nil, "", incomplete(rem, "field")
	}
	if after, serr := parseListSeparator(rem); serr == nil {
		rem = after
	} else if isIncomplete(serr) {
		return nil, "", serr
	}
	rem, err = expectByte(rem, ')', ")")
	if err != nil {
		return nil, "", err
	}
	return fields, rem, nil
}
