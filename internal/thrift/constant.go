package thrift

import "strconv"

// Constant value rules. parseConstValue tries the floating point form
// before the integer form: every integer literal is a prefix of some
// float literal, so the longer form has to win.

func parseIntConstant(input string) (IntConstant, string, *syntaxError) {
	end := 0
	if end < len(input) && (input[end] == '+' || input[end] == '-') {
		end++
	}
	digits := end
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	if end == digits {
		return IntConstant{}, "", noMatch(input, "integer")
	}
	value, err := strconv.ParseInt(input[:end], 10, 64)
	if err != nil {
		return IntConstant{}, "", noMatch(input, "64-bit integer")
	}
	return IntConstant{Value: value}, input[end:], nil
}

// parseFloatConstant recognizes [+-]? (digit* '.' digit+ [exp] | digit+ exp).
// A bare digit run is an integer, not a float.
func parseFloatConstant(input string) (FloatConstant, string, *syntaxError) {
	end := 0
	if end < len(input) && (input[end] == '+' || input[end] == '-') {
		end++
	}
	intStart := end
	for end < len(input) && isDigit(input[end]) {
		end++
	}
	intDigits := end - intStart
	switch {
	case end < len(input) && input[end] == '.':
		end++
		fracStart := end
		for end < len(input) && isDigit(input[end]) {
			end++
		}
		if end == fracStart {
			return FloatConstant{}, "", noMatch(input, "float")
		}
		end = scanExponent(input, end)
	case intDigits > 0:
		expEnd := scanExponent(input, end)
		if expEnd == end {
			return FloatConstant{}, "", noMatch(input, "float")
		}
		end = expEnd
	default:
		return FloatConstant{}, "", noMatch(input, "float")
	}
	value, err := strconv.ParseFloat(input[:end], 64)
	if err != nil {
		return FloatConstant{}, "", noMatch(input, "float")
	}
	return FloatConstant{Value: value}, input[end:], nil
}

// scanExponent extends end past an e/E exponent when one is present.
func scanExponent(input string, end int) int {
	pos := end
	if pos >= len(input) || (input[pos] != 'e' && input[pos] != 'E') {
		return end
	}
	pos++
	if pos < len(input) && (input[pos] == '+' || input[pos] == '-') {
		pos++
	}
	digitStart := pos
	for pos < len(input) && isDigit(input[pos]) {
		pos++
	}
	if pos == digitStart {
		return end
	}
	return pos
}

// parseStringLiteral recognizes a single- or double-quoted string. Escape
// sequences are not interpreted: the bytes between the delimiters are
// kept verbatim, and the closing quote is the first occurrence of the
// opening one.
func parseStringLiteral(input string) (LiteralView, string, *syntaxError) {
	if len(input) == 0 || (input[0] != '\'' && input[0] != '"') {
		return LiteralView{}, "", noMatch(input, "string literal")
	}
	quote := input[0]
	for end := 1; end < len(input); end++ {
		if input[end] == quote {
			return LiteralView{Text: input[1:end]}, input[end+1:], nil
		}
	}
	return LiteralView{}, "", incomplete(input, "closing "+string(quote))
}

func parseConstValue(input string) (ConstValueView, string, *syntaxError) {
	if value, rem, err := parseFloatConstant(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	if value, rem, err := parseIntConstant(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	if value, rem, err := parseStringLiteral(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	if value, rem, err := parseConstList(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	if value, rem, err := parseConstMap(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	if value, rem, err := parseIdentifier(input); err == nil {
		return value, rem, nil
	} else if isIncomplete(err) {
		return nil, "", err
	}
	return nil, "", noMatch(input, "constant value")
}

func parseConstList(input string) (ConstListView, string, *syntaxError) {
	rem, err := expectByte(input, '[', "[")
	if err != nil {
		return ConstListView{}, "", err
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstListView{}, "", require(err)
	}
	values, rem, err := separatedList0(rem, parseListSeparator, parseConstValue)
	if err != nil {
		return ConstListView{}, "", require(err)
	}
	if after, err := parseListSeparator(rem); err == nil {
		rem = after
	} else if isIncomplete(err) {
		return ConstListView{}, "", err
	}
	rem, err = expectByte(rem, ']', "]")
	if err != nil {
		return ConstListView{}, "", require(err)
	}
	return ConstListView{Values: values}, rem, nil
}

func parseConstMap(input string) (ConstMapView, string, *syntaxError) {
	rem, err := expectByte(input, '{', "{")
	if err != nil {
		return ConstMapView{}, "", err
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstMapView{}, "", require(err)
	}
	entries, rem, err := separatedList0(rem, parseListSeparator, parseConstMapEntry)
	if err != nil {
		return ConstMapView{}, "", require(err)
	}
	if after, err := parseListSeparator(rem); err == nil {
		rem = after
	} else if isIncomplete(err) {
		return ConstMapView{}, "", err
	}
	rem, err = expectByte(rem, '}', "}")
	if err != nil {
		return ConstMapView{}, "", require(err)
	}
	return ConstMapView{Entries: entries}, rem, nil
}

func parseConstMapEntry(input string) (ConstMapEntryView, string, *syntaxError) {
	key, rem, err := parseConstValue(input)
	if err != nil {
		return ConstMapEntryView{}, "", err
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstMapEntryView{}, "", err
	}
	rem, err = expectByte(rem, ':', ":")
	if err != nil {
		return ConstMapEntryView{}, "", require(err)
	}
	rem, err = skipSeparator(rem)
	if err != nil {
		return ConstMapEntryView{}, "", require(err)
	}
	value, rem, err := parseConstValue(rem)
	if err != nil {
		return ConstMapEntryView{}, "", require(err)
	}
	return ConstMapEntryView{Key: key, Value: value}, rem, nil
}
