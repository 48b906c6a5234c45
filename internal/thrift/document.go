package thrift

// Document rules: headers followed by definitions.
//
//	Document  ::= Separator? Header* Definition* Separator?
//	Header    ::= Include | Namespace
//	Include   ::= 'include' Literal
//	Namespace ::= 'namespace' ('*' | Identifier) Identifier

func parseInclude(input string) (IncludeView, string, *syntaxError) {
	rem, err := keyword(input, "include")
	if err != nil {
		return IncludeView{}, "", noMatch(input, "include")
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return IncludeView{}, "", require(err)
	}
	path, rem, err := parseStringLiteral(rem)
	if err != nil {
		return IncludeView{}, "", require(err)
	}
	return IncludeView{Path: path}, rem, nil
}

func parseNamespace(input string) (NamespaceView, string, *syntaxError) {
	rem, err := keyword(input, "namespace")
	if err != nil {
		return NamespaceView{}, "", noMatch(input, "namespace")
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return NamespaceView{}, "", require(err)
	}
	var ns NamespaceView
	if len(rem) > 0 && rem[0] == '*' {
		ns.Scope = IdentifierView{Name: rem[:1]}
		rem = rem[1:]
	} else {
		ns.Scope, rem, err = parseIdentifier(rem)
		if err != nil {
			return NamespaceView{}, "", require(err)
		}
	}
	rem, err = parseSeparator(rem)
	if err != nil {
		return NamespaceView{}, "", require(err)
	}
	ns.Name, rem, err = parseIdentifier(rem)
	if err != nil {
		return NamespaceView{}, "", require(err)
	}
	return ns, rem, nil
}

// parseDocSeparator consumes the separator run between two top-level
// constructs. When the run ends with a comment followed by exactly one
// line break and optional horizontal space, the scan rewinds to that
// comment so the next definition attaches it as documentation; earlier
// comments in the run, and comments followed by a blank line, are plain
// separator content.
func parseDocSeparator(input string) (string, *syntaxError) {
	rem := input
	candidate := ""
	hasCandidate := false
	for {
		start := rem
		for len(rem) > 0 && (rem[0] == ' ' || rem[0] == '\t' || rem[0] == '\n' || rem[0] == '\r') {
			rem = rem[1:]
		}
		if _, after, err := parseComment(rem); err == nil {
			candidate = rem
			hasCandidate = true
			rem = after
		} else if isIncomplete(err) {
			return "", err
		}
		if len(rem) == len(start) {
			break
		}
	}
	if hasCandidate {
		if _, after, err := parseComment(candidate); err == nil {
			if after, lfErr := parseLinefeed(after); lfErr == nil {
				if trimmed, spErr := parseSpace(after); spErr == nil {
					after = trimmed
				}
				if len(after) == len(rem) {
					return candidate, nil
				}
			}
		}
	}
	return rem, nil
}

func parseDocument(input string) (DocumentView, string, *syntaxError) {
	var doc DocumentView
	rem := input
	for {
		after, err := skipSeparator(rem)
		if err != nil {
			return DocumentView{}, "", err
		}
		if inc, next, err := parseInclude(after); err == nil {
			doc.Includes = append(doc.Includes, inc)
			rem = next
			continue
		} else if isIncomplete(err) {
			return DocumentView{}, "", err
		}
		if ns, next, err := parseNamespace(after); err == nil {
			doc.Namespaces = append(doc.Namespaces, ns)
			rem = next
			continue
		} else if isIncomplete(err) {
			return DocumentView{}, "", err
		}
		break
	}
	for {
		after, err := parseDocSeparator(rem)
		if err != nil {
			return DocumentView{}, "", err
		}
		def, next, err := parseDefinition(after)
		if err != nil {
			if isIncomplete(err) {
				return DocumentView{}, "", err
			}
			break
		}
		doc.Definitions = append(doc.Definitions, def)
		rem = next
	}
	rem, err := skipSeparator(rem)
	if err != nil {
		return DocumentView{}, "", err
	}
	if len(rem) > 0 {
		return DocumentView{}, "", noMatch(rem, "definition")
	}
	return doc, rem, nil
}
