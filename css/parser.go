// CSS parsing. The parser is deliberately forgiving: malformed rules and
// declarations are dropped, at-rule blocks are consumed and discarded, and
// parsing never fails.
package css

import "strings"

// Parse parses CSS text into a stylesheet.
func Parse(css string) *Stylesheet {
	ss := NewStylesheet()
	for _, span := range splitRules(stripComments(css)) {
		if rule, ok := parseRule(span); ok {
			ss.AddRule(rule)
		}
	}
	return ss
}

// stripComments removes /* */ comments, leaving string contents alone. An
// unterminated comment runs to the end of input.
func stripComments(css string) string {
	var sb strings.Builder
	sb.Grow(len(css))
	inString := false
	var stringChar byte

	for pos := 0; pos < len(css); pos++ {
		ch := css[pos]
		if !inString && ch == '/' && pos+1 < len(css) && css[pos+1] == '*' {
			end := strings.Index(css[pos+2:], "*/")
			if end < 0 {
				break
			}
			pos += 2 + end + 1
			continue
		}
		if !inString && (ch == '"' || ch == '\'') {
			inString = true
			stringChar = ch
		} else if inString && ch == stringChar && (pos == 0 || css[pos-1] != '\\') {
			inString = false
		}
		sb.WriteByte(ch)
	}
	return sb.String()
}

// ParseInline parses the contents of a style attribute as a declaration
// list.
func ParseInline(style string) []Declaration {
	return parseDeclarations(style)
}

// splitRules splits comment-free CSS text into rule spans, discarding
// at-rule blocks. Strings and nested braces are respected.
func splitRules(css string) []string {
	var rules []string
	ruleStart := 0
	braceDepth := 0
	inString := false
	var stringChar byte
	inAtRule := false

	for pos := 0; pos < len(css); pos++ {
		ch := css[pos]

		if !inString && (ch == '"' || ch == '\'') {
			inString = true
			stringChar = ch
			continue
		}
		if inString {
			if ch == stringChar && (pos == 0 || css[pos-1] != '\\') {
				inString = false
			}
			continue
		}

		switch ch {
		case '@':
			if braceDepth == 0 {
				inAtRule = true
			}
		case ';':
			// Statement at-rules like @import end without a block.
			if braceDepth == 0 && inAtRule {
				inAtRule = false
				ruleStart = pos + 1
			}
		case '{':
			braceDepth++
		case '}':
			braceDepth--
			if braceDepth == 0 && !inAtRule {
				span := strings.TrimSpace(css[ruleStart : pos+1])
				if span != "" {
					rules = append(rules, span)
				}
				ruleStart = pos + 1
			} else if braceDepth == 0 {
				ruleStart = pos + 1
				inAtRule = false
			}
		}
	}

	return rules
}

// parseRule parses one "selectors { declarations }" span.
func parseRule(text string) (Rule, bool) {
	open := strings.IndexByte(text, '{')
	if open < 0 || !strings.HasSuffix(text, "}") {
		return Rule{}, false
	}

	selectors := ParseSelectorList(text[:open])
	if len(selectors) == 0 {
		return Rule{}, false
	}

	declarations := parseDeclarations(text[open+1 : len(text)-1])
	return NewRule(selectors, declarations), true
}

// parseDeclarations splits a declaration block on semicolons, string-aware.
func parseDeclarations(text string) []Declaration {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var declarations []Declaration
	start := 0
	inString := false
	var stringChar byte

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if !inString && (ch == '"' || ch == '\'') {
			inString = true
			stringChar = ch
		} else if inString && ch == stringChar && (i == 0 || text[i-1] != '\\') {
			inString = false
		} else if !inString && ch == ';' {
			if decl, ok := parseDeclaration(text[start:i]); ok {
				declarations = append(declarations, decl)
			}
			start = i + 1
		}
	}
	if start < len(text) {
		if decl, ok := parseDeclaration(text[start:]); ok {
			declarations = append(declarations, decl)
		}
	}

	return declarations
}

// parseDeclaration parses a single "property: value" pair, honoring a
// trailing !important.
func parseDeclaration(text string) (Declaration, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Declaration{}, false
	}

	colon := strings.IndexByte(text, ':')
	if colon < 0 {
		return Declaration{}, false
	}

	property := ParseProperty(text[:colon])
	if property == "" {
		return Declaration{}, false
	}

	valueText := strings.TrimSpace(text[colon+1:])
	important := false
	if strings.HasSuffix(valueText, "!important") {
		valueText = strings.TrimSpace(valueText[:len(valueText)-len("!important")])
		important = true
	}

	return Declaration{
		Property:  property,
		Value:     ParseValue(valueText),
		Important: important,
	}, true
}
