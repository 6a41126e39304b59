package css

import "testing"

func TestParseBasicRule(t *testing.T) {
	ss := Parse("div { color: red; width: 100px; }")
	if len(ss.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(ss.Rules))
	}
	rule := ss.Rules[0]
	if len(rule.Selectors) != 1 || rule.Selectors[0].Name != "div" {
		t.Errorf("unexpected selectors: %v", rule.Selectors)
	}
	if len(rule.Declarations) != 2 {
		t.Fatalf("got %d declarations, want 2", len(rule.Declarations))
	}
	if rule.Declarations[0].Property != PropColor {
		t.Errorf("declaration 0 property = %q, want %q", rule.Declarations[0].Property, PropColor)
	}
	if !rule.Declarations[1].Value.Equal(LengthValue(Px(100))) {
		t.Errorf("declaration 1 value = %v, want 100px", rule.Declarations[1].Value)
	}
}

func TestParseMultipleRules(t *testing.T) {
	ss := Parse(`
		h1 { font-size: 32px; }
		p { margin: 1em; }
		.note { color: green; }
	`)
	if len(ss.Rules) != 3 {
		t.Fatalf("got %d rules, want 3", len(ss.Rules))
	}
}

func TestParseSkipsComments(t *testing.T) {
	ss := Parse(`
		/* heading styles */
		h1 { color: /* inline comment */ red; }
		/* trailing */
	`)
	if len(ss.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(ss.Rules))
	}
	decl := ss.Rules[0].Declarations[0]
	if !decl.Value.Equal(ColorValue(NamedColor("red"))) {
		t.Errorf("got value %v, want red", decl.Value)
	}
}

func TestParseUnterminatedComment(t *testing.T) {
	ss := Parse("div { color: red; } /* never closed")
	if len(ss.Rules) != 1 {
		t.Errorf("got %d rules, want 1", len(ss.Rules))
	}
}

func TestParseDiscardsAtRules(t *testing.T) {
	ss := Parse(`
		@media screen and (max-width: 600px) {
			div { color: red; }
		}
		@import url("other.css");
		p { color: blue; }
	`)
	if len(ss.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(ss.Rules))
	}
	if ss.Rules[0].Selectors[0].Name != "p" {
		t.Errorf("surviving rule selector = %q, want p", ss.Rules[0].Selectors[0].Name)
	}
}

func TestParseDropsMalformedDeclarations(t *testing.T) {
	ss := Parse("div { color red; width: 100px; ; }")
	if len(ss.Rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(ss.Rules))
	}
	decls := ss.Rules[0].Declarations
	if len(decls) != 1 {
		t.Fatalf("got %d declarations, want 1", len(decls))
	}
	if decls[0].Property != PropWidth {
		t.Errorf("surviving property = %q, want width", decls[0].Property)
	}
}

func TestParseDropsRuleWithoutSelectors(t *testing.T) {
	ss := Parse("{ color: red; }")
	if len(ss.Rules) != 0 {
		t.Errorf("got %d rules, want 0", len(ss.Rules))
	}
}

func TestParseImportant(t *testing.T) {
	ss := Parse("div { color: red !important; width: 100px; }")
	decls := ss.Rules[0].Declarations
	if !decls[0].Important {
		t.Error("color declaration should be important")
	}
	if decls[1].Important {
		t.Error("width declaration should not be important")
	}
	if !decls[0].Value.Equal(ColorValue(NamedColor("red"))) {
		t.Errorf("important value = %v, want red", decls[0].Value)
	}
}

func TestParseStringWithSemicolon(t *testing.T) {
	ss := Parse(`div { font-family: "semi;colon"; color: red; }`)
	decls := ss.Rules[0].Declarations
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if !decls[0].Value.Equal(StringValue("semi;colon")) {
		t.Errorf("got value %v, want string \"semi;colon\"", decls[0].Value)
	}
}

func TestParsePropertyNamesAreLowercased(t *testing.T) {
	ss := Parse("div { COLOR: red; }")
	if ss.Rules[0].Declarations[0].Property != PropColor {
		t.Errorf("property = %q, want color", ss.Rules[0].Declarations[0].Property)
	}
}

func TestParseInline(t *testing.T) {
	decls := ParseInline("color: red; font-size: 14px")
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if decls[0].Property != PropColor || decls[1].Property != PropFontSize {
		t.Errorf("unexpected properties: %v, %v", decls[0].Property, decls[1].Property)
	}
}

func TestParseEmpty(t *testing.T) {
	if ss := Parse(""); len(ss.Rules) != 0 {
		t.Errorf("got %d rules, want 0", len(ss.Rules))
	}
	if ss := Parse("   \n\t  "); len(ss.Rules) != 0 {
		t.Errorf("got %d rules, want 0", len(ss.Rules))
	}
}

func TestRuleSpecificityIsMax(t *testing.T) {
	ss := Parse("div, #main, .note { color: red; }")
	if got := ss.Rules[0].Specificity(); got != 100 {
		t.Errorf("Specificity() = %d, want 100", got)
	}
}
