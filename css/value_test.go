package css

import "testing"

func TestParseValueSingle(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		{"auto", AutoValue()},
		{"#ff0000", ColorValue(HexColor("#ff0000"))},
		{"rgb(255, 0, 0)", ColorValue(RGB(255, 0, 0))},
		{"rgba(0, 0, 0, 0.5)", ColorValue(RGBA(0, 0, 0, 0.5))},
		{"red", ColorValue(NamedColor("red"))},
		{"16px", LengthValue(Px(16))},
		{"50%", LengthValue(Percent(50))},
		{"1.5", Number(1.5)},
		{`"Times New Roman"`, StringValue("Times New Roman")},
		{"'Courier'", StringValue("Courier")},
		{"bold", Keyword("bold")},
		{"inline-block", Keyword("inline-block")},
		// Malformed function notation degrades to a keyword.
		{"rgb(255)", Keyword("rgb(255)")},
	}

	for _, tt := range tests {
		got := ParseValue(tt.input)
		if !got.Equal(tt.want) {
			t.Errorf("ParseValue(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseValueMultiple(t *testing.T) {
	got := ParseValue("10px auto 2em")
	want := Multiple([]Value{LengthValue(Px(10)), AutoValue(), LengthValue(Em(2))})
	if !got.Equal(want) {
		t.Errorf("ParseValue(\"10px auto 2em\") = %v, want %v", got, want)
	}
}

func TestParseValueFunctionNotationStaysIntact(t *testing.T) {
	// Spaces inside parentheses must not split the component.
	got := ParseValue("1px rgb(255, 0, 0)")
	want := Multiple([]Value{LengthValue(Px(1)), ColorValue(RGB(255, 0, 0))})
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseValueQuotedStringStaysIntact(t *testing.T) {
	got := ParseValue(`bold "Times New Roman"`)
	want := Multiple([]Value{Keyword("bold"), StringValue("Times New Roman")})
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Keyword("bold"), "bold"},
		{Number(1.5), "1.5"},
		{LengthValue(Px(10)), "10px"},
		{ColorValue(NamedColor("red")), "red"},
		{AutoValue(), "auto"},
		{Multiple([]Value{LengthValue(Px(1)), LengthValue(Px(2))}), "1px 2px"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
