package css

import "testing"

func TestParseBoxShadows(t *testing.T) {
	shadows := ParseBoxShadows("2px 4px 6px 1px rgba(0, 0, 0, 0.3)")
	if len(shadows) != 1 {
		t.Fatalf("got %d shadows, want 1", len(shadows))
	}
	s := shadows[0]
	if s.OffsetX != Px(2) || s.OffsetY != Px(4) {
		t.Errorf("offsets = %v/%v, want 2px/4px", s.OffsetX, s.OffsetY)
	}
	if s.Blur != Px(6) || s.Spread != Px(1) {
		t.Errorf("blur/spread = %v/%v, want 6px/1px", s.Blur, s.Spread)
	}
	if s.Color != RGBA(0, 0, 0, 0.3) {
		t.Errorf("color = %v, want rgba(0, 0, 0, 0.3)", s.Color)
	}
	if s.Inset {
		t.Error("shadow should not be inset")
	}
}

func TestParseBoxShadowsInset(t *testing.T) {
	shadows := ParseBoxShadows("inset 0 1px 2px red")
	if len(shadows) != 1 {
		t.Fatalf("got %d shadows, want 1", len(shadows))
	}
	s := shadows[0]
	if !s.Inset {
		t.Error("shadow should be inset")
	}
	if s.OffsetX != Px(0) || s.OffsetY != Px(1) {
		t.Errorf("offsets = %v/%v, want 0px/1px", s.OffsetX, s.OffsetY)
	}
	if s.Color != NamedColor("red") {
		t.Errorf("color = %v, want red", s.Color)
	}
}

func TestParseBoxShadowsMultipleLayers(t *testing.T) {
	shadows := ParseBoxShadows("0 1px 2px rgba(0, 0, 0, 0.5), 0 2px 4px blue")
	if len(shadows) != 2 {
		t.Fatalf("got %d shadows, want 2", len(shadows))
	}
	if shadows[0].Color != RGBA(0, 0, 0, 0.5) {
		t.Errorf("layer 0 color = %v, want rgba(0, 0, 0, 0.5)", shadows[0].Color)
	}
	if shadows[1].Color != NamedColor("blue") {
		t.Errorf("layer 1 color = %v, want blue", shadows[1].Color)
	}
}

func TestParseBoxShadowsDefaults(t *testing.T) {
	shadows := ParseBoxShadows("1px 1px")
	if len(shadows) != 1 {
		t.Fatalf("got %d shadows, want 1", len(shadows))
	}
	if shadows[0].Color != defaultShadowColor() {
		t.Errorf("color = %v, want the default shadow color", shadows[0].Color)
	}
	if shadows[0].Blur != (Length{}) || shadows[0].Spread != (Length{}) {
		t.Errorf("blur/spread = %v/%v, want zero", shadows[0].Blur, shadows[0].Spread)
	}
}

func TestParseBoxShadowsRejects(t *testing.T) {
	tests := []string{"none", "", "1px", "red"}
	for _, input := range tests {
		if got := ParseBoxShadows(input); got != nil {
			t.Errorf("ParseBoxShadows(%q) = %v, want nil", input, got)
		}
	}
}
