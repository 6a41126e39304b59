package css

import "testing"

func TestDefaultForTag(t *testing.T) {
	tests := []struct {
		tag     string
		display Display
	}{
		{"div", DisplayBlock},
		{"p", DisplayBlock},
		{"span", DisplayInline},
		{"a", DisplayInline},
		{"img", DisplayInlineBlock},
		{"button", DisplayInlineBlock},
		{"unknowntag", DisplayInline},
	}

	for _, tt := range tests {
		if got := DefaultForTag(tt.tag); got.Display != tt.display {
			t.Errorf("DefaultForTag(%q).Display = %v, want %v", tt.tag, got.Display, tt.display)
		}
	}
}

func TestDefaultForTagListMarkers(t *testing.T) {
	if got := DefaultForTag("ul"); got.ListStyleType != ListStyleDisc {
		t.Errorf("ul list style = %v, want disc", got.ListStyleType)
	}
	if got := DefaultForTag("ol"); got.ListStyleType != ListStyleDecimal {
		t.Errorf("ol list style = %v, want decimal", got.ListStyleType)
	}
}

func TestDefaultForTagButton(t *testing.T) {
	got := DefaultForTag("button")
	if got.Cursor != CursorPointer {
		t.Errorf("button cursor = %v, want pointer", got.Cursor)
	}
	if got.BackgroundColor == nil || *got.BackgroundColor != HexColor("#f2f2f2") {
		t.Errorf("button background = %v, want #f2f2f2", got.BackgroundColor)
	}
	if got.Border != UniformEdges(1) {
		t.Errorf("button border = %+v, want uniform 1", got.Border)
	}
}

func TestDefaultComputedLeavesColorsUnset(t *testing.T) {
	cv := DefaultComputed()
	if cv.Color != nil || cv.BackgroundColor != nil {
		t.Errorf("colors = %v/%v, want unset", cv.Color, cv.BackgroundColor)
	}
	if cv.FontSize != DefaultFontSize {
		t.Errorf("font size = %v, want %v", cv.FontSize, DefaultFontSize)
	}
	if cv.Opacity != 1 || cv.FlexShrink != 1 {
		t.Errorf("opacity/flex-shrink = %v/%v, want 1/1", cv.Opacity, cv.FlexShrink)
	}
}

func TestCloneIsDeep(t *testing.T) {
	cv := DefaultComputed()
	c := NamedColor("red")
	cv.Color = &c
	w := Px(100)
	cv.Width = &w

	clone := cv.Clone()
	*clone.Color = NamedColor("blue")
	*clone.Width = Px(50)

	if *cv.Color != NamedColor("red") {
		t.Errorf("original color = %v, want red after mutating clone", *cv.Color)
	}
	if *cv.Width != Px(100) {
		t.Errorf("original width = %v, want 100px after mutating clone", *cv.Width)
	}
}

func TestIsHidden(t *testing.T) {
	cv := DefaultComputed()
	if cv.IsHidden() {
		t.Error("defaults should be visible")
	}

	cv.Display = DisplayNone
	if !cv.IsHidden() {
		t.Error("display none should be hidden")
	}

	cv = DefaultComputed()
	cv.Visibility = VisibilityHidden
	if !cv.IsHidden() {
		t.Error("visibility hidden should be hidden")
	}
}

func TestIsBlockLevel(t *testing.T) {
	cv := DefaultComputed()
	cv.Display = DisplayBlock
	if !cv.IsBlockLevel() {
		t.Error("block display should be block level")
	}
	cv.Display = DisplayFlex
	if !cv.IsBlockLevel() {
		t.Error("flex display should be block level")
	}
	cv.Display = DisplayInline
	if cv.IsBlockLevel() {
		t.Error("inline display should not be block level")
	}
}
