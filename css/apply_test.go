package css

import "testing"

func apply(cv *ComputedValues, property Property, value string) {
	applyDeclaration(cv, Declaration{Property: property, Value: ParseValue(value)}, nil, defaultEnvironment())
}

func TestApplyDisplay(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropDisplay, "none")
	if cv.Display != DisplayNone {
		t.Errorf("display = %v, want none", cv.Display)
	}

	// Unknown keywords keep the current value.
	apply(cv, PropDisplay, "table-cell")
	if cv.Display != DisplayNone {
		t.Errorf("display = %v, want none after unknown keyword", cv.Display)
	}
}

func TestApplyWidthAndAuto(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropWidth, "100px")
	if cv.Width == nil || *cv.Width != Px(100) {
		t.Errorf("width = %v, want 100px", cv.Width)
	}

	apply(cv, PropWidth, "auto")
	if cv.Width != nil {
		t.Errorf("width = %v, want nil after auto", cv.Width)
	}
}

func TestApplyMarginSide(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropMarginTop, "2em")
	if cv.Margin.Top != 32 {
		t.Errorf("margin top = %v, want 32", cv.Margin.Top)
	}
	if cv.Margin.Left != 0 {
		t.Errorf("margin left = %v, want untouched 0", cv.Margin.Left)
	}
}

func TestApplyOpacityClamps(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"0.5", 0.5},
		{"-1", 0},
		{"2", 1},
	}

	for _, tt := range tests {
		cv := DefaultComputed()
		apply(cv, PropOpacity, tt.value)
		if cv.Opacity != tt.want {
			t.Errorf("opacity %q = %v, want %v", tt.value, cv.Opacity, tt.want)
		}
	}
}

func TestApplyZIndex(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropZIndex, "3")
	if cv.ZIndex != 3 {
		t.Errorf("z-index = %d, want 3", cv.ZIndex)
	}
	apply(cv, PropZIndex, "auto")
	if cv.ZIndex != 0 {
		t.Errorf("z-index = %d, want 0 after auto", cv.ZIndex)
	}
}

func TestApplyFontWeightNumeric(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropFontWeight, "700")
	if cv.FontWeight != "700" {
		t.Errorf("font weight = %q, want 700", cv.FontWeight)
	}
}

func TestApplyLineHeight(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropLineHeight, "1.5")
	if cv.LineHeight.Kind != LineHeightNumber || cv.LineHeight.Number != 1.5 {
		t.Errorf("line height = %+v, want number 1.5", cv.LineHeight)
	}

	apply(cv, PropLineHeight, "24px")
	if cv.LineHeight.Kind != LineHeightLength || cv.LineHeight.Length != Px(24) {
		t.Errorf("line height = %+v, want 24px", cv.LineHeight)
	}

	apply(cv, PropLineHeight, "normal")
	if cv.LineHeight.Kind != LineHeightNormal {
		t.Errorf("line height = %+v, want normal", cv.LineHeight)
	}
}

func TestApplyVerticalAlign(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropVerticalAlign, "middle")
	if cv.VerticalAlign.Kind != VerticalAlignMiddle {
		t.Errorf("vertical align = %+v, want middle", cv.VerticalAlign)
	}

	apply(cv, PropVerticalAlign, "4px")
	if cv.VerticalAlign.Kind != VerticalAlignLength || cv.VerticalAlign.Length != Px(4) {
		t.Errorf("vertical align = %+v, want 4px", cv.VerticalAlign)
	}
}

func TestApplyGap(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropGap, "10px")
	if cv.Gap != UniformGap(Px(10)) {
		t.Errorf("gap = %+v, want uniform 10px", cv.Gap)
	}

	apply(cv, PropGap, "10px 20px")
	if cv.Gap.Row != Px(10) || cv.Gap.Column != Px(20) {
		t.Errorf("gap = %+v, want row 10px column 20px", cv.Gap)
	}
}

func TestApplyBorderRadius(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropBorderRadius, "4px")
	if cv.BorderRadius != UniformRadius(Px(4)) {
		t.Errorf("border radius = %+v, want uniform 4px", cv.BorderRadius)
	}
}

func TestApplyCornerRadius(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropBorderRadius, "4px")
	apply(cv, PropBorderTopLeftRadius, "8px")

	want := BorderRadius{TopLeft: Px(8), TopRight: Px(4), BottomLeft: Px(4), BottomRight: Px(4)}
	if cv.BorderRadius != want {
		t.Errorf("border radius = %+v, want %+v", cv.BorderRadius, want)
	}
}

func TestApplyOutline(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropOutline, "2px dashed red")
	if cv.Outline.Width != Px(2) || cv.Outline.Style != OutlineDashed {
		t.Errorf("outline = %+v, want 2px dashed", cv.Outline)
	}
	if cv.Outline.Color == nil || *cv.Outline.Color != NamedColor("red") {
		t.Errorf("outline color = %v, want red", cv.Outline.Color)
	}

	apply(cv, PropOutlineWidth, "thick")
	if cv.Outline.Width != Px(5) {
		t.Errorf("outline width = %v, want 5px from thick", cv.Outline.Width)
	}
	apply(cv, PropOutlineStyle, "dotted")
	if cv.Outline.Style != OutlineDotted {
		t.Errorf("outline style = %v, want dotted", cv.Outline.Style)
	}
	apply(cv, PropOutlineColor, "#00ff00")
	if cv.Outline.Color == nil || *cv.Outline.Color != HexColor("#00ff00") {
		t.Errorf("outline color = %v, want #00ff00", cv.Outline.Color)
	}
	apply(cv, PropOutlineOffset, "3px")
	if cv.OutlineOffset != Px(3) {
		t.Errorf("outline offset = %v, want 3px", cv.OutlineOffset)
	}
}

func TestApplyBoxShadow(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropBoxShadow, "0 2px 4px rgba(0, 0, 0, 0.5)")
	if len(cv.BoxShadow) != 1 {
		t.Fatalf("got %d shadows, want 1", len(cv.BoxShadow))
	}
	if cv.BoxShadow[0].Blur != Px(4) {
		t.Errorf("blur = %v, want 4px", cv.BoxShadow[0].Blur)
	}

	apply(cv, PropBoxShadow, "none")
	if cv.BoxShadow != nil {
		t.Errorf("shadows = %v, want none", cv.BoxShadow)
	}
}

func TestApplyMismatchedValueIsIgnored(t *testing.T) {
	cv := DefaultComputed()
	c := NamedColor("red")
	cv.Color = &c

	apply(cv, PropColor, "12px")
	if cv.Color == nil || *cv.Color != NamedColor("red") {
		t.Errorf("color = %v, want red kept after mismatched value", cv.Color)
	}
}

func TestApplyBackgroundImage(t *testing.T) {
	cv := DefaultComputed()
	apply(cv, PropBackgroundImage, `url("hero.png")`)
	if cv.BackgroundImage.URL != "hero.png" {
		t.Errorf("background image URL = %q, want hero.png", cv.BackgroundImage.URL)
	}

	apply(cv, PropBackgroundImage, "none")
	if !cv.BackgroundImage.None() {
		t.Errorf("background image = %+v, want none", cv.BackgroundImage)
	}
}
