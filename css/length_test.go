package css

import "testing"

func TestParseLength(t *testing.T) {
	tests := []struct {
		input string
		want  Length
		ok    bool
	}{
		{"10px", Px(10), true},
		{"12pt", Pt(12), true},
		{"1.5em", Em(1.5), true},
		{"2rem", Rem(2), true},
		{"50%", Percent(50), true},
		{"10vw", Vw(10), true},
		{"25vh", Vh(25), true},
		{"-4px", Px(-4), true},
		{"0.5px", Px(0.5), true},
		{"10", Length{}, false},
		{"px", Length{}, false},
		{"abcpx", Length{}, false},
		{"", Length{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseLength(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseLength(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseLength(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLengthToPx(t *testing.T) {
	tests := []struct {
		name       string
		length     Length
		fontSize   float64
		parentSize float64
		want       float64
	}{
		{"px passthrough", Px(24), 16, 400, 24},
		{"pt at 96 dpi", Pt(72), 16, 400, 96},
		{"em scales with font size", Em(2), 20, 400, 40},
		{"rem uses root font size", Rem(2), 20, 400, 32},
		{"percent of parent", Percent(50), 16, 400, 200},
		{"vw of viewport", Vw(10), 16, 1280, 128},
		{"vh of viewport", Vh(50), 16, 720, 360},
		{"auto resolves to zero", Auto(), 16, 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.length.ToPx(tt.fontSize, tt.parentSize)
			if got != tt.want {
				t.Errorf("ToPx(%v, %v) = %v, want %v", tt.fontSize, tt.parentSize, got, tt.want)
			}
		})
	}
}

func TestLengthString(t *testing.T) {
	tests := []struct {
		length Length
		want   string
	}{
		{Px(10), "10px"},
		{Em(1.5), "1.5em"},
		{Percent(50), "50%"},
		{Auto(), "auto"},
	}

	for _, tt := range tests {
		if got := tt.length.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
