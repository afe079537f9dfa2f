package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Firm brown CLAY", "Firm brown CLAY"},
		{"whitespace", "  Firm\n brown\t\tCLAY  ", "Firm brown CLAY"},
		{"inline markup", "Soft <i>organic</i> CLAY", "Soft organic CLAY"},
		{"entities", "SAND &amp; GRAVEL", "SAND & GRAVEL"},
		{"line break tag", "CLAY<br>with gravel", "CLAY with gravel"},
		{"subscript", "Cu<sub>50</sub> kPa", "Cu50 kPa"},
		{"decomposed accent", "Cafe\u0301 marl", "Caf\u00e9 marl"},
		{"less-than in text", "cobbles < 200mm", "cobbles < 200mm"},
		{"empty", "", ""},
		{"less-than before letter", "Firm CLAY, w<wL, with rare gravel of flint", "Firm CLAY, w<wL, with rare gravel of flint"},
		{"unterminated tag-like text", "Dense SAND (fines <fine gravel) becoming silty", "Dense SAND (fines <fine gravel) becoming silty"},
		{"unknown tag kept", "PI <x> 20", "PI <x> 20"},
		{"markup before unterminated text", "Soft <i>organic</i> CLAY, w<wP", "Soft organic CLAY, w<wP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
