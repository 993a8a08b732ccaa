package conference

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Snowcamp 2026!",
			expected: "snowcamp 2026",
		},
		{
			name:     "collapses whitespace runs",
			input:    "  KubeCon   +  CloudNativeCon  ",
			expected: "kubecon cloudnativecon",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "only punctuation",
			input:    "!!! ---",
			expected: "",
		},
		{
			name:     "unicode stripped",
			input:    "Café Conf",
			expected: "caf conf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Snowcamp 2026!",
		"  KubeCon   +  CloudNativeCon  ",
		"",
		"already normalized",
		"RustConf @ Portland (2026)",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
