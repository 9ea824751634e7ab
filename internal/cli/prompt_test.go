package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"yes word", "yes\n", false, true},
		{"no", "n\n", true, false},
		{"empty uses default no", "\n", false, false},
		{"empty uses default yes", "\n", true, true},
		{"uppercase", "Y\n", false, true},
		{"garbage is no", "maybe\n", true, false},
		{"eof uses default", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(&out, strings.NewReader(tt.input), "Proceed?", tt.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "Proceed?") {
				t.Errorf("prompt not written, got %q", out.String())
			}
		})
	}
}
