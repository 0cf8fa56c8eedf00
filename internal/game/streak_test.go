package game

import "testing"

func TestParseWinstreak(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"7", 7},
		{" 12\n", 12},
		{"-3", 0},
		{"abc", 0},
		{"3.5", 0},
	}

	for _, tt := range tests {
		if got := ParseWinstreak(tt.raw); got != tt.want {
			t.Errorf("ParseWinstreak(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestFormatWinstreak(t *testing.T) {
	if FormatWinstreak(15) != "15" {
		t.Errorf("FormatWinstreak(15) = %q", FormatWinstreak(15))
	}
	if FormatWinstreak(-1) != "0" {
		t.Errorf("negative streaks should format as 0, got %q", FormatWinstreak(-1))
	}
}
