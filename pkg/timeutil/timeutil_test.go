package timeutil

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{90, "0:01:30"},
		{90.7, "0:01:30"},
		{3600, "1:00:00"},
		{4282, "1:11:22"},
		{-5, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatStamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0-00-00"},
		{125, "0-02-05"},
		{3725, "1-02-05"},
		{-1, "0-00-00"},
	}

	for _, tt := range tests {
		if got := FormatStamp(tt.seconds); got != tt.want {
			t.Errorf("FormatStamp(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseTimeToSeconds(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"raw seconds", "90", 90, false},
		{"raw float", "12.5", 12.5, false},
		{"minutes seconds", "1:30", 90, false},
		{"hours minutes seconds", "1:11:22", 4282, false},
		{"zero", "0", 0, false},
		{"garbage", "abc", 0, true},
		{"too many colons", "1:2:3:4", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeToSeconds(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTimeToSeconds(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeToSeconds(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeToSeconds(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
