package availability

import "testing"

func TestClockMinutes(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"10:00:00", 600, true},
		{"10:15:45", 615, true}, // seconds ignored
		{"", 0, false},
		{"noon", 0, false},
		{"10", 0, false},
		{"10:00:00:00", 0, false},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"-1:30", 0, false},
		{"aa:bb", 0, false},
	}
	for _, tt := range tests {
		got, ok := ClockMinutes(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ClockMinutes(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ClockMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
