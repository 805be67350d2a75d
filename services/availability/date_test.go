package availability

import "testing"

func TestToISODate(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"05-JAN-2025", "2025-01-05", true},
		{"10-MAR-2025", "2025-03-10", true},
		{"31-DEC-1999", "1999-12-31", true},
		{"1-FEB-2025", "2025-02-01", true}, // unpadded day still normalizes
		{"05-jan-2025", "2025-01-05", true},
		{"05/JAN/2025", "", false}, // missing separator
		{"05-JAN", "", false},      // wrong segment count
		{"05-JAN-2025-X", "", false},
		{"05-FOO-2025", "", false},
		{"XX-JAN-2025", "", false},
		{"05-JAN-abcd", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ToISODate(tt.in)
		if ok != tt.wantOK {
			t.Errorf("ToISODate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ToISODate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromISODate(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"2025-01-05", "05-JAN-2025", true},
		{"2025-03-10", "10-MAR-2025", true},
		{"2025-12-01", "01-DEC-2025", true}, // day zero-padded
		{"2025-1-5", "05-JAN-2025", true},
		{"2025-13-01", "", false},
		{"2025-00-01", "", false},
		{"2025-01", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := FromISODate(tt.in)
		if ok != tt.wantOK {
			t.Errorf("FromISODate(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("FromISODate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	for _, wire := range []string{"05-JAN-2025", "29-FEB-2024", "15-AUG-2026"} {
		iso, ok := ToISODate(wire)
		if !ok {
			t.Fatalf("ToISODate(%q) failed", wire)
		}
		back, ok := FromISODate(iso)
		if !ok {
			t.Fatalf("FromISODate(%q) failed", iso)
		}
		if back != wire {
			t.Errorf("round trip %q -> %q -> %q", wire, iso, back)
		}
	}
}
