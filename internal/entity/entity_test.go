package entity

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Detected
		want bool
	}{
		{
			name: "partial overlap",
			a:    Detected{Start: 0, End: 5},
			b:    Detected{Start: 3, End: 8},
			want: true,
		},
		{
			name: "containment",
			a:    Detected{Start: 0, End: 10},
			b:    Detected{Start: 2, End: 4},
			want: true,
		},
		{
			name: "touching spans do not overlap",
			a:    Detected{Start: 0, End: 5},
			b:    Detected{Start: 5, End: 9},
			want: false,
		},
		{
			name: "disjoint",
			a:    Detected{Start: 0, End: 3},
			b:    Detected{Start: 7, End: 9},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("reverse Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceholder(t *testing.T) {
	if got := Placeholder(TypeTCID); got != "[TC_KIMLIK]" {
		t.Errorf("Placeholder(TC_ID) = %q", got)
	}
	if got := Placeholder(TypeFullName); got != "[AD_SOYAD]" {
		t.Errorf("Placeholder(FULL_NAME) = %q", got)
	}
	if got := Placeholder(Type("UNKNOWN")); got != "[FİLTRELENDİ]" {
		t.Errorf("Placeholder(unknown) = %q, want fallback", got)
	}
}

func TestPriority(t *testing.T) {
	if Priority(TypeTCID) >= Priority(TypeFullName) {
		t.Error("national ID should outrank full name")
	}
	if Priority(TypeFullName) >= Priority(TypeName) {
		t.Error("full name should outrank bare name")
	}
	if got := Priority(Type("UNKNOWN")); got != 99 {
		t.Errorf("Priority(unknown) = %d, want 99", got)
	}
}
