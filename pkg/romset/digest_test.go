package romset

import "testing"

func TestDigestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Digest
		want bool
	}{
		{"identical", "abc123", "abc123", true},
		{"case insensitive", "ABC123", "abc123", true},
		{"mixed case", "AbC123", "aBc123", true},
		{"different", "abc123", "def456", false},
		{"empty both", "", "", true},
		{"empty one", "abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Digest(%q).Equal(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDigestNormalize(t *testing.T) {
	d := Digest("ABC123DEF")
	if got := d.Normalize(); got != "abc123def" {
		t.Errorf("Normalize() = %q, want %q", got, "abc123def")
	}
	// Original casing is preserved on the value itself
	if d.String() != "ABC123DEF" {
		t.Errorf("String() = %q, want original casing", d.String())
	}
}

func TestDigestIsZero(t *testing.T) {
	if !Digest("").IsZero() {
		t.Error("empty digest should be zero")
	}
	if Digest("0").IsZero() {
		t.Error("non-empty digest should not be zero")
	}
}

func TestDigestMapClone(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		var m DigestMap
		if m.Clone() != nil {
			t.Error("Expected nil clone for nil map")
		}
	})

	t.Run("mutation independence", func(t *testing.T) {
		m := DigestMap{"a.rom": "111", "b.rom": "222"}
		clone := m.Clone()

		clone["a.rom"] = "999"
		clone["c.rom"] = "333"

		if m["a.rom"] != "111" {
			t.Error("Original map should not be affected by clone mutation")
		}
		if len(m) != 2 {
			t.Errorf("Original map length changed: %d", len(m))
		}
	})
}

func TestDigestMapNames(t *testing.T) {
	m := DigestMap{"z.rom": "1", "a.rom": "2", "m.rom": "3"}
	names := m.Names()

	want := []string{"a.rom", "m.rom", "z.rom"}
	if len(names) != len(want) {
		t.Fatalf("Names() length = %d, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestSetClone(t *testing.T) {
	t.Run("nil set", func(t *testing.T) {
		var s *Set
		if s.Clone() != nil {
			t.Error("Expected nil clone for nil set")
		}
	})

	t.Run("deep copy", func(t *testing.T) {
		s := &Set{
			Name:    "mslug",
			CloneOf: "neogeo",
			ROMs:    DigestMap{"201-p1.bin": "abc"},
		}
		clone := s.Clone()

		if clone == s {
			t.Fatal("Expected different pointer")
		}
		clone.ROMs["201-p1.bin"] = "changed"
		if s.ROMs["201-p1.bin"] != "abc" {
			t.Error("Original ROMs should not be affected by clone mutation")
		}
	})
}

func TestSetIsClone(t *testing.T) {
	if (&Set{Name: "pacman"}).IsClone() {
		t.Error("set without CloneOf should not be a clone")
	}
	if !(&Set{Name: "pacplus", CloneOf: "pacman"}).IsClone() {
		t.Error("set with CloneOf should be a clone")
	}
}
