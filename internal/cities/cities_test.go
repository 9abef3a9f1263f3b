package cities

import "testing"

func TestAll_HasAllProvinces(t *testing.T) {
	if len(All) != 81 {
		t.Fatalf("All has %d provinces, want 81", len(All))
	}
}

func TestAll_SortedAndNonEmpty(t *testing.T) {
	for i, c := range All {
		if c.Name == "" {
			t.Errorf("province %d has empty name", i)
		}
		if c.Lat == 0 || c.Lng == 0 {
			t.Errorf("%s has zero coordinates", c.Name)
		}
	}
}

func TestFind_ExactName(t *testing.T) {
	c, ok := Find("İstanbul")
	if !ok {
		t.Fatal("Find(İstanbul) not found")
	}
	if c.Lat != 41.0082 || c.Lng != 28.9784 {
		t.Errorf("İstanbul coordinates = %v, %v", c.Lat, c.Lng)
	}
}

func TestFind_TurkishCaseFolding(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"istanbul", "İstanbul"},
		{"ISPARTA", "Isparta"},
		{"izmir", "İzmir"},
		{"ağrı", "Ağrı"},
		{"AĞRI", "Ağrı"},
		{"şanlıurfa", "Şanlıurfa"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, ok := Find(tt.query)
			if !ok {
				t.Fatalf("Find(%q) not found", tt.query)
			}
			if c.Name != tt.want {
				t.Errorf("Find(%q) = %q, want %q", tt.query, c.Name, tt.want)
			}
		})
	}
}

func TestFind_Unknown(t *testing.T) {
	if _, ok := Find("Atlantis"); ok {
		t.Error("Find(Atlantis) should not match")
	}
}

func TestSearch_Substring(t *testing.T) {
	got := Search("kara")
	names := make(map[string]bool)
	for _, c := range got {
		names[c.Name] = true
	}
	for _, want := range []string{"Afyonkarahisar", "Karabük", "Karaman"} {
		if !names[want] {
			t.Errorf("Search(kara) missing %q, got %v", want, got)
		}
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	if got := Search(""); len(got) != len(All) {
		t.Errorf("Search(\"\") returned %d cities, want %d", len(got), len(All))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	if got := Search("xyz"); len(got) != 0 {
		t.Errorf("Search(xyz) returned %d cities, want 0", len(got))
	}
}

func TestNearest(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     string
	}{
		{"central Istanbul", 41.01, 28.98, "İstanbul"},
		{"central Ankara", 39.92, 32.85, "Ankara"},
		{"near Izmir", 38.40, 27.15, "İzmir"},
		{"eastern border", 38.50, 43.40, "Van"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Nearest(tt.lat, tt.lng)
			if c.Name != tt.want {
				t.Errorf("Nearest(%v, %v) = %q, want %q", tt.lat, tt.lng, c.Name, tt.want)
			}
		})
	}
}
