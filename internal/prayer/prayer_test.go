package prayer

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		wantH   int
		wantM   int
		wantErr bool
	}{
		{"two-digit hour", "18:45", 18, 45, false},
		{"single-digit hour", "5:07", 5, 7, false},
		{"midnight", "00:00", 0, 0, false},
		{"end of day", "23:59", 23, 59, false},
		{"hour out of range", "24:00", 0, 0, true},
		{"minute out of range", "12:60", 0, 0, true},
		{"no colon", "1845", 0, 0, true},
		{"non-numeric", "ab:cd", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, err := parseClock(tt.s)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseClock(%q) expected error, got nil", tt.s)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClock(%q) unexpected error: %v", tt.s, err)
			}
			if h != tt.wantH || m != tt.wantM {
				t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tt.s, h, m, tt.wantH, tt.wantM)
			}
		})
	}
}

func TestAt(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(2025, 3, 1, 12, 30, 45, 0, loc)

	got, err := At("18:45 (EET)", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 3, 1, 18, 45, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("At = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("At location = %v, want %v", got.Location(), loc)
	}
}

func TestTimeFor(t *testing.T) {
	timings := sampleTimings()

	for _, name := range AllPrayerNames {
		raw, ok := TimeFor(timings, name)
		if !ok {
			t.Errorf("TimeFor(%q) reports unknown name", name)
		}
		if raw == "" {
			t.Errorf("TimeFor(%q) returned empty time", name)
		}
	}

	if _, ok := TimeFor(timings, "Tahajjud"); ok {
		t.Error("TimeFor should reject unknown names")
	}
}

func TestMainPrayers_Ordering(t *testing.T) {
	want := []string{"Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}
	if len(MainPrayers) != len(want) {
		t.Fatalf("MainPrayers has %d entries, want %d", len(MainPrayers), len(want))
	}
	for i, name := range want {
		if MainPrayers[i] != name {
			t.Errorf("MainPrayers[%d] = %q, want %q", i, MainPrayers[i], name)
		}
	}
}

func TestIsValidName(t *testing.T) {
	for _, name := range AllPrayerNames {
		if !IsValidName(name) {
			t.Errorf("IsValidName(%q) = false, want true", name)
		}
	}
	if IsValidName("Breakfast") {
		t.Error("IsValidName should reject unknown names")
	}
}
