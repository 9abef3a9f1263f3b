package prayer

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		prayer string
		lang   string
		want   string
	}{
		{"turkish label", "Maghrib", "tr", "Akşam (İftar)"},
		{"turkish imsak", "Imsak", "tr", "İmsak"},
		{"english is canonical", "Maghrib", "en", "Maghrib"},
		{"unknown locale falls back", "Fajr", "de", "Fajr"},
		{"unknown name falls back", "Tahajjud", "tr", "Tahajjud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayName(tt.prayer, tt.lang)
			if got != tt.want {
				t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.prayer, tt.lang, got, tt.want)
			}
		})
	}
}

func TestDisplayName_AllMainPrayersHaveTurkishLabels(t *testing.T) {
	for _, name := range MainPrayers {
		if DisplayName(name, "tr") == name {
			t.Errorf("missing Turkish label for %q", name)
		}
	}
}

func TestIcon(t *testing.T) {
	if Icon("Imsak") == "" {
		t.Error("Imsak should have an icon")
	}
	if Icon("Midnight") != "" {
		t.Error("Midnight has no icon in the lookup table")
	}
}
