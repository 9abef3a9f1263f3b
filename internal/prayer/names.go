package prayer

// namesTR maps canonical prayer names to their Turkish display labels.
var namesTR = map[string]string{
	"Imsak":    "İmsak",
	"Fajr":     "Sabah",
	"Sunrise":  "Güneş",
	"Dhuhr":    "Öğle",
	"Asr":      "İkindi",
	"Sunset":   "Gün Batımı",
	"Maghrib":  "Akşam (İftar)",
	"Isha":     "Yatsı",
	"Midnight": "Gece Yarısı",
}

// Icons maps canonical prayer names to their display glyphs.
var Icons = map[string]string{
	"Imsak":   "🌙",
	"Fajr":    "🌅",
	"Sunrise": "☀️",
	"Dhuhr":   "🌞",
	"Asr":     "🌤️",
	"Maghrib": "🌇",
	"Isha":    "🌃",
}

// DisplayName returns the localized label for a prayer name. The canonical
// English name doubles as the "en" label; unknown locales and unknown names
// fall back to the canonical name.
func DisplayName(name, lang string) string {
	if lang == "tr" {
		if label, ok := namesTR[name]; ok {
			return label
		}
	}
	return name
}

// Icon returns the display glyph for a prayer name, or "" when none exists.
func Icon(name string) string {
	return Icons[name]
}
