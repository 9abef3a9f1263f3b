package prayer

import "regexp"

// clockPattern matches a one-or-two-digit hour, a colon, and a two-digit minute.
var clockPattern = regexp.MustCompile(`\d{1,2}:\d{2}`)

// Normalize extracts the first "H:mm"/"HH:mm" substring from a raw API time
// string, dropping trailing decorations like " (EET)" or " +03". The hour is
// returned verbatim, without re-padding.
//
// When no clock substring exists the input is returned unchanged rather than
// failing; unexpected upstream formats must not crash a rendering loop.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(raw string) string {
	if m := clockPattern.FindString(raw); m != "" {
		return m
	}
	return raw
}
