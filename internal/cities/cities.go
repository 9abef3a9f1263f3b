// Package cities holds the Turkish province list used for city selection
// and for labelling auto-detected coordinates with the nearest province.
package cities

import (
	"strings"
	"unicode"
)

// City is a province center with its coordinates.
type City struct {
	Name string
	Lat  float64
	Lng  float64
}

// All lists the 81 Turkish provinces in alphabetical order.
var All = []City{
	{"Adana", 37.0000, 35.3213},
	{"Adıyaman", 37.7648, 38.2786},
	{"Afyonkarahisar", 38.7507, 30.5567},
	{"Ağrı", 39.7191, 43.0503},
	{"Aksaray", 38.3687, 34.0370},
	{"Amasya", 40.6499, 35.8353},
	{"Ankara", 39.9208, 32.8541},
	{"Antalya", 36.8841, 30.7056},
	{"Ardahan", 41.1105, 42.7022},
	{"Artvin", 41.1828, 41.8183},
	{"Aydın", 37.8560, 27.8416},
	{"Balıkesir", 39.6484, 27.8826},
	{"Bartın", 41.6344, 32.3375},
	{"Batman", 37.8812, 41.1351},
	{"Bayburt", 40.2552, 40.2249},
	{"Bilecik", 40.1501, 29.9831},
	{"Bingöl", 38.8854, 40.4980},
	{"Bitlis", 38.4006, 42.1095},
	{"Bolu", 40.7392, 31.6089},
	{"Burdur", 37.7203, 30.2908},
	{"Bursa", 40.1885, 29.0610},
	{"Çanakkale", 40.1553, 26.4142},
	{"Çankırı", 40.6013, 33.6134},
	{"Çorum", 40.5506, 34.9556},
	{"Denizli", 37.7765, 29.0864},
	{"Diyarbakır", 37.9144, 40.2306},
	{"Düzce", 40.8438, 31.1565},
	{"Edirne", 41.6818, 26.5623},
	{"Elazığ", 38.6810, 39.2264},
	{"Erzincan", 39.7500, 39.5000},
	{"Erzurum", 39.9000, 41.2700},
	{"Eskişehir", 39.7767, 30.5206},
	{"Gaziantep", 37.0662, 37.3833},
	{"Giresun", 40.9128, 38.3895},
	{"Gümüşhane", 40.4386, 39.5086},
	{"Hakkari", 37.5833, 43.7333},
	{"Hatay", 36.4018, 36.3498},
	{"Iğdır", 39.9167, 44.0333},
	{"Isparta", 37.7648, 30.5566},
	{"İstanbul", 41.0082, 28.9784},
	{"İzmir", 38.4192, 27.1287},
	{"Kahramanmaraş", 37.5858, 36.9371},
	{"Karabük", 41.2061, 32.6204},
	{"Karaman", 37.1759, 33.2287},
	{"Kars", 40.6167, 43.1000},
	{"Kastamonu", 41.3887, 33.7827},
	{"Kayseri", 38.7312, 35.4787},
	{"Kırıkkale", 39.8468, 33.5153},
	{"Kırklareli", 41.7333, 27.2167},
	{"Kırşehir", 39.1425, 34.1709},
	{"Kilis", 36.7184, 37.1212},
	{"Kocaeli", 40.8533, 29.8815},
	{"Konya", 37.8667, 32.4833},
	{"Kütahya", 39.4167, 29.9833},
	{"Malatya", 38.3552, 38.3095},
	{"Manisa", 38.6191, 27.4289},
	{"Mardin", 37.3212, 40.7245},
	{"Mersin", 36.8000, 34.6333},
	{"Muğla", 37.2153, 28.3636},
	{"Muş", 38.9462, 41.7539},
	{"Nevşehir", 38.6939, 34.6857},
	{"Niğde", 37.9667, 34.6833},
	{"Ordu", 40.9839, 37.8764},
	{"Osmaniye", 37.2130, 36.1763},
	{"Rize", 41.0201, 40.5234},
	{"Sakarya", 40.6940, 30.4358},
	{"Samsun", 41.2928, 36.3313},
	{"Siirt", 37.9333, 41.9500},
	{"Sinop", 42.0231, 35.1531},
	{"Sivas", 39.7477, 37.0179},
	{"Şanlıurfa", 37.1591, 38.7969},
	{"Şırnak", 37.4187, 42.4918},
	{"Tekirdağ", 40.9833, 27.5167},
	{"Tokat", 40.3167, 36.5500},
	{"Trabzon", 41.0015, 39.7178},
	{"Tunceli", 39.5401, 39.4388},
	{"Uşak", 38.6823, 29.4082},
	{"Van", 38.4891, 43.4089},
	{"Yalova", 40.6500, 29.2667},
	{"Yozgat", 39.8181, 34.8147},
	{"Zonguldak", 41.4564, 31.7987},
}

// lower folds a string using Turkish casing so "İ" matches "i" and
// "I" matches "ı" the way a Turkish user expects.
func lower(s string) string {
	return strings.Map(func(r rune) rune {
		return unicode.TurkishCase.ToLower(r)
	}, s)
}

// Find returns the city whose name matches, ignoring Turkish case.
func Find(name string) (City, bool) {
	want := lower(name)
	for _, c := range All {
		if lower(c.Name) == want {
			return c, true
		}
	}
	return City{}, false
}

// Search returns all cities whose name contains the query, ignoring
// Turkish case. An empty query returns every city.
func Search(query string) []City {
	q := lower(query)
	var out []City
	for _, c := range All {
		if strings.Contains(lower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}

// Nearest returns the city closest to the given coordinates using the
// squared-distance comparison; exact great-circle distance is not needed
// to pick a label for detected coordinates.
func Nearest(lat, lng float64) City {
	best := All[0]
	bestDist := distSq(best, lat, lng)
	for _, c := range All[1:] {
		if d := distSq(c, lat, lng); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distSq(c City, lat, lng float64) float64 {
	dLat := c.Lat - lat
	dLng := c.Lng - lng
	return dLat*dLat + dLng*dLng
}
