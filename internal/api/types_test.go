package api

import "testing"

func TestHijriDate_Format(t *testing.T) {
	tests := []struct {
		name string
		h    HijriDate
		want string
	}{
		{
			name: "full date",
			h: HijriDate{
				Day:         "10",
				Month:       HijriMonth{Number: 9, En: "Ramadan"},
				Year:        "1446",
				Designation: HijriDesignation{Abbreviated: "AH"},
			},
			want: "10 Ramadan 1446 AH",
		},
		{
			name: "missing abbreviated defaults to AH",
			h: HijriDate{
				Day:   "1",
				Month: HijriMonth{Number: 1, En: "Muharram"},
				Year:  "1448",
			},
			want: "1 Muharram 1448 AH",
		},
		{
			name: "empty day returns empty",
			h: HijriDate{
				Month: HijriMonth{En: "Ramadan"},
				Year:  "1446",
			},
			want: "",
		},
		{
			name: "empty month returns empty",
			h: HijriDate{
				Day:  "15",
				Year: "1446",
			},
			want: "",
		},
		{
			name: "all empty returns empty",
			h:    HijriDate{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.h.Format()
			if got != tt.want {
				t.Errorf("HijriDate.Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHijriDate_IsRamadan(t *testing.T) {
	ramadan := HijriDate{Month: HijriMonth{Number: 9, En: "Ramadan"}}
	if !ramadan.IsRamadan() {
		t.Error("month 9 should report Ramadan")
	}

	shaban := HijriDate{Month: HijriMonth{Number: 8, En: "Sha'ban"}}
	if shaban.IsRamadan() {
		t.Error("month 8 should not report Ramadan")
	}
}
