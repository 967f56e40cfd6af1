package usecase

import "testing"

func TestComputePriceRehearsals(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want float64
	}{
		{"one hour", "10:00 AM", "11:00 AM", 50},
		{"three hours", "10:00 AM", "1:00 PM", 150},
		{"afternoon", "2:00 PM", "6:00 PM", 200},
		{"full day", "10:00 AM", "10:00 PM", 600},
		{"evening", "8:00 PM", "10:00 PM", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePrice(BookingTypeRehearsals, tt.from, tt.to)
			if got != tt.want {
				t.Errorf("ComputePrice(rehearsals, %s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestComputePriceRehearsalsInvalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"same slot", "10:00 AM", "10:00 AM"},
		{"reversed", "1:00 PM", "10:00 AM"},
		{"off catalog from", "10:30 AM", "1:00 PM"},
		{"off catalog to", "10:00 AM", "11:00 PM"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePrice(BookingTypeRehearsals, tt.from, tt.to); got != 0 {
				t.Errorf("ComputePrice(rehearsals, %s, %s) = %v, want 0", tt.from, tt.to, got)
			}
		})
	}
}

func TestComputePriceEvents(t *testing.T) {
	blocks := [][2]string{
		{"10:00 AM", "2:00 PM"},
		{"2:00 PM", "6:00 PM"},
		{"6:00 PM", "10:00 PM"},
	}

	for _, block := range blocks {
		if got := ComputePrice(BookingTypeEvents, block[0], block[1]); got != 300 {
			t.Errorf("ComputePrice(events, %s, %s) = %v, want 300", block[0], block[1], got)
		}
	}
}

func TestComputePriceEventsInvalid(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"eight hour span", "10:00 AM", "6:00 PM"},
		{"rehearsal style pair", "11:00 AM", "3:00 PM"},
		{"reversed block", "2:00 PM", "10:00 AM"},
		{"half block", "10:00 AM", "12:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputePrice(BookingTypeEvents, tt.from, tt.to); got != 0 {
				t.Errorf("ComputePrice(events, %s, %s) = %v, want 0", tt.from, tt.to, got)
			}
		})
	}
}

func TestComputePriceUnknownType(t *testing.T) {
	if got := ComputePrice("wedding", "10:00 AM", "2:00 PM"); got != 0 {
		t.Errorf("ComputePrice(wedding, ...) = %v, want 0", got)
	}
}

func TestTranslateBookingType(t *testing.T) {
	ar, en := TranslateBookingType("premium")
	if en != "Premium Theater Experience" {
		t.Errorf("TranslateBookingType(premium) en = %q", en)
	}
	if ar == "" || ar == "premium" {
		t.Errorf("TranslateBookingType(premium) ar = %q, want translated string", ar)
	}

	// Unknown codes pass through verbatim in both languages
	ar, en = TranslateBookingType("rehearsals")
	if ar != "rehearsals" || en != "rehearsals" {
		t.Errorf("TranslateBookingType(rehearsals) = (%q, %q), want passthrough", ar, en)
	}
}
