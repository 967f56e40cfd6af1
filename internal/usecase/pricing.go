package usecase

// Fixed catalogs and price table for the theater. All of these are
// compile-time constants of the pricing rules; none of them is persisted
// or mutated at runtime.

const (
	// BookingTypeRehearsals is billed per whole-hour slot.
	BookingTypeRehearsals = "rehearsals"
	// BookingTypeEvents is billed per fixed 4-hour block.
	BookingTypeEvents = "events"

	rehearsalHourlyRate = 50
	eventBlockRate      = 300
)

// TimeSlots is the legacy single-slot catalog served by the availability
// endpoint. The range flow below does not feed into it; a range booking
// stores the composite "from - to" label, which never collides with
// these labels.
var TimeSlots = []string{
	"10:00 AM",
	"12:00 PM",
	"2:00 PM",
	"4:00 PM",
	"6:00 PM",
	"8:00 PM",
	"10:00 PM",
}

// rehearsalSlots are the hourly boundaries from 10:00 through 22:00,
// 12-hour labeled. A rehearsal runs from one boundary to a strictly
// later one.
var rehearsalSlots = []string{
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
	"6:00 PM",
	"7:00 PM",
	"8:00 PM",
	"9:00 PM",
	"10:00 PM",
}

// eventBlocks are the only valid from/to pairs for events.
var eventBlocks = [][2]string{
	{"10:00 AM", "2:00 PM"},
	{"2:00 PM", "6:00 PM"},
	{"6:00 PM", "10:00 PM"},
}

type bookingTypeTranslation struct {
	Ar string
	En string
}

// Display strings per booking type code. Unknown codes pass through
// verbatim in both languages.
var bookingTypeTranslations = map[string]bookingTypeTranslation{
	"premium":  {Ar: "تجربة المسرح المميزة", En: "Premium Theater Experience"},
	"standard": {Ar: "عرض المسرح القياسي", En: "Standard Theater Show"},
	"matinee":  {Ar: "عرض ما بعد الظهر", En: "Matinee Performance"},
	"group":    {Ar: "حجز جماعي (5+ أشخاص)", En: "Group Booking (5+ people)"},
	"vip":      {Ar: "باقة المسرح VIP", En: "VIP Theater Package"},
}

// TranslateBookingType resolves the bilingual display strings for a type
// code.
func TranslateBookingType(code string) (typeAr, typeEn string) {
	if t, ok := bookingTypeTranslations[code]; ok {
		return t.Ar, t.En
	}
	return code, code
}

// ComputePrice maps a booking type and time range to a price. A zero
// price means the request is invalid and must be rejected by the caller.
// Pure function; it never touches storage.
func ComputePrice(bookingType, timeFrom, timeTo string) float64 {
	switch bookingType {
	case BookingTypeRehearsals:
		from := slotIndex(rehearsalSlots, timeFrom)
		to := slotIndex(rehearsalSlots, timeTo)
		if from == -1 || to == -1 || to <= from {
			return 0
		}
		return float64(to-from) * rehearsalHourlyRate

	case BookingTypeEvents:
		for _, block := range eventBlocks {
			if block[0] == timeFrom && block[1] == timeTo {
				return eventBlockRate
			}
		}
		return 0

	default:
		return 0
	}
}

func slotIndex(slots []string, label string) int {
	for i, s := range slots {
		if s == label {
			return i
		}
	}
	return -1
}
