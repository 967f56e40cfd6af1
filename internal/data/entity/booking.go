package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one reserved slot. Date is calendar-day granularity (pinned
// to midnight UTC) and Time is a display label, either a single catalog
// slot or a "from - to" composite. (date, time) is unique.
type Booking struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	TypeAr     string    `db:"type_ar"`
	TypeEn     string    `db:"type_en"`
	Price      float64   `db:"price"`
	ReasonAr   *string   `db:"reason_ar"`
	ReasonEn   *string   `db:"reason_en"`
	Date       time.Time `db:"date"`
	Time       string    `db:"time"`
	ReceiptURL *string   `db:"receipt_url"`
}
