package request

// CreateBookingRequest carries the multipart form fields of a booking
// submission. TimeFrom/TimeTo are the range flow used for pricing; Time
// is the stored slot label (a single catalog label or the "from - to"
// composite the frontend sends for range bookings).
type CreateBookingRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required"`
	BookingType string  `json:"bookingType" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`
	Time        string  `json:"time" validate:"required"`
	TimeFrom    string  `json:"timeFrom"`
	TimeTo      string  `json:"timeTo"`
	Reason      string  `json:"reason"`
}
