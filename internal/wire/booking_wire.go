package wire

import (
	"theater-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// The whole booking API is public; the form collects contact info but
// there are no accounts.
func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// POST /api/bookings - Submit a reservation (multipart form)
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings - List all bookings
		r.Get("/", bookingHandler.GetAllBookings)

		// GET /api/bookings/available-times?date= - Free slots for a date
		r.Get("/available-times", bookingHandler.GetAvailableTimeSlots)

		// GET /api/bookings/user/{email} - Booking history by email
		r.Get("/user/{email}", bookingHandler.GetBookingsByUser)

		// GET /api/bookings/{id} - Single booking
		r.Get("/{id}", bookingHandler.GetBookingByID)
	})
}
