package adaptor

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"theater-booking/internal/dto/request"
	"theater-booking/internal/usecase"
	"theater-booking/pkg/storage"
	"theater-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Transport-level cap on the receipt file. The storage layer applies its
// own, larger limit; both must pass.
const maxReceiptFormSize = 5 << 20 // 5 MiB

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (multipart form)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxReceiptFormSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid price", nil)
		return
	}

	req := &request.CreateBookingRequest{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		BookingType: r.FormValue("bookingType"),
		Price:       price,
		Date:        r.FormValue("date"),
		Time:        r.FormValue("time"),
		TimeFrom:    r.FormValue("timeFrom"),
		TimeTo:      r.FormValue("timeTo"),
		Reason:      r.FormValue("reason"),
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	receipt, err := h.readReceiptFile(r)
	if err != nil {
		if strings.Contains(err.Error(), "exceeds") {
			utils.ResponseTooLarge(w, err.Error())
			return
		}
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), req, receipt)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// readReceiptFile pulls the optional receipt out of the multipart form.
func (h *BookingHandler) readReceiptFile(r *http.Request) (*storage.ReceiptFile, error) {
	file, header, err := r.FormFile("receipt")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.New("invalid receipt upload")
	}
	defer file.Close()

	if header.Size > maxReceiptFormSize {
		return nil, errors.New("receipt exceeds the 5MB upload limit")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.New("invalid receipt upload")
	}

	return &storage.ReceiptFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// GetAllBookings handles GET /api/bookings
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")

	bookings, err := h.service.GetAllBookings(r.Context(), locale)
	if err != nil {
		h.handleServiceError(w, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetAvailableTimeSlots handles GET /api/bookings/available-times?date=
func (h *BookingHandler) GetAvailableTimeSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Date is required", nil)
		return
	}

	slots, err := h.service.GetAvailableTimeSlots(r.Context(), date)
	if err != nil {
		h.handleServiceError(w, err, "get available time slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetBookingsByUser handles GET /api/bookings/user/{email}
func (h *BookingHandler) GetBookingsByUser(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}
	locale := r.URL.Query().Get("locale")

	bookings, err := h.service.GetBookingsByUser(r.Context(), email, locale)
	if err != nil {
		h.handleServiceError(w, err, "get bookings by user")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}
	locale := r.URL.Query().Get("locale")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID, locale)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// handleServiceError maps service errors onto the response envelope
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already booked"):
		h.log.Warn(operation+" failed - slot conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "upload"):
		// Retry budget exhausted against the blob store; surface the
		// reason instead of a generic 500 body
		h.log.Error(operation+" failed - receipt upload",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
