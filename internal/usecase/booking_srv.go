package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"theater-booking/internal/data/entity"
	"theater-booking/internal/data/repository"
	"theater-booking/internal/dto/request"
	"theater-booking/internal/dto/response"
	"theater-booking/pkg/storage"
	"theater-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest, receipt *storage.ReceiptFile) (*response.BookingResponse, error)
	GetAllBookings(ctx context.Context, locale string) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID, locale string) (*response.BookingResponse, error)
	GetBookingsByUser(ctx context.Context, email, locale string) ([]response.BookingResponse, error)
	GetAvailableTimeSlots(ctx context.Context, date string) ([]string, error)
}

// ReceiptStore is the slice of the upload pipeline the booking flow
// needs: store a receipt, and remove it again when a late slot conflict
// orphans it.
type ReceiptStore interface {
	Upload(ctx context.Context, file *storage.ReceiptFile, ownerID string) (*storage.UploadedReceipt, error)
	Delete(ctx context.Context, key string) error
}

type bookingService struct {
	repo     *repository.Repository
	receipts ReceiptStore
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, receipts ReceiptStore, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		receipts: receipts,
		log:      log.With(zap.String("service", "booking")),
	}
}

func slotConflictError() error {
	return fmt.Errorf("%w - please choose another date or time", repository.ErrSlotTaken)
}

// CreateBooking runs the whole reservation sequence: validate, slot
// pre-check, user upsert, receipt upload, constraint-backed insert. Any
// failing step aborts the rest.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest, receipt *storage.ReceiptFile) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if math.IsNaN(req.Price) || math.IsInf(req.Price, 0) {
		return nil, fmt.Errorf("invalid price %f", req.Price)
	}

	date, err := utils.ParseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}

	// When the range fields are present the price is recomputed from the
	// catalog and must match what the form submitted. The legacy
	// single-slot flow has no range to price against and trusts the
	// validated positive price.
	if req.TimeFrom != "" && req.TimeTo != "" {
		expected := ComputePrice(req.BookingType, req.TimeFrom, req.TimeTo)
		if expected == 0 {
			return nil, fmt.Errorf("invalid time selection %s - %s for booking type %s", req.TimeFrom, req.TimeTo, req.BookingType)
		}
		if req.Price != expected {
			return nil, fmt.Errorf("invalid price %.2f, expected %.2f for %s - %s", req.Price, expected, req.TimeFrom, req.TimeTo)
		}
	}

	// Optimistic pre-check: fast conflict answer before any side effect.
	// The uniqueness constraint at insert time is the real guarantee.
	existing, err := s.repo.Booking.FindByDateTime(ctx, date, req.Time)
	if err != nil {
		return nil, fmt.Errorf("check slot availability: %w", err)
	}
	if existing != nil {
		s.log.Warn("Slot conflict on pre-check",
			zap.String("date", req.Date),
			zap.String("time", req.Time),
		)
		return nil, slotConflictError()
	}

	// Upsert user by email
	user, err := s.upsertUser(ctx, req)
	if err != nil {
		return nil, err
	}

	typeAr, typeEn := TranslateBookingType(req.BookingType)

	// Upload receipt if one was attached
	var uploaded *storage.UploadedReceipt
	var receiptURL *string
	if receipt != nil {
		uploaded, err = s.receipts.Upload(ctx, receipt, user.ID.String())
		if err != nil {
			s.log.Error("Receipt upload failed",
				zap.Error(err),
				zap.String("email", req.Email),
			)
			return nil, fmt.Errorf("upload receipt: %w", err)
		}
		receiptURL = &uploaded.URL
	}

	var reasonAr, reasonEn *string
	if req.Reason != "" {
		// Same free-text input stored under both languages
		reasonAr = &req.Reason
		reasonEn = &req.Reason
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     user.ID,
		TypeAr:     typeAr,
		TypeEn:     typeEn,
		Price:      req.Price,
		ReasonAr:   reasonAr,
		ReasonEn:   reasonEn,
		Date:       date,
		Time:       req.Time,
		ReceiptURL: receiptURL,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if uploaded != nil {
			// A racing request won the slot after our upload succeeded;
			// remove the now-orphaned blob, best effort.
			if delErr := s.receipts.Delete(ctx, uploaded.Key); delErr != nil {
				s.log.Warn("Failed to remove orphaned receipt",
					zap.Error(delErr),
					zap.String("key", uploaded.Key),
				)
			}
		}
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, slotConflictError()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("email", user.Email),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
		zap.Float64("price", req.Price),
		zap.Bool("has_receipt", receiptURL != nil),
	)

	resp := response.BookingToResponse(booking, user, "")
	return &resp, nil
}

// upsertUser finds the user by email and refreshes name/phone, or
// creates the row on first booking. Email and id stay stable.
func (s *bookingService) upsertUser(ctx context.Context, req *request.CreateBookingRequest) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}

	if err := s.repo.User.UpdateContact(ctx, user.ID, req.Name, req.Phone, now); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	user.Name = req.Name
	user.Phone = req.Phone
	user.UpdatedAt = now

	return user, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, locale string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	return s.buildBookingResponses(ctx, bookings, locale)
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID, locale string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	user, err := s.repo.User.FindByID(ctx, booking.UserID)
	if err != nil {
		return nil, fmt.Errorf("find booking user: %w", err)
	}

	resp := response.BookingToResponse(booking, user, locale)
	return &resp, nil
}

// GetBookingsByUser returns an empty list, not an error, for unknown
// emails.
func (s *bookingService) GetBookingsByUser(ctx context.Context, email, locale string) ([]response.BookingResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return []response.BookingResponse{}, nil
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking, user, locale)
	}

	return responses, nil
}

// GetAvailableTimeSlots returns the fixed catalog minus the labels taken
// on that date, in catalog order. Not transactional with concurrent
// reservations; the constraint-backed insert stays authoritative.
func (s *bookingService) GetAvailableTimeSlots(ctx context.Context, dateStr string) ([]string, error) {
	date, err := utils.ParseBookingDate(dateStr)
	if err != nil {
		return nil, err
	}

	bookedTimes, err := s.repo.Booking.FindTimesByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("get booked times: %w", err)
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	available := make([]string, 0, len(TimeSlots))
	for _, slot := range TimeSlots {
		if !booked[slot] {
			available = append(available, slot)
		}
	}

	return available, nil
}

// buildBookingResponses hydrates each booking with its user. A failing
// user lookup fails the whole request; the responses promise an
// embedded user.
func (s *bookingService) buildBookingResponses(ctx context.Context, bookings []*entity.Booking, locale string) ([]response.BookingResponse, error) {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		user, err := s.repo.User.FindByID(ctx, booking.UserID)
		if err != nil {
			return nil, fmt.Errorf("find booking user: %w", err)
		}
		responses[i] = response.BookingToResponse(booking, user, locale)
	}
	return responses, nil
}
