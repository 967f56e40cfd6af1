package usecase

import (
	"theater-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, receipts ReceiptStore, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, receipts, log),
	}
}
