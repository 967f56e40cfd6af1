package response

import (
	"time"

	"theater-booking/internal/data/entity"
)

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// BookingResponse always carries both language columns; Type and Reason
// are the locale-resolved convenience fields.
type BookingResponse struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	TypeAr     string        `json:"typeAr"`
	TypeEn     string        `json:"typeEn"`
	Type       string        `json:"type"`
	Price      float64       `json:"price"`
	ReasonAr   *string       `json:"reasonAr"`
	ReasonEn   *string       `json:"reasonEn"`
	Reason     *string       `json:"reason,omitempty"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	ReceiptURL *string       `json:"receiptUrl"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	User       *UserResponse `json:"user,omitempty"`
}

func UserToResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}

// BookingToResponse joins a booking with its user. The stored record
// keeps both languages; locale only selects the convenience fields.
func BookingToResponse(booking *entity.Booking, user *entity.User, locale string) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		UserID:     booking.UserID.String(),
		TypeAr:     booking.TypeAr,
		TypeEn:     booking.TypeEn,
		Type:       booking.TypeEn,
		Price:      booking.Price,
		ReasonAr:   booking.ReasonAr,
		ReasonEn:   booking.ReasonEn,
		Reason:     booking.ReasonEn,
		Date:       booking.Date.Format("2006-01-02"),
		Time:       booking.Time,
		ReceiptURL: booking.ReceiptURL,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
		User:       UserToResponse(user),
	}

	if locale == "ar" {
		resp.Type = booking.TypeAr
		resp.Reason = booking.ReasonAr
	}

	return resp
}
