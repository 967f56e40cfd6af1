package repository

import "errors"

// ErrSlotTaken is returned when a booking insert hits the (date, time)
// uniqueness constraint, or when the pre-check already sees the slot.
var ErrSlotTaken = errors.New("slot already booked")
