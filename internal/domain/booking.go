package domain

import (
	"time"

	"github.com/5n10sndkts-eng/Pulau-sub002/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking минимальная проекция бронирования, достаточная для проверки
// "есть ли активные бронирования на слот" перед удалением слота
type Booking struct {
	ID           int64
	UserID       int64
	ExperienceID int64
	BookingDate  time.Time
	StartTime    types.TimeString
	Guests       int
	Status       BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still holds capacity
// Активными считаются confirmed и pending бронирования
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ActiveStatuses статусы, блокирующие удаление слота
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
