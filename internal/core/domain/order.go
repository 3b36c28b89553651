package domain

import (
	"errors"
	"time"
)

// OrderStatus is the lifecycle state of a booking.
type OrderStatus string

const (
	OrderConfirmed OrderStatus = "confirmed"
	OrderCancelled OrderStatus = "cancelled"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidBookingDates = errors.New("invalid booking dates")
	ErrOrderCancelled      = errors.New("order already cancelled")
)

// Order is a booking of a room for a date range. TotalPrice is computed at
// creation time from the room price and any voucher discount, and is not
// recalculated afterwards.
type Order struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Reference   string      `json:"reference" bson:"reference"`
	UserID      string      `json:"user_id" bson:"user_id"`
	RoomID      string      `json:"room_id" bson:"room_id"`
	EmployeeID  string      `json:"employee_id,omitempty" bson:"employee_id,omitempty"`
	StartDate   time.Time   `json:"start_date" bson:"start_date"`
	EndDate     time.Time   `json:"end_date" bson:"end_date"`
	TotalPrice  float64     `json:"total_price" bson:"total_price"`
	VoucherCode string      `json:"voucher_code,omitempty" bson:"voucher_code,omitempty"`
	Status      OrderStatus `json:"status" bson:"status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
