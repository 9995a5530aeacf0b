package model

import (
	"fmt"
	"time"

	"dost/shared/constant"
	"dost/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldTotalPrice    = "total_price"
	FieldBookingStatus = "booking_status"
	FieldPaymentStatus = "payment_status"
)

type Booking struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	RoomID        string    `db:"room_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	TotalPrice    int64     `db:"total_price"`
	BookingStatus string    `db:"booking_status"`
	PaymentStatus string    `db:"payment_status"`
	model.Metadata

	UserFullName string `db:"user_full_name" table:"users" column:"full_name"`
	UserEmail    string `db:"user_email"     table:"users" column:"email"`
	RoomName     string `db:"room_name"      table:"rooms" column:"roomname"`
	RoomType     string `db:"room_type"      table:"rooms" column:"roomtype"`
}

func (Booking) GetJoinQuery() string {
	return "JOIN users ON users.id = bookings.user_id JOIN rooms ON rooms.id = bookings.room_id"
}

// LegalTransitions returns the booking statuses reachable from the given one.
// Cancelled and Completed are terminal.
func LegalTransitions(status string) []string {
	switch status {
	case constant.BookingStatusPending:
		return []string{constant.BookingStatusApproved, constant.BookingStatusCancelled}
	case constant.BookingStatusApproved:
		return []string{constant.BookingStatusCancelled}
	default:
		return nil
	}
}

// ValidateTransition checks that moving from one booking status to another is
// allowed.
func ValidateTransition(from, to string) error {
	for _, allowed := range LegalTransitions(from) {
		if allowed == to {
			return nil
		}
	}

	return fmt.Errorf("booking status cannot change from %s to %s", from, to)
}
