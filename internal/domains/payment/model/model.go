package model

import (
	"dost/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldAmount        = "amount"
	FieldTransactionID = "transaction_id"
	FieldPaymentStatus = "payment_status"
	FieldPaymentMethod = "payment_method"
)

type Payment struct {
	ID            string `db:"id"`
	BookingID     string `db:"booking_id"`
	UserID        string `db:"user_id"`
	RoomID        string `db:"room_id"`
	Amount        int64  `db:"amount"`
	TransactionID string `db:"transaction_id"`
	PaymentStatus string `db:"payment_status"`
	PaymentMethod string `db:"payment_method"`
	model.Metadata

	UserFullName string `db:"user_full_name" table:"users" column:"full_name"`
	UserEmail    string `db:"user_email"     table:"users" column:"email"`
	RoomName     string `db:"room_name"      table:"rooms" column:"roomname"`
	RoomType     string `db:"room_type"      table:"rooms" column:"roomtype"`
}

func (Payment) GetJoinQuery() string {
	return "JOIN users ON users.id = payments.user_id JOIN rooms ON rooms.id = payments.room_id"
}
