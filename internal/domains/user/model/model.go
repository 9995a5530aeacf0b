package model

import "dost/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldFullName      = "full_name"
	FieldPhone         = "phone"
	FieldRole          = "role"
	FieldStatus        = "status"
	FieldAvatarURL     = "avatar_url"
	FieldTotalBookings = "total_bookings"
	FieldTotalSpent    = "total_spent"
)

type User struct {
	ID            string `db:"id"`
	Email         string `db:"email"`
	FullName      string `db:"full_name"`
	Phone         string `db:"phone"`
	Role          string `db:"role"`
	Status        string `db:"status"`
	AvatarURL     string `db:"avatar_url"`
	Password      string `db:"password"`
	TotalBookings int    `db:"total_bookings"`
	TotalSpent    int64  `db:"total_spent"`
	model.Metadata
}
