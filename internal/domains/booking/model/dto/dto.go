package dto

import (
	"dost/internal/domains/booking/model"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/timezone"
)

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Approved Cancelled Completed"`
}

// BookingUser is the guest projection embedded in booking responses.
type BookingUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// BookingRoom is the room projection embedded in booking responses.
type BookingRoom struct {
	ID       string `json:"id"`
	RoomName string `json:"roomname"`
	RoomType string `json:"roomtype"`
}

type BookingResponse struct {
	ID            string      `json:"id"`
	UserID        string      `json:"user_id"`
	RoomID        string      `json:"room_id"`
	CheckIn       string      `json:"check_in"`
	CheckOut      string      `json:"check_out"`
	TotalPrice    int64       `json:"total_price"`
	BookingStatus string      `json:"booking_status"`
	PaymentStatus string      `json:"payment_status"`
	User          BookingUser `json:"user"`
	Room          BookingRoom `json:"room"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.UserID = model.UserID
	b.RoomID = model.RoomID
	b.CheckIn = timezone.Format(model.CheckIn, constant.DateOnlyFormat)
	b.CheckOut = timezone.Format(model.CheckOut, constant.DateOnlyFormat)
	b.TotalPrice = model.TotalPrice
	b.BookingStatus = model.BookingStatus
	b.PaymentStatus = model.PaymentStatus
	b.User = BookingUser{
		ID:       model.UserID,
		FullName: model.UserFullName,
		Email:    model.UserEmail,
	}
	b.Room = BookingRoom{
		ID:       model.RoomID,
		RoomName: model.RoomName,
		RoomType: model.RoomType,
	}
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking, totalData int) {
	g.TotalData = totalData

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}
