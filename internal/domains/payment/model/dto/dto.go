package dto

import (
	"dost/internal/domains/payment/model"
	gDto "dost/shared/dto"
)

// PaymentUser is the payer projection embedded in payment responses.
type PaymentUser struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// PaymentRoom is the room projection embedded in payment responses.
type PaymentRoom struct {
	ID       string `json:"id"`
	RoomName string `json:"roomname"`
	RoomType string `json:"roomtype"`
}

type PaymentResponse struct {
	ID            string      `json:"id"`
	BookingID     string      `json:"booking_id"`
	UserID        string      `json:"user_id"`
	RoomID        string      `json:"room_id"`
	Amount        int64       `json:"amount"`
	TransactionID string      `json:"transaction_id"`
	PaymentStatus string      `json:"payment_status"`
	PaymentMethod string      `json:"payment_method"`
	User          PaymentUser `json:"user"`
	Room          PaymentRoom `json:"room"`
	gDto.Metadata
}

func (p *PaymentResponse) FromModel(model model.Payment) {
	p.ID = model.ID
	p.BookingID = model.BookingID
	p.UserID = model.UserID
	p.RoomID = model.RoomID
	p.Amount = model.Amount
	p.TransactionID = model.TransactionID
	p.PaymentStatus = model.PaymentStatus
	p.PaymentMethod = model.PaymentMethod
	p.User = PaymentUser{
		ID:       model.UserID,
		FullName: model.UserFullName,
		Email:    model.UserEmail,
	}
	p.Room = PaymentRoom{
		ID:       model.RoomID,
		RoomName: model.RoomName,
		RoomType: model.RoomType,
	}
	p.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalData int               `json:"total_data"`
}

func (g *GetPaymentsResponse) FromModels(models []model.Payment, totalData int) {
	g.TotalData = totalData

	g.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		g.Payments[i].FromModel(mod)
	}
}
