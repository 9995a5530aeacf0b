package seed

import (
	bookingDto "dost/internal/domains/booking/model/dto"
	paymentDto "dost/internal/domains/payment/model/dto"
	roomDto "dost/internal/domains/room/model/dto"
	userDto "dost/internal/domains/user/model/dto"
	"dost/shared"
)

// The matchers below mirror the LIKE/status filters the repositories apply in
// remote mode. An empty search term matches everything; the "All" sentinel
// disables a status filter. No match yields an empty slice, never an error.

func FilterUsers(users []userDto.UserResponse, term, status string) []userDto.UserResponse {
	matched := []userDto.UserResponse{}

	for _, user := range users {
		if term != "" &&
			!shared.ContainsFold(user.FullName, term) &&
			!shared.ContainsFold(user.Email, term) &&
			!shared.ContainsFold(user.Phone, term) {
			continue
		}

		if !shared.MatchesCategory(user.Status, status) {
			continue
		}

		matched = append(matched, user)
	}

	return matched
}

func FilterRooms(rooms []roomDto.RoomResponse, term, status string) []roomDto.RoomResponse {
	matched := []roomDto.RoomResponse{}

	for _, room := range rooms {
		if term != "" &&
			!shared.ContainsFold(room.RoomName, term) &&
			!shared.ContainsFold(room.RoomType, term) {
			continue
		}

		if !shared.MatchesCategory(room.Status, status) {
			continue
		}

		matched = append(matched, room)
	}

	return matched
}

func FilterBookings(bookings []bookingDto.BookingResponse, term, status string) []bookingDto.BookingResponse {
	matched := []bookingDto.BookingResponse{}

	for _, booking := range bookings {
		if term != "" &&
			!shared.ContainsFold(booking.ID, term) &&
			!shared.ContainsFold(booking.User.FullName, term) &&
			!shared.ContainsFold(booking.Room.RoomName, term) {
			continue
		}

		if !shared.MatchesCategory(booking.BookingStatus, status) {
			continue
		}

		matched = append(matched, booking)
	}

	return matched
}

func FilterPayments(payments []paymentDto.PaymentResponse, term, status string) []paymentDto.PaymentResponse {
	matched := []paymentDto.PaymentResponse{}

	for _, payment := range payments {
		if term != "" &&
			!shared.ContainsFold(payment.TransactionID, term) &&
			!shared.ContainsFold(payment.User.FullName, term) &&
			!shared.ContainsFold(payment.Room.RoomName, term) {
			continue
		}

		if !shared.MatchesCategory(payment.PaymentStatus, status) {
			continue
		}

		matched = append(matched, payment)
	}

	return matched
}
