// Package seed holds the static dataset served in demo mode. Every accessor
// returns a fresh copy ordered most-recent-first, so callers can filter or
// mutate the slices without bleeding state between requests.
package seed

import (
	"time"

	authDto "dost/internal/domains/auth/model/dto"
	bookingDto "dost/internal/domains/booking/model/dto"
	paymentDto "dost/internal/domains/payment/model/dto"
	roomDto "dost/internal/domains/room/model/dto"
	settingsDto "dost/internal/domains/settings/model/dto"
	statsDto "dost/internal/domains/stats/model/dto"
	userDto "dost/internal/domains/user/model/dto"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	"dost/shared/timezone"
)

func day(year int, month time.Month, dayOfMonth int) string {
	t := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, timezone.GetLocation())

	return timezone.Format(t, constant.DateFormat)
}

func dateOnly(year int, month time.Month, dayOfMonth int) string {
	t := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, timezone.GetLocation())

	return timezone.Format(t, constant.DateOnlyFormat)
}

func metadata(created string) gDto.Metadata {
	return gDto.Metadata{
		CreatedAt:  created,
		ModifiedAt: created,
	}
}

// AdminUser is the projection returned by demo-mode sign-in.
func AdminUser() authDto.AuthUser {
	return authDto.AuthUser{
		ID:       "admin1",
		Email:    constant.DemoAdminEmail,
		FullName: "Admin User",
		Role:     constant.RoleAdmin,
	}
}

func Users() []userDto.UserResponse {
	return []userDto.UserResponse{
		{
			ID: "u4", FullName: "Priya Patel", Email: "priya@example.com",
			Phone: "+91 7777766666", Role: constant.RoleClient, Status: constant.UserStatusActive,
			TotalBookings: 8, TotalSpent: 22000,
			Metadata: metadata(day(2023, time.August, 5)),
		},
		{
			ID: "u3", FullName: "Vikram Singh", Email: "vikram@example.com",
			Phone: "+91 8888877777", Role: constant.RoleClient, Status: constant.UserStatusBlocked,
			TotalBookings: 2, TotalSpent: 3200,
			Metadata: metadata(day(2023, time.June, 10)),
		},
		{
			ID: "u2", FullName: "Anjali Gupta", Email: "anjali@example.com",
			Phone: "+91 9123456789", Role: constant.RoleClient, Status: constant.UserStatusActive,
			TotalBookings: 5, TotalSpent: 18500,
			Metadata: metadata(day(2023, time.March, 20)),
		},
		{
			ID: "u1", FullName: "Rahul Sharma", Email: "rahul@example.com",
			Phone: "+91 9876543210", Role: constant.RoleClient, Status: constant.UserStatusActive,
			TotalBookings: 12, TotalSpent: 45000,
			Metadata: metadata(day(2023, time.January, 15)),
		},
	}
}

func Rooms() []roomDto.RoomResponse {
	return []roomDto.RoomResponse{
		{
			ID: "r3", RoomName: "Deluxe King 305", RoomType: constant.RoomTypeDeluxe,
			Price: 3200, Capacity: 3, Status: constant.RoomStatusAvailable,
			Amenities: []string{"WiFi", "AC"},
			Images:    []string{"https://images.unsplash.com/photo-1566665797739-1674de7a421a"},
			Metadata:  metadata(day(2023, time.September, 3)),
		},
		{
			ID: "r2", RoomName: "Luxury Suite 202", RoomType: constant.RoomTypeSuite,
			Price: 4500, Capacity: 2, Status: constant.RoomStatusBooked,
			Amenities: []string{"WiFi", "AC", "TV", "Mini Bar"},
			Images:    []string{"https://images.unsplash.com/photo-1590490360182-c33d57733427"},
			Metadata:  metadata(day(2023, time.September, 2)),
		},
		{
			ID: "r1", RoomName: "Superior Room 101", RoomType: constant.RoomTypeSingle,
			Price: 1500, Capacity: 1, Status: constant.RoomStatusAvailable,
			Amenities: []string{"WiFi", "AC", "TV"},
			Images:    []string{"https://images.unsplash.com/photo-1631049307264-da0ec9d70304"},
			Metadata:  metadata(day(2023, time.September, 1)),
		},
	}
}

func Bookings() []bookingDto.BookingResponse {
	return []bookingDto.BookingResponse{
		{
			ID: "b3", UserID: "u4", RoomID: "r3",
			CheckIn: dateOnly(2023, time.December, 1), CheckOut: dateOnly(2023, time.December, 5),
			TotalPrice:    12800,
			BookingStatus: constant.BookingStatusCancelled, PaymentStatus: constant.PaymentStatusFailed,
			User: bookingDto.BookingUser{ID: "u4", FullName: "Priya Patel", Email: "priya@example.com"},
			Room: bookingDto.BookingRoom{ID: "r3", RoomName: "Deluxe King 305", RoomType: constant.RoomTypeDeluxe},
			Metadata: metadata(day(2023, time.November, 18)),
		},
		{
			ID: "b2", UserID: "u2", RoomID: "r2",
			CheckIn: dateOnly(2023, time.November, 21), CheckOut: dateOnly(2023, time.November, 25),
			TotalPrice:    18000,
			BookingStatus: constant.BookingStatusPending, PaymentStatus: constant.PaymentStatusPending,
			User: bookingDto.BookingUser{ID: "u2", FullName: "Anjali Gupta", Email: "anjali@example.com"},
			Room: bookingDto.BookingRoom{ID: "r2", RoomName: "Luxury Suite 202", RoomType: constant.RoomTypeSuite},
			Metadata: metadata(day(2023, time.November, 16)),
		},
		{
			ID: "b1", UserID: "u1", RoomID: "r1",
			CheckIn: dateOnly(2023, time.November, 20), CheckOut: dateOnly(2023, time.November, 22),
			TotalPrice:    3000,
			BookingStatus: constant.BookingStatusApproved, PaymentStatus: constant.PaymentStatusPaid,
			User: bookingDto.BookingUser{ID: "u1", FullName: "Rahul Sharma", Email: "rahul@example.com"},
			Room: bookingDto.BookingRoom{ID: "r1", RoomName: "Superior Room 101", RoomType: constant.RoomTypeSingle},
			Metadata: metadata(day(2023, time.November, 15)),
		},
	}
}

func Payments() []paymentDto.PaymentResponse {
	return []paymentDto.PaymentResponse{
		{
			ID: "p3", BookingID: "b3", UserID: "u4", RoomID: "r3",
			Amount: 12800, TransactionID: "TXN112233",
			PaymentStatus: constant.PaymentStatusFailed, PaymentMethod: constant.PaymentMethodUPI,
			User: paymentDto.PaymentUser{ID: "u4", FullName: "Priya Patel", Email: "priya@example.com"},
			Room: paymentDto.PaymentRoom{ID: "r3", RoomName: "Deluxe King 305", RoomType: constant.RoomTypeDeluxe},
			Metadata: metadata(day(2023, time.November, 18)),
		},
		{
			ID: "p2", BookingID: "b2", UserID: "u2", RoomID: "r2",
			Amount: 18000, TransactionID: "TXN993344",
			PaymentStatus: constant.PaymentStatusPending, PaymentMethod: constant.PaymentMethodUPI,
			User: paymentDto.PaymentUser{ID: "u2", FullName: "Anjali Gupta", Email: "anjali@example.com"},
			Room: paymentDto.PaymentRoom{ID: "r2", RoomName: "Luxury Suite 202", RoomType: constant.RoomTypeSuite},
			Metadata: metadata(day(2023, time.November, 16)),
		},
		{
			ID: "p1", BookingID: "b1", UserID: "u1", RoomID: "r1",
			Amount: 3000, TransactionID: "TXN882211",
			PaymentStatus: constant.PaymentStatusPaid, PaymentMethod: constant.PaymentMethodCard,
			User: paymentDto.PaymentUser{ID: "u1", FullName: "Rahul Sharma", Email: "rahul@example.com"},
			Room: paymentDto.PaymentRoom{ID: "r1", RoomName: "Superior Room 101", RoomType: constant.RoomTypeSingle},
			Metadata: metadata(day(2023, time.November, 15)),
		},
	}
}

// Stats is the fixed dashboard snapshot shown without a remote backend. The
// series are illustrative, not derived from the seed records.
func Stats() statsDto.DashboardStatsResponse {
	return statsDto.DashboardStatsResponse{
		TotalRevenue:        845200,
		MonthlyRevenue:      124500,
		ActiveBookings:      128,
		PendingPayments:     45000,
		FailedPaymentsCount: 5,
		AvailableRooms:      12,
		TotalRooms:          45,
		TotalUsers:          450,
		RevenueByMonth: []statsDto.MonthlyRevenue{
			{Month: "Jul", Amount: 45000}, {Month: "Aug", Amount: 32000},
			{Month: "Sep", Amount: 28000}, {Month: "Oct", Amount: 55000},
			{Month: "Nov", Amount: 72000}, {Month: "Dec", Amount: 84000},
		},
		BookingTrends: []statsDto.BookingTrend{
			{Day: "Mon", Count: 12}, {Day: "Tue", Count: 19},
			{Day: "Wed", Count: 15}, {Day: "Thu", Count: 22},
			{Day: "Fri", Count: 30}, {Day: "Sat", Count: 35},
			{Day: "Sun", Count: 28},
		},
	}
}

func Settings() settingsDto.AppConfigResponse {
	return settingsDto.AppConfigResponse{
		SiteTitle:    "Dost Stays",
		ContactEmail: "hello@dostapp.com",
		ContactPhone: "+91 9000000000",
		LogoURL:      "https://via.placeholder.com/160x48",
		FaviconURL:   "https://via.placeholder.com/32",
		ThemeColor:   "#0f766e",
		FooterText:   "Dost Stays. Comfortable rooms, honest prices.",
		SocialLinks: settingsDto.SocialLinks{
			Instagram: "https://instagram.com/doststays",
			Facebook:  "https://facebook.com/doststays",
			Twitter:   "https://twitter.com/doststays",
		},
	}
}
