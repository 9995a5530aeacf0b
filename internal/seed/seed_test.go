package seed_test

import (
	"testing"

	"dost/internal/seed"
	"dost/shared/constant"
)

func TestRooms_ReturnsFreshCopies(t *testing.T) {
	first := seed.Rooms()
	first[0].RoomName = "mutated"
	first[0].Amenities[0] = "mutated"

	second := seed.Rooms()

	if second[0].RoomName == "mutated" {
		t.Error("expected Rooms to return a fresh copy, mutation leaked through")
	}

	if second[0].Amenities[0] == "mutated" {
		t.Error("expected amenities slice to be a fresh copy, mutation leaked through")
	}
}

func TestSeedSets_OrderedMostRecentFirst(t *testing.T) {
	rooms := seed.Rooms()
	for i := 1; i < len(rooms); i++ {
		if rooms[i-1].CreatedAt < rooms[i].CreatedAt {
			t.Errorf("rooms out of order at index %d: %s before %s", i, rooms[i-1].CreatedAt, rooms[i].CreatedAt)
		}
	}

	users := seed.Users()
	for i := 1; i < len(users); i++ {
		if users[i-1].CreatedAt < users[i].CreatedAt {
			t.Errorf("users out of order at index %d: %s before %s", i, users[i-1].CreatedAt, users[i].CreatedAt)
		}
	}

	bookings := seed.Bookings()
	for i := 1; i < len(bookings); i++ {
		if bookings[i-1].CreatedAt < bookings[i].CreatedAt {
			t.Errorf("bookings out of order at index %d: %s before %s", i, bookings[i-1].CreatedAt, bookings[i].CreatedAt)
		}
	}
}

func TestAdminUser(t *testing.T) {
	admin := seed.AdminUser()

	if admin.Email != constant.DemoAdminEmail {
		t.Errorf("expected admin email %s, got %s", constant.DemoAdminEmail, admin.Email)
	}

	if admin.Role != constant.RoleAdmin {
		t.Errorf("expected admin role, got %s", admin.Role)
	}
}

func TestFilterRooms(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		status  string
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			wantIDs: []string{"r3", "r2", "r1"},
		},
		{
			name:    "term matches name and type case-insensitively",
			term:    "suite",
			wantIDs: []string{"r2"},
		},
		{
			name:    "term matches room type",
			term:    "deluxe",
			wantIDs: []string{"r3"},
		},
		{
			name:    "All sentinel disables the status filter",
			status:  constant.FilterAll,
			wantIDs: []string{"r3", "r2", "r1"},
		},
		{
			name:    "status filter",
			status:  constant.RoomStatusBooked,
			wantIDs: []string{"r2"},
		},
		{
			name:    "no match yields empty result",
			term:    "penthouse",
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seed.FilterRooms(seed.Rooms(), tt.term, tt.status)

			if got == nil {
				t.Fatal("expected non-nil slice")
			}

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d rooms, got %d", len(tt.wantIDs), len(got))
			}

			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("expected room %s at index %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestFilterUsers(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		status  string
		wantIDs []string
	}{
		{
			name:    "term matches email",
			term:    "rahul@",
			wantIDs: []string{"u1"},
		},
		{
			name:    "term matches phone",
			term:    "9123456789",
			wantIDs: []string{"u2"},
		},
		{
			name:    "status filter",
			status:  constant.UserStatusBlocked,
			wantIDs: []string{"u3"},
		},
		{
			name:    "term and status combined",
			term:    "example.com",
			status:  constant.UserStatusActive,
			wantIDs: []string{"u4", "u2", "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seed.FilterUsers(seed.Users(), tt.term, tt.status)

			if len(got) != len(tt.wantIDs) {
				t.Fatalf("expected %d users, got %d", len(tt.wantIDs), len(got))
			}

			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("expected user %s at index %d, got %s", id, i, got[i].ID)
				}
			}
		})
	}
}

func TestFilterBookings(t *testing.T) {
	byGuest := seed.FilterBookings(seed.Bookings(), "anjali", "")
	if len(byGuest) != 1 || byGuest[0].ID != "b2" {
		t.Errorf("expected booking b2 for guest search, got %v", byGuest)
	}

	byRoom := seed.FilterBookings(seed.Bookings(), "superior", "")
	if len(byRoom) != 1 || byRoom[0].ID != "b1" {
		t.Errorf("expected booking b1 for room search, got %v", byRoom)
	}

	byStatus := seed.FilterBookings(seed.Bookings(), "", constant.BookingStatusCancelled)
	if len(byStatus) != 1 || byStatus[0].ID != "b3" {
		t.Errorf("expected booking b3 for status filter, got %v", byStatus)
	}
}

func TestFilterPayments(t *testing.T) {
	byTxn := seed.FilterPayments(seed.Payments(), "TXN993344", "")
	if len(byTxn) != 1 || byTxn[0].ID != "p2" {
		t.Errorf("expected payment p2 for transaction search, got %v", byTxn)
	}

	byStatus := seed.FilterPayments(seed.Payments(), "", constant.PaymentStatusPaid)
	if len(byStatus) != 1 || byStatus[0].ID != "p1" {
		t.Errorf("expected payment p1 for status filter, got %v", byStatus)
	}

	none := seed.FilterPayments(seed.Payments(), "TXN000000", "")
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", none)
	}
}
