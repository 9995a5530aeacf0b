package dto_test

import (
	"testing"

	"dost/internal/domains/room/model/dto"
	"dost/shared/constant"
)

func TestCreateRoomRequest_ToModel(t *testing.T) {
	t.Run("defaults status to available", func(t *testing.T) {
		req := dto.CreateRoomRequest{
			RoomName:  "Deluxe King 305",
			RoomType:  "Deluxe",
			Price:     8500,
			Capacity:  2,
			Amenities: []string{"WiFi"},
		}

		room := req.ToModel("u1")

		if room.Status != constant.RoomStatusAvailable {
			t.Errorf("expected status %s, got %s", constant.RoomStatusAvailable, room.Status)
		}

		if room.ID == "" {
			t.Error("expected a generated id")
		}

		if room.CreatedBy != "u1" || room.ModifiedBy != "u1" {
			t.Errorf("expected actor u1, got %s / %s", room.CreatedBy, room.ModifiedBy)
		}
	})

	t.Run("keeps an explicit status", func(t *testing.T) {
		req := dto.CreateRoomRequest{
			RoomName:  "Suite 202",
			RoomType:  "Suite",
			Price:     12000,
			Capacity:  4,
			Status:    constant.RoomStatusMaintenance,
			Amenities: []string{"WiFi"},
		}

		room := req.ToModel("u1")

		if room.Status != constant.RoomStatusMaintenance {
			t.Errorf("expected status %s, got %s", constant.RoomStatusMaintenance, room.Status)
		}
	})
}
