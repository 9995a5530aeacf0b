package validator_test

import (
	"strings"
	"testing"

	"dost/shared/validator"
)

type roomRequest struct {
	Name     string   `validate:"required"        json:"roomname"`
	Type     string   `validate:"oneof=Standard Superior Deluxe Suite" json:"room_type"`
	Price    int      `validate:"gte=0"           json:"price"`
	Capacity int      `validate:"gte=1,lte=10"    json:"capacity"`
	Images   []string `validate:"omitempty,max=5" json:"images"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        roomRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: roomRequest{Name: "Deluxe King 305", Type: "Deluxe", Price: 8500, Capacity: 2},
		},
		{
			name:        "missing required field",
			data:        roomRequest{Type: "Deluxe", Price: 8500, Capacity: 2},
			expectError: true,
		},
		{
			name:        "invalid room type",
			data:        roomRequest{Name: "Deluxe King 305", Type: "Penthouse", Price: 8500, Capacity: 2},
			expectError: true,
		},
		{
			name:        "negative price",
			data:        roomRequest{Name: "Deluxe King 305", Type: "Deluxe", Price: -1, Capacity: 2},
			expectError: true,
		},
		{
			name:        "capacity out of range",
			data:        roomRequest{Name: "Deluxe King 305", Type: "Deluxe", Price: 8500, Capacity: 14},
			expectError: true,
		},
		{
			name: "too many images",
			data: roomRequest{
				Name: "Deluxe King 305", Type: "Deluxe", Price: 8500, Capacity: 2,
				Images: []string{"a", "b", "c", "d", "e", "f"},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		body := strings.NewReader(`{"roomname":"Suite 202","room_type":"Suite","price":12000,"capacity":4}`)

		var req roomRequest
		if err := validator.Validate(body, &req); err != nil {
			t.Errorf("expected no error, got: %v", err)
		}

		if req.Name != "Suite 202" {
			t.Errorf("expected decoded name 'Suite 202', got %s", req.Name)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		body := strings.NewReader(`{"roomname":`)

		var req roomRequest
		if err := validator.Validate(body, &req); err == nil {
			t.Error("expected decode error, got nil")
		}
	})

	t.Run("valid json failing validation", func(t *testing.T) {
		body := strings.NewReader(`{"room_type":"Suite","price":12000,"capacity":4}`)

		var req roomRequest
		if err := validator.Validate(body, &req); err == nil {
			t.Error("expected validation error, got nil")
		}
	})
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email"},
		{name: "invalid email", field: "not-an-email", tag: "email", expectError: true},
		{name: "valid oneof", field: "Pending", tag: "oneof=Pending Approved Cancelled Completed"},
		{name: "invalid oneof", field: "Archived", tag: "oneof=Pending Approved Cancelled Completed", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
