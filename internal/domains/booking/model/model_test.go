package model_test

import (
	"testing"

	"dost/internal/domains/booking/model"
	"dost/shared/constant"
)

func TestLegalTransitions(t *testing.T) {
	tests := []struct {
		from string
		want []string
	}{
		{constant.BookingStatusPending, []string{constant.BookingStatusApproved, constant.BookingStatusCancelled}},
		{constant.BookingStatusApproved, []string{constant.BookingStatusCancelled}},
		{constant.BookingStatusCancelled, nil},
		{constant.BookingStatusCompleted, nil},
	}

	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			got := model.LegalTransitions(tt.from)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}

			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	valid := [][2]string{
		{constant.BookingStatusPending, constant.BookingStatusApproved},
		{constant.BookingStatusPending, constant.BookingStatusCancelled},
		{constant.BookingStatusApproved, constant.BookingStatusCancelled},
	}

	for _, pair := range valid {
		if err := model.ValidateTransition(pair[0], pair[1]); err != nil {
			t.Errorf("expected %s -> %s to be legal, got %v", pair[0], pair[1], err)
		}
	}

	invalid := [][2]string{
		{constant.BookingStatusPending, constant.BookingStatusCompleted},
		{constant.BookingStatusApproved, constant.BookingStatusPending},
		{constant.BookingStatusCancelled, constant.BookingStatusApproved},
		{constant.BookingStatusCompleted, constant.BookingStatusCancelled},
		{constant.BookingStatusCancelled, constant.BookingStatusPending},
	}

	for _, pair := range invalid {
		if err := model.ValidateTransition(pair[0], pair[1]); err == nil {
			t.Errorf("expected %s -> %s to be rejected", pair[0], pair[1])
		}
	}
}
