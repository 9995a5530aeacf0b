package dto

import (
	"dost/internal/domains/user/model"
	gDto "dost/shared/dto"
)

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Blocked"`
}

type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	TotalBookings int    `json:"total_bookings,omitempty"`
	TotalSpent    int64  `json:"total_spent,omitempty"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Email = model.Email
	u.FullName = model.FullName
	u.Phone = model.Phone
	u.Role = model.Role
	u.Status = model.Status
	u.AvatarURL = model.AvatarURL
	u.TotalBookings = model.TotalBookings
	u.TotalSpent = model.TotalSpent
	u.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (u *GetUsersResponse) FromModels(models []model.User, totalData int) {
	u.TotalData = totalData

	u.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		u.Users[i].FromModel(mod)
	}
}
