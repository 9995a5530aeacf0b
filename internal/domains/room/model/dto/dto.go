package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"dost/internal/domains/room/model"
	"dost/shared/constant"
	gDto "dost/shared/dto"
	gModel "dost/shared/model"
	"dost/shared/timezone"
)

type CreateRoomRequest struct {
	RoomName  string   `json:"roomname"  validate:"required,max=100"`
	RoomType  string   `json:"roomtype"  validate:"required,oneof=Single Double Suite Deluxe"`
	Price     int64    `json:"price"     validate:"gte=0"`
	Capacity  int      `json:"capacity"  validate:"required,min=1"`
	Status    string   `json:"status"    validate:"omitempty,oneof=Available Booked Maintenance"`
	Amenities []string `json:"amenities" validate:"required,min=1"`
	Images    []string `json:"images"    validate:"omitempty,max=5"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = constant.RoomStatusAvailable
	}

	return model.Room{
		ID:        uuid.NewString(),
		RoomName:  c.RoomName,
		RoomType:  c.RoomType,
		Price:     c.Price,
		Capacity:  c.Capacity,
		Status:    status,
		Amenities: c.Amenities,
		Images:    c.Images,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomName  string   `db:"roomname"  json:"roomname"  validate:"omitempty,max=100"`
	RoomType  string   `db:"roomtype"  json:"roomtype"  validate:"omitempty,oneof=Single Double Suite Deluxe"`
	Price     *int64   `db:"price"     json:"price"     validate:"omitempty,gte=0"`
	Capacity  *int     `db:"capacity"  json:"capacity"  validate:"omitempty,min=1"`
	Status    string   `db:"status"    json:"status"    validate:"omitempty,oneof=Available Booked Maintenance"`
	Amenities []string `db:"amenities" json:"amenities" validate:"omitempty,min=1"`
	Images    []string `db:"images"    json:"images"    validate:"omitempty,max=5"`
}

// UploadFile pairs an opened multipart file with its header, preserving the
// order the client sent them in.
type UploadFile struct {
	File   multipart.File        `json:"-"`
	Header *multipart.FileHeader `json:"-" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
}

// UploadedImage is one slot of the upload result: either a storage URL or the
// placeholder plus the error that forced it. Slots line up with the input.
type UploadedImage struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

type UploadImagesResponse struct {
	Images   []UploadedImage `json:"images"`
	Progress []int           `json:"progress"`
}

type RoomResponse struct {
	ID        string   `json:"id"`
	RoomName  string   `json:"roomname"`
	RoomType  string   `json:"roomtype"`
	Price     int64    `json:"price"`
	Capacity  int      `json:"capacity"`
	Status    string   `json:"status"`
	Amenities []string `json:"amenities"`
	Images    []string `json:"images"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomName = model.RoomName
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Amenities = model.Amenities
	r.Images = model.Images
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData int) {
	r.TotalData = totalData

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
