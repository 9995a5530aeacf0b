package model

import (
	"github.com/lib/pq"

	"dost/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID        = "id"
	FieldRoomName  = "roomname"
	FieldRoomType  = "roomtype"
	FieldPrice     = "price"
	FieldCapacity  = "capacity"
	FieldStatus    = "status"
	FieldAmenities = "amenities"
	FieldImages    = "images"
)

type Room struct {
	ID        string         `db:"id"`
	RoomName  string         `db:"roomname"`
	RoomType  string         `db:"roomtype"`
	Price     int64          `db:"price"`
	Capacity  int            `db:"capacity"`
	Status    string         `db:"status"`
	Amenities pq.StringArray `db:"amenities"`
	Images    pq.StringArray `db:"images"`
	model.Metadata
}
