package domain

import (
	"errors"
	"time"
)

// RoomType is the kind of bookable space.
type RoomType string

const (
	RoomTypeOffice    RoomType = "office"
	RoomTypeCoworking RoomType = "coworking-space"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomExists   = errors.New("room already exists")
)

// Room is a bookable space on a floor. Slug is derived from the name and is
// unique across rooms.
type Room struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description"`
	Features    []string  `json:"features" bson:"features"`
	Photos      []string  `json:"photos" bson:"photos"`
	Thumbnail   string    `json:"thumbnail,omitempty" bson:"thumbnail,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Type        RoomType  `json:"type" bson:"type"`
	FloorID     string    `json:"floor_id" bson:"floor_id"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
