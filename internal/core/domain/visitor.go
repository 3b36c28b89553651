package domain

import (
	"errors"
	"time"
)

var ErrVisitorNotFound = errors.New("visitor not found")

// Visitor records a guest registered against a room.
type Visitor struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Address   string    `json:"address" bson:"address"`
	Email     string    `json:"email" bson:"email"`
	Purpose   string    `json:"purpose" bson:"purpose"`
	RoomID    string    `json:"room_id" bson:"room_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
