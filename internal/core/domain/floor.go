package domain

import "errors"

var ErrFloorNotFound = errors.New("floor not found")

// Floor groups rooms by building level.
type Floor struct {
	ID     string `json:"id" bson:"_id,omitempty"`
	Number int    `json:"number" bson:"number"`
	Name   string `json:"name" bson:"name"`
}
