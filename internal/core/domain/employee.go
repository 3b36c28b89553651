package domain

import "errors"

var ErrEmployeeNotFound = errors.New("employee not found")

// Employee links a user account to a staff position.
type Employee struct {
	ID      string  `json:"id" bson:"_id,omitempty"`
	UserID  string  `json:"user_id" bson:"user_id"`
	Salary  float64 `json:"salary" bson:"salary"`
	JobDesc string  `json:"job_desc" bson:"job_desc"`
}
