package handler

import (
	"time"

	"github.com/deskhive/booking-system/internal/core/domain"
)

// errorResponse documents the error envelope produced by the central error
// handler; handlers never build it themselves.
type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type dataResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type listResponse struct {
	Status  string `json:"status"`
	Results int    `json:"results"`
	Data    any    `json:"data"`
}

// userResponse is the only shape user records are serialized through. It has
// no password field at all, so a credential can never leak by omission at a
// call site.
type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Address   string    `json:"address"`
	Birthdate time.Time `json:"birthdate,omitempty"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		Birthdate: u.Birthdate,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}
