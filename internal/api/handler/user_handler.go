package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/api/middleware"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// UserHandler serves account administration and the /me profile endpoint.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Address   *string `json:"address"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin owner user"`
	IsActive  *bool   `json:"is_active"`
}

// Me returns the authenticated user's own record.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: toUserResponse(user)})
}

// List returns all accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {object}  listResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(users), Data: toUserResponses(users)})
}

// Get returns a single account by id.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: toUserResponse(user)})
}

// Update patches account fields, including the activation flag.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Role:      req.Role,
		IsActive:  req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: toUserResponse(user)})
}

// Delete removes an account.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.userService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
