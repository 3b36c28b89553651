package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/ports"
)

type VisitorHandler struct {
	visitorService ports.VisitorService
}

func NewVisitorHandler(visitorService ports.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitorService: visitorService}
}

type visitorRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Address   string `json:"address"`
	Email     string `json:"email"   validate:"required,email"`
	Purpose   string `json:"purpose" validate:"required"`
	RoomID    string `json:"room_id" validate:"required"`
}

func (r visitorRequest) toInput() ports.VisitorInput {
	return ports.VisitorInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		Email:     r.Email,
		Purpose:   r.Purpose,
		RoomID:    r.RoomID,
	}
}

func (h *VisitorHandler) Create(c echo.Context) error {
	var req visitorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	visitor, err := h.visitorService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: visitor})
}

func (h *VisitorHandler) List(c echo.Context) error {
	visitors, err := h.visitorService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(visitors), Data: visitors})
}

func (h *VisitorHandler) Get(c echo.Context) error {
	visitor, err := h.visitorService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: visitor})
}

func (h *VisitorHandler) Update(c echo.Context) error {
	var req visitorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	visitor, err := h.visitorService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: visitor})
}

func (h *VisitorHandler) Delete(c echo.Context) error {
	if err := h.visitorService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
