package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/ports"
)

type FloorHandler struct {
	floorService ports.FloorService
}

func NewFloorHandler(floorService ports.FloorService) *FloorHandler {
	return &FloorHandler{floorService: floorService}
}

type floorRequest struct {
	Number int    `json:"number" validate:"required,gt=0"`
	Name   string `json:"name"   validate:"required"`
}

func (h *FloorHandler) Create(c echo.Context) error {
	var req floorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	floor, err := h.floorService.Create(c.Request().Context(), ports.FloorInput{Number: req.Number, Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: floor})
}

func (h *FloorHandler) List(c echo.Context) error {
	floors, err := h.floorService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(floors), Data: floors})
}

func (h *FloorHandler) Get(c echo.Context) error {
	floor, err := h.floorService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: floor})
}

func (h *FloorHandler) Update(c echo.Context) error {
	var req floorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	floor, err := h.floorService.Update(c.Request().Context(), c.Param("id"), ports.FloorInput{Number: req.Number, Name: req.Name})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: floor})
}

func (h *FloorHandler) Delete(c echo.Context) error {
	if err := h.floorService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
