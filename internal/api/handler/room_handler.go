package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/ports"
)

// RoomHandler serves the room catalogue.
type RoomHandler struct {
	roomService ports.RoomService
}

func NewRoomHandler(roomService ports.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

type roomRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features"`
	Photos      []string `json:"photos"`
	Thumbnail   string   `json:"thumbnail"`
	Price       float64  `json:"price"    validate:"required,gt=0"`
	Type        string   `json:"type"     validate:"required,oneof=office coworking-space"`
	FloorID     string   `json:"floor_id" validate:"required"`
}

func (r roomRequest) toInput() ports.RoomInput {
	return ports.RoomInput{
		Name:        r.Name,
		Description: r.Description,
		Features:    r.Features,
		Photos:      r.Photos,
		Thumbnail:   r.Thumbnail,
		Price:       r.Price,
		Type:        r.Type,
		FloorID:     r.FloorID,
	}
}

// Create adds a room to the catalogue.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      roomRequest  true  "Room details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: room})
}

// List returns the full catalogue. Public.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  listResponse
// @Router       /api/v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.roomService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(rooms), Data: rooms})
}

// Get returns one room. Public.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.roomService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: room})
}

// Update replaces a room's mutable fields.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Room id"
// @Param        body  body      roomRequest  true  "Room details"
// @Success      200   {object}  dataResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/rooms/{id} [patch]
func (h *RoomHandler) Update(c echo.Context) error {
	var req roomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.roomService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: room})
}

// Delete removes a room.
//
// @Summary      Delete a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.roomService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
