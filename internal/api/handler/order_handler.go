package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/api/metrics"
	"github.com/deskhive/booking-system/internal/api/middleware"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// OrderHandler serves bookings. Regular users only see their own orders;
// admins see everything.
type OrderHandler struct {
	orderService ports.OrderService
}

func NewOrderHandler(orderService ports.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	RoomID      string    `json:"room_id"    validate:"required"`
	EmployeeID  string    `json:"employee_id"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date"   validate:"required"`
	VoucherCode string    `json:"voucher_code"`
}

func requesterFrom(c echo.Context) (ports.Requester, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return ports.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
	}
	return ports.Requester{UserID: user.ID, Role: user.Role}, nil
}

// Create books a room for the authenticated user.
//
// @Summary      Create an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Booking details"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.Create(c.Request().Context(), requester, ports.CreateOrderInput{
		RoomID:      req.RoomID,
		EmployeeID:  req.EmployeeID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		VoucherCode: req.VoucherCode,
	})
	if err != nil {
		return err
	}

	voucherLabel := "none"
	if order.VoucherCode != "" {
		voucherLabel = "applied"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(voucherLabel).Inc()

	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: order})
}

// List returns the requester's orders, or all orders for admins.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.List(c.Request().Context(), requester)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(orders), Data: orders})
}

// Get returns a single order if the requester may see it.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.Get(c.Request().Context(), requester, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: order})
}

// Cancel marks an order cancelled without deleting the record.
//
// @Summary      Cancel an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  dataResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id}/cancel [patch]
func (h *OrderHandler) Cancel(c echo.Context) error {
	requester, err := requesterFrom(c)
	if err != nil {
		return err
	}

	order, err := h.orderService.Cancel(c.Request().Context(), requester, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: order})
}

// Delete permanently removes an order. Admin only.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  statusResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orderService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
