package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/ports"
)

type VoucherHandler struct {
	voucherService ports.VoucherService
}

func NewVoucherHandler(voucherService ports.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

type voucherRequest struct {
	Code     string `json:"code"     validate:"required,min=3"`
	Discount int    `json:"discount" validate:"required,gte=1,lte=100"`
	Active   bool   `json:"active"`
}

func (h *VoucherHandler) Create(c echo.Context) error {
	var req voucherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	voucher, err := h.voucherService.Create(c.Request().Context(), ports.VoucherInput{
		Code:     req.Code,
		Discount: req.Discount,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: voucher})
}

func (h *VoucherHandler) List(c echo.Context) error {
	vouchers, err := h.voucherService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(vouchers), Data: vouchers})
}

func (h *VoucherHandler) Get(c echo.Context) error {
	voucher, err := h.voucherService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: voucher})
}

func (h *VoucherHandler) Update(c echo.Context) error {
	var req voucherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	voucher, err := h.voucherService.Update(c.Request().Context(), c.Param("id"), ports.VoucherInput{
		Code:     req.Code,
		Discount: req.Discount,
		Active:   req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: voucher})
}

func (h *VoucherHandler) Delete(c echo.Context) error {
	if err := h.voucherService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
