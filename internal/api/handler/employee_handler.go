package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/ports"
)

type EmployeeHandler struct {
	employeeService ports.EmployeeService
}

func NewEmployeeHandler(employeeService ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

type employeeRequest struct {
	UserID  string  `json:"user_id"  validate:"required"`
	Salary  float64 `json:"salary"   validate:"required,gt=0"`
	JobDesc string  `json:"job_desc" validate:"required"`
}

func (r employeeRequest) toInput() ports.EmployeeInput {
	return ports.EmployeeInput{UserID: r.UserID, Salary: r.Salary, JobDesc: r.JobDesc}
}

func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employeeService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dataResponse{Status: "success", Data: employee})
}

func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.employeeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Status: "success", Results: len(employees), Data: employees})
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.employeeService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: employee})
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	employee, err := h.employeeService.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: employee})
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	if err := h.employeeService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
