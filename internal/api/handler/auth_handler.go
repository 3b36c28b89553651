package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/api/metrics"
	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

// AuthHandler serves signup, login, and logout.
type AuthHandler struct {
	authService ports.AuthService
	cookies     CookiePolicy
}

func NewAuthHandler(authService ports.AuthService, cookies CookiePolicy) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type signupRequest struct {
	FirstName       string    `json:"first_name" validate:"required"`
	LastName        string    `json:"last_name"  validate:"required"`
	Address         string    `json:"address"`
	Birthdate       time.Time `json:"birthdate"`
	Email           string    `json:"email"    validate:"required,email"`
	Username        string    `json:"username" validate:"required,min=3"`
	Password        string    `json:"password" validate:"required,min=8"`
	PasswordConfirm string    `json:"password_confirm" validate:"required,eqfield=Password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Status string       `json:"status"`
	Token  string       `json:"token"`
	Data   userResponse `json:"data"`
}

// Signup creates a new account. The account starts inactive.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Profile fields and password"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/v1/users/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Address:         req.Address,
		Birthdate:       req.Birthdate,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		return err
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusOK, dataResponse{Status: "success", Data: toUserResponse(user)})
}

// Login authenticates a user, sets the session cookie, and returns the token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide a username and a password!")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountInactive):
			metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	h.cookies.Write(c, token)
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Status: "success",
		Token:  token,
		Data:   toUserResponse(user),
	})
}

// Logout overwrites the session cookie. Always succeeds.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  statusResponse
// @Router       /api/v1/users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.cookies.Clear(c)
	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}
