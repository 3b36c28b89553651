package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/deskhive/booking-system/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		status  string
		message string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "fail", "Incorrect username or password!"},
		{domain.ErrAccountInactive, http.StatusUnauthorized, "fail", "Your account is not activated yet! Please check your email!"},
		{domain.ErrPasswordMismatch, http.StatusBadRequest, "fail", "Passwords do not match!"},
		{domain.ErrForbidden, http.StatusForbidden, "fail", "You do not have permission to perform this action!"},
		{domain.ErrInvalidRole, http.StatusBadRequest, "fail", "Role must be one of: admin, owner, user!"},
		{domain.ErrRoomNotFound, http.StatusNotFound, "fail", "Room not found!"},
		{domain.ErrOrderCancelled, http.StatusBadRequest, "fail", "This order has already been cancelled!"},
		{domain.ErrVoucherInactive, http.StatusBadRequest, "fail", "This voucher is no longer active!"},
	}

	for _, tc := range cases {
		code, resp := render(t, tc.err)
		if code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if resp.Status != tc.status || resp.Message != tc.message {
			t.Errorf("%v: unexpected body %+v", tc.err, resp)
		}
	}
}

func TestErrorHandler_CredentialErrorsShareOneBody(t *testing.T) {
	codeA, respA := render(t, domain.ErrInvalidCredentials)
	codeB, respB := render(t, domain.ErrInvalidCredentials)
	if codeA != codeB || respA != respB {
		t.Fatalf("credential failures must be byte-identical")
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, resp := render(t, errors.New("pq: disk on fire"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Status != "error" {
		t.Fatalf("expected status error, got %q", resp.Status)
	}
	if resp.Message != "Something went very wrong!" {
		t.Fatalf("internal details leaked: %q", resp.Message)
	}
}

func TestErrorHandler_EchoHTTPErrorPassthrough(t *testing.T) {
	code, resp := render(t, echo.NewHTTPError(http.StatusNotFound, "Can't find /nope on this server!"))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if resp.Status != "fail" || resp.Message != "Can't find /nope on this server!" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}
