package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/ports"
)

const userContextKey = "user"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

// logoutSentinel is the value logout writes into the cookie; it is never a
// valid token and is skipped during extraction.
const logoutSentinel = "loggedOut"

// Authenticate resolves the session token (Authorization header or session
// cookie) to a user record and injects it into the request context.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFromRequest(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in! Please log in to get access.")
			}

			user, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session! Please log in again.")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// tokenFromRequest prefers a bearer Authorization header, then falls back to
// the session cookie.
func tokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == logoutSentinel {
		return ""
	}
	return cookie.Value
}

// CurrentUser extracts the user injected by Authenticate.
func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}
