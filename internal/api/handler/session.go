package handler

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deskhive/booking-system/internal/api/middleware"
)

// logoutTTL is how long the overwritten cookie lives after logout.
const logoutTTL = 10 * time.Second

// CookiePolicy is the single source of truth for session cookie attributes.
// Login and logout both go through it, so Secure/SameSite can never diverge
// between the two paths; a mismatch would make browsers silently keep the
// original cookie on logout.
type CookiePolicy struct {
	ttl     time.Duration
	trusted []*net.IPNet
}

// NewCookiePolicy builds a policy with the session TTL and the CIDRs of
// proxies whose X-Forwarded-Proto header is trusted.
func NewCookiePolicy(ttl time.Duration, trustedProxies []string) CookiePolicy {
	p := CookiePolicy{ttl: ttl}
	for _, cidr := range trustedProxies {
		cidr = strings.TrimSpace(cidr)
		if cidr == "" {
			continue
		}
		if _, ipnet, err := net.ParseCIDR(cidr); err == nil {
			p.trusted = append(p.trusted, ipnet)
		}
	}
	return p
}

// Write attaches the session token to the response.
func (p CookiePolicy) Write(c echo.Context, token string) {
	c.SetCookie(p.cookie(c, token, time.Now().Add(p.ttl)))
}

// Clear overwrites the session cookie with the logout sentinel and a
// near-immediate expiry, using the exact same attribute set as Write.
func (p CookiePolicy) Clear(c echo.Context) {
	c.SetCookie(p.cookie(c, "loggedOut", time.Now().Add(logoutTTL)))
}

func (p CookiePolicy) cookie(c echo.Context, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		Secure:   p.secureTransport(c),
		SameSite: http.SameSiteNoneMode,
		Path:     "/",
	}
}

// secureTransport reports whether the request arrived over HTTPS, either
// directly or via a trusted proxy announcing the original scheme. The
// forwarded header is only honored when the direct peer is in the allowlist.
func (p CookiePolicy) secureTransport(c echo.Context) bool {
	req := c.Request()
	if req.TLS != nil {
		return true
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		host = req.RemoteAddr
	}
	peer := net.ParseIP(host)
	if peer == nil {
		return false
	}
	for _, ipnet := range p.trusted {
		if ipnet.Contains(peer) {
			return strings.EqualFold(req.Header.Get("X-Forwarded-Proto"), "https")
		}
	}
	return false
}
