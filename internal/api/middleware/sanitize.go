package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// Sanitize guards against injection through request input: keys starting with
// '$' or containing '.' are dropped from JSON request bodies and query
// parameters before any handler binds them, string values have markup
// delimiters entity-encoded so stored payloads cannot carry script tags, and
// duplicated query parameters collapse to their last value (parameter
// pollution).
func Sanitize() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sanitizeQuery(c)

			req := c.Request()
			if req.Body != nil && strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
				if err := sanitizeBody(c); err != nil {
					// Malformed JSON: leave it for Bind to reject with a 400.
					return next(c)
				}
			}
			return next(c)
		}
	}
}

func sanitizeQuery(c echo.Context) {
	req := c.Request()
	params := req.URL.Query()
	clean := url.Values{}
	for key, values := range params {
		if suspiciousKey(key) || len(values) == 0 {
			continue
		}
		// last value wins
		clean.Set(key, escapeMarkup(values[len(values)-1]))
	}
	req.URL.RawQuery = clean.Encode()
}

func sanitizeBody(c echo.Context) error {
	req := c.Request()
	raw, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	_ = req.Body.Close()

	if len(bytes.TrimSpace(raw)) == 0 {
		req.Body = io.NopCloser(bytes.NewReader(raw))
		return nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		req.Body = io.NopCloser(bytes.NewReader(raw))
		return err
	}

	cleaned, err := json.Marshal(sanitizeValue(payload))
	if err != nil {
		req.Body = io.NopCloser(bytes.NewReader(raw))
		return err
	}

	req.Body = io.NopCloser(bytes.NewReader(cleaned))
	req.ContentLength = int64(len(cleaned))
	return nil
}

func sanitizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		clean := make(map[string]any, len(val))
		for k, inner := range val {
			if suspiciousKey(k) {
				continue
			}
			clean[k] = sanitizeValue(inner)
		}
		return clean
	case []any:
		for i, inner := range val {
			val[i] = sanitizeValue(inner)
		}
		return val
	case string:
		return escapeMarkup(val)
	default:
		return v
	}
}

func suspiciousKey(k string) bool {
	return strings.HasPrefix(k, "$") || strings.Contains(k, ".")
}

var markupEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// escapeMarkup entity-encodes angle brackets so a stored value replayed into
// an HTML context cannot open a tag.
func escapeMarkup(s string) string {
	return markupEscaper.Replace(s)
}
