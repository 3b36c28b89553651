package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSanitize(t *testing.T, req *http.Request) echo.Context {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Sanitize()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return c
}

func TestSanitize_StripsOperatorKeysFromBody(t *testing.T) {
	body := `{"username":"alice","$gt":"","profile":{"name":"a","x.y":"dotted"},"list":[{"$where":"1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := runSanitize(t, req)

	cleaned, err := io.ReadAll(c.Request().Body)
	require.NoError(t, err)
	s := string(cleaned)

	assert.Contains(t, s, `"username":"alice"`)
	assert.NotContains(t, s, "$gt")
	assert.NotContains(t, s, "x.y")
	assert.NotContains(t, s, "$where")
}

func TestSanitize_StripsOperatorKeysFromQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?username=alice&$gt=1&a.b=2", nil)

	c := runSanitize(t, req)

	q := c.Request().URL.Query()
	assert.Equal(t, "alice", q.Get("username"))
	assert.Empty(t, q.Get("$gt"))
	assert.Empty(t, q.Get("a.b"))
}

func TestSanitize_CollapsesDuplicateQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?sort=price&sort=name", nil)

	c := runSanitize(t, req)

	values := c.Request().URL.Query()["sort"]
	require.Len(t, values, 1)
	assert.Equal(t, "name", values[0], "last value wins")
}

func TestSanitize_EscapesMarkupInBodyStrings(t *testing.T) {
	body := `{"purpose":"<script>alert(1)</script>","nested":{"note":"a <b> c"},"list":["<img>"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := runSanitize(t, req)

	cleaned, err := io.ReadAll(c.Request().Body)
	require.NoError(t, err)

	// Decode the way Bind would: the values handlers see must carry no tags.
	var payload map[string]any
	require.NoError(t, json.Unmarshal(cleaned, &payload))

	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", payload["purpose"])
	assert.Equal(t, "a &lt;b&gt; c", payload["nested"].(map[string]any)["note"])
	assert.Equal(t, "&lt;img&gt;", payload["list"].([]any)[0])
}

func TestSanitize_EscapesMarkupInQueryValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?search="+url.QueryEscape("<script>x</script>"), nil)

	c := runSanitize(t, req)

	assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;", c.Request().URL.Query().Get("search"))
}

func TestSanitize_MalformedJSONPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	c := runSanitize(t, req)

	raw, err := io.ReadAll(c.Request().Body)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw), "body left intact for Bind to reject")
}

func TestSanitize_NonJSONBodyUntouched(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain text"))
	req.Header.Set(echo.HeaderContentType, echo.MIMETextPlain)

	c := runSanitize(t, req)

	raw, err := io.ReadAll(c.Request().Body)
	require.NoError(t, err)
	assert.Equal(t, "plain text", string(raw))
}
