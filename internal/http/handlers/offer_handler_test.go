// README: Offer handler request validation tests.
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The handlers reject malformed requests before touching the service, so a
// nil-backed service is enough for the validation paths.
func newOfferTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewOfferHandler(nil)
	r.POST("/api/offers/accept", h.Accept)
	r.POST("/api/offers/complete", h.Complete)
	r.GET("/api/offers", h.List)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAcceptRejectsBadRequests(t *testing.T) {
	r := newOfferTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing ids", `{}`},
		{"missing tour id", `{"provider_id":"p1"}`},
		{"missing provider id", `{"tour_id":"t1"}`},
		{"non alphanumeric id", `{"provider_id":"p1; DROP TABLE","tour_id":"t1"}`},
		{"overlong id", `{"provider_id":"` + strings.Repeat("a", 33) + `","tour_id":"t1"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/offers/accept", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestCompleteRejectsBadRequests(t *testing.T) {
	r := newOfferTestRouter()

	for _, body := range []string{`{`, `{}`, `{"provider_id":"p1"}`} {
		w := doRequest(t, r, http.MethodPost, "/api/offers/complete", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestListRejectsBadFilters(t *testing.T) {
	r := newOfferTestRouter()

	cases := []struct {
		name  string
		query string
	}{
		{"bad kind", "?kind=pilot"},
		{"bad status", "?status=PENDING"},
		{"bad date", "?date=20-09-2026"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, "/api/offers"+tc.query, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestIsValidID(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"abc123", true},
		{"ABCdef", true},
		{strings.Repeat("f", 32), true},
		{"", false},
		{strings.Repeat("f", 33), false},
		{"has space", false},
		{"semi;colon", false},
	}
	for _, tc := range cases {
		if got := isValidID(tc.in); got != tc.want {
			t.Errorf("isValidID(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
