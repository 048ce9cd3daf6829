// README: Tour handler request validation tests.
package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTourTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTourHandler(nil, nil)
	r.POST("/api/tours", h.Create)
	r.GET("/api/tours", h.ListByTourist)
	r.GET("/api/tours/:id", h.Get)
	r.DELETE("/api/tours/:id", h.Delete)
	return r
}

func TestCreateTourRejectsBadRequests(t *testing.T) {
	r := newTourTestRouter()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{"tourist_id":`},
		{"missing fields", `{}`},
		{"no tourist name", `{"tourist_id":"u1","tourist_contact":"x","tour_name":"Yala","tour_date":"2026-09-20","number_of_people":4}`},
		{"zero people", `{"tourist_id":"u1","tourist_name":"Jane","tourist_contact":"x","tour_name":"Yala","tour_date":"2026-09-20","number_of_people":0}`},
		{"bad date format", `{"tourist_id":"u1","tourist_name":"Jane","tourist_contact":"x","tour_name":"Yala","tour_date":"20/09/2026","number_of_people":4}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodPost, "/api/tours", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestTourIDValidation(t *testing.T) {
	r := newTourTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/tours/bad..id", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("get: expected 400, got %d", w.Code)
	}
	w = doRequest(t, r, http.MethodDelete, "/api/tours/bad..id", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("delete: expected 400, got %d", w.Code)
	}
	w = doRequest(t, r, http.MethodGet, "/api/tours", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("list without tourist_id: expected 400, got %d", w.Code)
	}
}
