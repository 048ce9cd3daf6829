// README: Tourist booking handlers: create (with offer fan-out), get, list, delete.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safari/internal/modules/offer"
	"safari/internal/modules/tour"
	"safari/internal/types"
)

const dateLayout = "2006-01-02"

type TourHandler struct {
	tours  *tour.Service
	offers *offer.Service
}

func NewTourHandler(tours *tour.Service, offers *offer.Service) *TourHandler {
	return &TourHandler{tours: tours, offers: offers}
}

type createTourReq struct {
	TouristID           string `json:"tourist_id"`
	TouristName         string `json:"tourist_name"`
	TouristContact      string `json:"tourist_contact"`
	TourName            string `json:"tour_name"`
	TourDate            string `json:"tour_date"`
	NumberOfPeople      int    `json:"number_of_people"`
	SpecialInstructions string `json:"special_instructions"`
}

type tourView struct {
	ID                  string  `json:"tour_id"`
	TouristID           string  `json:"tourist_id"`
	TouristName         string  `json:"tourist_name"`
	TouristContact      string  `json:"tourist_contact"`
	TourName            string  `json:"tour_name"`
	TourDate            string  `json:"tour_date"`
	NumberOfPeople      int     `json:"number_of_people"`
	SpecialInstructions string  `json:"special_instructions"`
	AssignedDriverID    *string `json:"assigned_driver_id"`
	AssignedGuideID     *string `json:"assigned_guide_id"`
}

func toTourView(t *tour.Tour) tourView {
	return tourView{
		ID:                  string(t.ID),
		TouristID:           string(t.TouristID),
		TouristName:         t.TouristName,
		TouristContact:      t.TouristContact,
		TourName:            t.Name,
		TourDate:            t.Date.Format(dateLayout),
		NumberOfPeople:      t.NumberOfPeople,
		SpecialInstructions: t.SpecialInstructions,
		AssignedDriverID:    idPtrToString(t.AssignedDriverID),
		AssignedGuideID:     idPtrToString(t.AssignedGuideID),
	}
}

func idPtrToString(id *types.ID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

func (h *TourHandler) Create(c *gin.Context) {
	var req createTourReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.TouristID == "" || req.TouristName == "" || req.TouristContact == "" ||
		req.TourName == "" || req.NumberOfPeople <= 0 {
		writeError(c, http.StatusBadRequest, "missing fields")
		return
	}
	date, err := time.Parse(dateLayout, req.TourDate)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid tour_date, want YYYY-MM-DD")
		return
	}

	t, err := h.tours.Create(c.Request.Context(), tour.CreateCommand{
		TouristID:           types.ID(req.TouristID),
		TouristName:         req.TouristName,
		TouristContact:      req.TouristContact,
		Name:                req.TourName,
		Date:                date,
		NumberOfPeople:      req.NumberOfPeople,
		SpecialInstructions: req.SpecialInstructions,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	// Fan-out per kind is independent; a failure here leaves any offers
	// already created in place and surfaces as a generic error.
	if err := h.offers.RequestTour(c.Request.Context(), t); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"tour_id": t.ID})
}

func (h *TourHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid tour id")
		return
	}
	t, err := h.tours.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTourView(t))
}

func (h *TourHandler) ListByTourist(c *gin.Context) {
	touristID := c.Query("tourist_id")
	if !isValidID(touristID) {
		writeError(c, http.StatusBadRequest, "invalid tourist_id")
		return
	}
	tours, err := h.tours.ListByTourist(c.Request.Context(), types.ID(touristID))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	views := make([]tourView, 0, len(tours))
	for i := range tours {
		views = append(views, toTourView(&tours[i]))
	}
	writeJSON(c, http.StatusOK, map[string]any{"tours": views})
}

func (h *TourHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid tour id")
		return
	}
	if err := h.tours.Delete(c.Request.Context(), types.ID(id)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"deleted": true})
}
