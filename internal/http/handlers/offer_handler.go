// README: Offer handlers: accept, complete, and dashboard queries.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safari/internal/modules/offer"
	"safari/internal/modules/provider"
	"safari/internal/types"
)

type OfferHandler struct {
	offers *offer.Service
}

func NewOfferHandler(offers *offer.Service) *OfferHandler {
	return &OfferHandler{offers: offers}
}

type offerView struct {
	ID                  string  `json:"offer_id"`
	BookingRef          string  `json:"booking_ref"`
	ProviderID          string  `json:"provider_id"`
	Kind                string  `json:"kind"`
	TourID              string  `json:"tour_id"`
	TourName            string  `json:"tour_name"`
	TourDate            string  `json:"tour_date"`
	NumberOfPeople      int     `json:"number_of_people"`
	SpecialInstructions string  `json:"special_instructions"`
	TouristID           string  `json:"tourist_id"`
	TouristName         string  `json:"tourist_name"`
	TouristContact      string  `json:"tourist_contact"`
	Status              string  `json:"status"`
	AcceptedDate        *string `json:"accepted_date"`
	CreatedDate         string  `json:"created_date"`
}

func toOfferView(o *offer.Offer) offerView {
	var acceptedAt *string
	if o.AcceptedAt != nil {
		s := o.AcceptedAt.Format(time.RFC3339)
		acceptedAt = &s
	}
	return offerView{
		ID:                  string(o.ID),
		BookingRef:          o.BookingRef,
		ProviderID:          string(o.ProviderID),
		Kind:                string(o.Kind),
		TourID:              string(o.TourID),
		TourName:            o.TourName,
		TourDate:            o.TourDate.Format(dateLayout),
		NumberOfPeople:      o.NumberOfPeople,
		SpecialInstructions: o.SpecialInstructions,
		TouristID:           string(o.TouristID),
		TouristName:         o.TouristName,
		TouristContact:      o.TouristContact,
		Status:              string(o.Status),
		AcceptedDate:        acceptedAt,
		CreatedDate:         o.CreatedAt.Format(time.RFC3339),
	}
}

type acceptReq struct {
	ProviderID string `json:"provider_id"`
	TourID     string `json:"tour_id"`
}

// Accept always answers 200 on a decided race: success=false means another
// provider got there first, and the dashboard should refresh its list.
func (h *OfferHandler) Accept(c *gin.Context) {
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidID(req.ProviderID) || !isValidID(req.TourID) {
		writeError(c, http.StatusBadRequest, "missing provider_id or tour_id")
		return
	}
	won, err := h.offers.Accept(c.Request.Context(), offer.AcceptCommand{
		ProviderID: types.ID(req.ProviderID),
		TourID:     types.ID(req.TourID),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if !won {
		writeJSON(c, http.StatusOK, map[string]any{
			"success": false,
			"message": "tour no longer available",
		})
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"success": true,
		"message": "tour assigned",
	})
}

func (h *OfferHandler) Complete(c *gin.Context) {
	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if !isValidID(req.ProviderID) || !isValidID(req.TourID) {
		writeError(c, http.StatusBadRequest, "missing provider_id or tour_id")
		return
	}
	err := h.offers.Complete(c.Request.Context(), offer.CompleteCommand{
		ProviderID: types.ID(req.ProviderID),
		TourID:     types.ID(req.TourID),
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"status": offer.StatusCompleted})
}

func (h *OfferHandler) List(c *gin.Context) {
	var f offer.Filter
	if v := c.Query("provider_id"); v != "" {
		f.ProviderID = types.ID(v)
	}
	if v := c.Query("tour_id"); v != "" {
		f.TourID = types.ID(v)
	}
	if v := c.Query("tourist_id"); v != "" {
		f.TouristID = types.ID(v)
	}
	if v := c.Query("tour_name"); v != "" {
		f.TourName = v
	}
	if v := c.Query("kind"); v != "" {
		f.Kind = provider.Kind(v)
		if !f.Kind.Valid() {
			writeError(c, http.StatusBadRequest, "invalid kind")
			return
		}
	}
	if v := c.Query("status"); v != "" {
		f.Status = offer.Status(v)
		if !f.Status.Valid() {
			writeError(c, http.StatusBadRequest, "invalid status")
			return
		}
	}
	if v := c.Query("date"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid date, want YYYY-MM-DD")
			return
		}
		f.Date = &d
	}

	offers, err := h.offers.List(c.Request.Context(), f)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	views := make([]offerView, 0, len(offers))
	for i := range offers {
		views = append(views, toOfferView(&offers[i]))
	}
	writeJSON(c, http.StatusOK, map[string]any{"offers": views})
}
