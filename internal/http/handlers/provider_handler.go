// README: Provider handlers: registration, profile, availability, deletion.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"safari/internal/modules/provider"
	"safari/internal/types"
)

type ProviderHandler struct {
	providers *provider.Service
}

func NewProviderHandler(providers *provider.Service) *ProviderHandler {
	return &ProviderHandler{providers: providers}
}

type registerProviderReq struct {
	UserID          string `json:"user_id"`
	Kind            string `json:"kind"`
	Languages       string `json:"languages"`
	ExperienceYears int    `json:"experience_years"`
	LicenseNumber   string `json:"license_number"`
	VehicleType     string `json:"vehicle_type"`
	Description     string `json:"description"`
}

func (h *ProviderHandler) Register(c *gin.Context) {
	var req registerProviderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	kind := provider.Kind(req.Kind)
	if req.UserID == "" || !kind.Valid() {
		writeError(c, http.StatusBadRequest, "missing user_id or kind")
		return
	}
	id, err := h.providers.Register(c.Request.Context(), provider.RegisterCommand{
		UserID:          types.ID(req.UserID),
		Kind:            kind,
		Languages:       req.Languages,
		ExperienceYears: req.ExperienceYears,
		LicenseNumber:   req.LicenseNumber,
		VehicleType:     req.VehicleType,
		Description:     req.Description,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, map[string]any{"provider_id": id})
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	p, err := h.providers.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{
		"provider_id":      p.ID,
		"user_id":          p.UserID,
		"kind":             p.Kind,
		"languages":        p.Languages,
		"experience_years": p.ExperienceYears,
		"license_number":   p.LicenseNumber,
		"vehicle_type":     p.VehicleType,
		"description":      p.Description,
		"available":        p.Available,
		"rating":           p.Rating,
		"total_trips":      p.TotalTrips,
	})
}

type availabilityReq struct {
	Available *bool `json:"available"`
}

func (h *ProviderHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		writeError(c, http.StatusBadRequest, "missing available flag")
		return
	}
	if err := h.providers.SetAvailability(c.Request.Context(), types.ID(id), *req.Available); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"available": *req.Available})
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	if err := h.providers.Delete(c.Request.Context(), types.ID(id)); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"deleted": true})
}
