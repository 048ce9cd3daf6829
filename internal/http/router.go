// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"safari/internal/http/handlers"
	"safari/internal/http/middleware"
	"safari/internal/modules/offer"
	"safari/internal/modules/provider"
	"safari/internal/modules/tour"
)

func NewRouter(
	log *zap.Logger,
	tourService *tour.Service,
	offerService *offer.Service,
	providerService *provider.Service,
) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(log), middleware.Recovery(log))

	tourHandler := handlers.NewTourHandler(tourService, offerService)
	r.POST("/api/tours", tourHandler.Create)
	r.GET("/api/tours", tourHandler.ListByTourist)
	r.GET("/api/tours/:id", tourHandler.Get)
	r.DELETE("/api/tours/:id", tourHandler.Delete)

	offerHandler := handlers.NewOfferHandler(offerService)
	r.POST("/api/offers/accept", offerHandler.Accept)
	r.POST("/api/offers/complete", offerHandler.Complete)
	r.GET("/api/offers", offerHandler.List)

	providerHandler := handlers.NewProviderHandler(providerService)
	r.POST("/api/providers", providerHandler.Register)
	r.GET("/api/providers/:id", providerHandler.Get)
	r.PUT("/api/providers/:id/availability", providerHandler.SetAvailability)
	r.DELETE("/api/providers/:id", providerHandler.Delete)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
