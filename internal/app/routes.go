package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mark1979smith/farmison/internal/handlers"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.CheckoutHandler) {
	checkout := a.Router.Group("/checkout/paypal")
	checkout.POST("", h.Initiate)
	checkout.POST("/details", h.FetchDetails)
	checkout.POST("/authorize", h.Authorize)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
