package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderzen/storefront/internal/admin"
)

func registerAdminRoutes(g *gin.RouterGroup, svc *admin.Service) {
	g.POST("/admin/generate-discount", func(c *gin.Context) {
		dc, err := svc.GenerateDiscount(c.Request.Context())
		if err != nil {
			var nie *admin.NotIssuableError
			if errors.As(err, &nie) {
				c.JSON(http.StatusBadRequest, gin.H{"error": nie.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate discount code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Discount code generated",
			"code":       dc.Code,
			"percentage": dc.Percentage,
		})
	})

	g.GET("/admin/stats", func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})
}
