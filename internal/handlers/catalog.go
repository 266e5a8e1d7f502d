package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderzen/storefront/internal/catalog"
)

func registerCatalogRoutes(g *gin.RouterGroup, products *catalog.Store) {
	g.GET("/products", func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	g.GET("/products/:id", func(c *gin.Context) {
		p, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	})
}
