package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/orderzen/storefront/internal/cart"
	"github.com/orderzen/storefront/internal/catalog"
	"github.com/orderzen/storefront/internal/validation"
)

func registerCartRoutes(g *gin.RouterGroup, v *validatorv10.Validate, products *catalog.Store, carts *cart.Store) {
	g.POST("/cart/add", func(c *gin.Context) {
		ctx := c.Request.Context()

		var req validation.AddToCartRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			// BindAndValidate already wrote a 400
			return
		}
		quantity := req.Quantity
		if quantity == 0 {
			quantity = 1
		}

		p, err := products.Get(ctx, req.ProductID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		if p == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var crt *cart.Cart
		if req.CartID != "" {
			crt, err = carts.Get(ctx, req.CartID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
				return
			}
			if crt == nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
		} else {
			crt = cart.New(uuid.NewString())
		}

		crt.Add(cart.LineItem{
			ProductID: p.ID,
			Quantity:  quantity,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
		})

		if err := carts.Save(ctx, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart_id": crt.ID, "cart": crt})
	})

	g.GET("/cart/:id", func(c *gin.Context) {
		crt, err := carts.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		if crt == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}
		c.JSON(http.StatusOK, crt)
	})

	g.DELETE("/cart/:id/item/:productId", func(c *gin.Context) {
		ctx := c.Request.Context()

		crt, err := carts.Get(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		if crt == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		crt.Remove(c.Param("productId"))

		if err := carts.Save(ctx, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed", "cart": crt})
	})

	g.PUT("/cart/:id/item/:productId", func(c *gin.Context) {
		ctx := c.Request.Context()

		quantity, err := strconv.Atoi(c.Query("quantity"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
			return
		}

		crt, err := carts.Get(ctx, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load cart"})
			return
		}
		if crt == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		// absent product: item set untouched, but the document is still
		// re-saved with a fresh updated_at
		crt.SetQuantity(c.Param("productId"), quantity)

		if err := carts.Save(ctx, crt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "cart": crt})
	})
}
