package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/orderzen/storefront/internal/checkout"
	"github.com/orderzen/storefront/internal/discount"
	"github.com/orderzen/storefront/internal/validation"
)

func registerCheckoutRoutes(g *gin.RouterGroup, v *validatorv10.Validate, processor *checkout.Processor) {
	g.POST("/checkout", func(c *gin.Context) {
		var req validation.CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order, err := processor.Process(c.Request.Context(), checkout.Request{
			CartID:        req.CartID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			DiscountCode:  req.DiscountCode,
		})
		switch {
		case err == nil:
			c.JSON(http.StatusOK, order)
		case errors.Is(err, checkout.ErrCartNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, discount.ErrCodeUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or already used discount code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		}
	})
}
