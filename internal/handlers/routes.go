package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/orderzen/storefront/internal/admin"
	"github.com/orderzen/storefront/internal/awsx"
	"github.com/orderzen/storefront/internal/cart"
	"github.com/orderzen/storefront/internal/catalog"
	"github.com/orderzen/storefront/internal/checkout"
	"github.com/orderzen/storefront/internal/discount"
	"github.com/orderzen/storefront/internal/orders"
	"github.com/orderzen/storefront/internal/validation"
)

// HandlerConfig groups dependencies for the API handlers.
type HandlerConfig struct {
	DynamoDBClient     awsx.DynamoDBAPI
	Metrics            *awsx.Metrics
	ProductsTable      string
	CartsTable         string
	OrdersTable        string
	DiscountCodesTable string
}

// RegisterRoutes wires every API route under the /api prefix.
func RegisterRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()

	products := catalog.NewStore(cfg.DynamoDBClient, cfg.ProductsTable)
	carts := cart.NewStore(cfg.DynamoDBClient, cfg.CartsTable)
	orderStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	codes := discount.NewStore(cfg.DynamoDBClient, cfg.DiscountCodesTable)

	processor := checkout.NewProcessor(carts, orderStore, codes, cfg.Metrics)
	adminSvc := admin.NewService(orderStore, codes)

	api := r.Group("/api")
	registerCatalogRoutes(api, products)
	registerCartRoutes(api, v, products, carts)
	registerCheckoutRoutes(api, v, processor)
	registerAdminRoutes(api, adminSvc)
}
