package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/orderzen/storefront/internal/awsx"
	"github.com/orderzen/storefront/internal/catalog"
	"github.com/orderzen/storefront/internal/handlers"
)

func setupRouter(cfg handlers.HandlerConfig, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(corsOrigins)))

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.RegisterRoutes(r, cfg)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func main() {
	ctx := context.Background()

	clients, err := awsx.NewClients(ctx)
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	cfg := handlers.HandlerConfig{
		DynamoDBClient:     clients.DynamoDB,
		Metrics:            awsx.NewMetrics(clients.CloudWatch, os.Getenv("METRICS_NAMESPACE")),
		ProductsTable:      os.Getenv("PRODUCTS_TABLE"),
		CartsTable:         os.Getenv("CARTS_TABLE"),
		OrdersTable:        os.Getenv("ORDERS_TABLE"),
		DiscountCodesTable: os.Getenv("DISCOUNT_CODES_TABLE"),
	}

	// populate the catalog once; a non-empty table makes this a no-op
	if err := catalog.NewStore(clients.DynamoDB, cfg.ProductsTable).Seed(ctx); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}

	corsOrigins := strings.Split(envOr("CORS_ORIGINS", "*"), ",")
	r := setupRouter(cfg, corsOrigins)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		addr := ":8080"
		log.Printf("running local server on %s", addr)
		if err := r.Run(addr); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
