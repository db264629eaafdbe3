package handlers

import (
	"net/http"

	"github.com/agarrido2001/XaveMarket/cmd/docs"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/agarrido2001/XaveMarket/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Extras are the optional outer surfaces. Nil fields are not mounted.
type Extras struct {
	Events  EventStreamer
	Metrics http.Handler
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	extras Extras,
) {
	r.GET("/health", getHealth)

	if extras.Metrics != nil {
		r.GET("/metrics", gin.WrapH(extras.Metrics))
	}

	// Browsers cannot set headers on a websocket handshake, so the stream is public.
	if extras.Events != nil {
		r.GET("/api/v1/events/stream", streamEvents(extras.Events))
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerCurrencyRoutes(v1, service.Currency)
	collections := registerCollectionRoutes(v1, service.Collection)
	registerPriceRoutes(collections, service.Price)
	registerListingRoutes(collections, service.Listing)
	registerPurchaseKeyRoutes(collections, service.PurchaseKey)
	registerSettlementRoutes(v1, service.Settlement)
	registerRoleRoutes(v1, service.AccessControl)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
