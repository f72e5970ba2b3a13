package handlers

import (
	"github.com/SscSPs/expense_tracker/cmd/docs"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/middleware"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes with Auth and Tenant middleware
	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	authCfg := middleware.AuthConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(authCfg),
		middleware.TenantMiddleware(service.Tenant),
	)

	RegisterAPIRoutes(v1, service)
}

// RegisterAPIRoutes registers every tenant-scoped route on an already authenticated group.
func RegisterAPIRoutes(v1 *gin.RouterGroup, service *portssvc.ServiceContainer) {
	registerTenantRoutes(v1)
	registerCurrencyRoutes(v1, service.Currency, service.RateResolver)
	registerCategoryRoutes(v1, service.Category)
	registerPaymentMethodRoutes(v1, service.PaymentMethod)
	registerProfileRoutes(v1, service.Profile)
	RegisterExpenseRoutes(v1, service.Expense, service.Summary)
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
