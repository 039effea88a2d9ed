package handlers

import (
	"net/http"
	"strconv"

	"github.com/chorecoin/chore_coin_app/cmd/docs"
	portssvc "github.com/chorecoin/chore_coin_app/internal/core/ports/services"
	"github.com/chorecoin/chore_coin_app/internal/middleware"
	"github.com/chorecoin/chore_coin_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Health check and prometheus surface sit outside the API group
	r.GET("/", getHome)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	RegisterAccountRoutes(v1, services.Ledger)
	RegisterCoinRoutes(v1, services.Ledger)
	RegisterChallengeRoutes(v1, services.Ledger)
	RegisterSettingsRoutes(v1, services.Settings, services.Ledger)
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

// accountIndexParam parses the :accountIndex path parameter. A non-integer
// ordinal is a bad request; whether the ordinal exists is the service's call.
func accountIndexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("accountIndex"))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid account index param")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account index must be an integer"})
		return 0, false
	}
	return index, true
}
