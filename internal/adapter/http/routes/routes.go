package routes

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sanfergio/Anuncia-JA-Checkout/docs" // generated swagger docs
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/dto/response"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/handlers"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/persistence/ledger"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/billing"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/config"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase"
)

var router = gin.Default()

// Run wires the intake pipeline from configuration and starts the server.
func Run() {
	cfg := config.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	gatewayClient := billing.NewClient(cfg)
	ledgerWriter := ledger.NewCSVLedger(cfg.LedgerPath)

	intakeUseCase := usecase.NewIntakeUseCase(gatewayClient, ledgerWriter, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(intakeUseCase)

	// Rotas publicas
	addPingRoutes(&router.RouterGroup)
	addCheckoutRoutes(&router.RouterGroup, checkoutHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCheckoutRoutes(v1, checkoutHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// Preflight OPTIONS answers 200 with no body.
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{http.MethodPost, http.MethodOptions},
		AllowHeaders:              []string{"Content-Type", "Authorization", "X-Requested-With"},
		OptionsResponseStatusCode: http.StatusOK,
	}))

	// Non-POST hits on the checkout route must answer 405.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, response.Failure("Método não permitido"))
	})
}
