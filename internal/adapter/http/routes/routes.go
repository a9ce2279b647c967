package routes

import (
	"log"
	"strconv"

	_ "product_catalog/docs" // swag-generated swagger spec
	"product_catalog/internal/adapter/http/handlers"
	"product_catalog/internal/adapter/persistence/repository"
	"product_catalog/internal/infrastructure/config"
	"product_catalog/internal/infrastructure/database"
	"product_catalog/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	productRepo := repository.NewProductDynamoRepository(ddb, cfg.ProductsTable)
	approvalRepo := repository.NewApprovalQueueDynamoRepository(ddb, cfg.ApprovalQueueTable)
	workflowRepo := repository.NewWorkflowDynamoRepository(ddb, cfg.ProductsTable, cfg.ApprovalQueueTable)

	productUseCase := usecase.NewProductUseCase(productRepo, approvalRepo, workflowRepo, cfg.MaxAutoApprovePrice, cfg.MaxProductPrice)

	productHandler := handlers.NewProductHandler(productUseCase)
	approvalHandler := handlers.NewApprovalHandler(productUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addProductRoutes(api, productHandler, approvalHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
