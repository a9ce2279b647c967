package routes

import (
	"product_catalog/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts      = "/products"
	PathApprovalQueue = "/approval-queue"
)

func addProductRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, approvalHandler *handlers.ApprovalHandler) {
	products := rg.Group(PathProducts)
	{
		products.GET("", productHandler.FetchAllActiveProducts)
		products.GET("/search", productHandler.SearchProducts)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:productId", productHandler.UpdateProduct)
		products.DELETE("/:productId", productHandler.DeleteProduct)
	}

	approvals := products.Group(PathApprovalQueue)
	{
		approvals.GET("", approvalHandler.FetchApprovalQueue)
		approvals.PUT("/:approvalId/approve", approvalHandler.ApproveProduct)
		approvals.PUT("/:approvalId/reject", approvalHandler.RejectProduct)
	}
}
