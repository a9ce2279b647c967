package main

import (
	_ "product_catalog/docs"
	"product_catalog/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Product Catalog API
// @version         1.0
// @description     Product catalog with a price-approval workflow, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
