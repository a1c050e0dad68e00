package main

import (
	_ "github.com/sanfergio/Anuncia-JA-Checkout/docs"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Anuncia-JÁ Checkout API
// @version         1.0
// @description     Store-registration intake: resolves the billing customer at Asaas and creates the pending PIX registration charge.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
