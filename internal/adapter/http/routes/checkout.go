package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/handlers"
)

const PathCheckout = "/checkout"

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)
}
