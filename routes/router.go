package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/heliomart/solarstore-go/config"
	_ "github.com/heliomart/solarstore-go/docs"
	"github.com/heliomart/solarstore-go/handlers"
	"github.com/heliomart/solarstore-go/middleware"
	"github.com/heliomart/solarstore-go/payment"
	"github.com/heliomart/solarstore-go/repositories"
	"github.com/heliomart/solarstore-go/services"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos := repositories.New()
	gateway := payment.NewWebXPayGateway(payment.Config{
		BaseURL:    config.GatewayURL,
		MerchantID: config.GatewayMerchantID,
		Secret:     config.GatewaySecret,
		ReturnURL:  config.FrontendBaseURL + "/checkout/return",
		CancelURL:  config.FrontendBaseURL + "/checkout/cancel",
	}, nil)
	svc := services.New(repos, gateway)
	h := handlers.New(svc, repos.Audit)

	// setup
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)
	r.POST("/forgot-password", h.Auth.ForgotPassword)
	r.POST("/reset-password", h.Auth.ResetPassword)
	r.POST("/password-strength", h.Auth.PasswordStrength)

	products := r.Group("/products")
	{
		products.GET("", h.Product.ListProducts)
		products.GET("/search", h.Product.SearchProducts)
		products.GET("/:id", h.Product.GetProduct)
	}
	r.GET("/checkout/shipping-options", h.Checkout.ShippingOptions)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		cart := auth.Group("/cart")
		{
			cart.GET("", h.Cart.GetCart)
			cart.POST("/items", h.Cart.AddItem)
			cart.PUT("/items/:id", h.Cart.UpdateItem)
			cart.DELETE("/items/:id", h.Cart.RemoveItem)
		}

		auth.POST("/checkout/quote", h.Checkout.Quote)
		auth.POST("/checkout", h.Checkout.PlaceOrder)

		addresses := auth.Group("/addresses")
		{
			addresses.GET("", h.Address.ListAddresses)
			addresses.POST("", h.Address.AddAddress)
			addresses.PUT("/:id", h.Address.UpdateAddress)
			addresses.POST("/:id/default", h.Address.SetDefaultAddress)
			addresses.DELETE("/:id", h.Address.DeleteAddress)
		}

		paymentMethods := auth.Group("/payment-methods")
		{
			paymentMethods.GET("", h.PaymentMethod.ListPaymentMethods)
			paymentMethods.POST("", h.PaymentMethod.AddPaymentMethod)
			paymentMethods.PUT("/:id", h.PaymentMethod.UpdatePaymentMethod)
			paymentMethods.POST("/:id/default", h.PaymentMethod.SetDefaultPaymentMethod)
			paymentMethods.DELETE("/:id", h.PaymentMethod.DeletePaymentMethod)
		}

		orders := auth.Group("/orders")
		{
			orders.GET("", h.Order.ListOrders)
			orders.GET("/:id", h.Order.GetOrder)
			orders.POST("/:id/cancel", h.Order.CancelOrder)
		}
		auth.GET("/ws/orders", h.OrderStream.Stream)

		audit := auth.Group("/audit/logs")
		{
			audit.GET("", middleware.AuthorizeAdmin(), h.Audit.GetAuditLogs)
		}
	}
}
