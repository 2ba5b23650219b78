package app

import (
	"github.com/hudumapay/settlement-service/internal/handlers"
	"github.com/hudumapay/settlement-service/internal/middlewares"
)

func (a *App) RegisterRoutes(payments *handlers.PaymentHandler, callbacks *handlers.CallbackHandler, wallet *handlers.WalletHandler) {
	auth := middlewares.Auth(a.config.Auth.JWTSecret)

	pay := a.Router.Group("/payments")
	pay.POST("", auth, payments.InitiatePayment)
	pay.GET("/:id/status", auth, payments.PaymentStatus)
	// the gateway is the caller here; it cannot authenticate
	pay.POST("/callback", callbacks.GatewayCallback)

	w := a.Router.Group("/wallet", auth)
	w.GET("", wallet.GetWallet)
	w.GET("/transactions", wallet.GetTransactions)
	w.POST("/topup", wallet.Topup)
	w.POST("/transfer", wallet.Transfer)
}
