package app

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/hudumapay/settlement-service/config"
	"github.com/hudumapay/settlement-service/internal/gateway"
	"github.com/hudumapay/settlement-service/internal/handlers"
	"github.com/hudumapay/settlement-service/internal/models"
	"github.com/hudumapay/settlement-service/internal/publisher"
	"github.com/hudumapay/settlement-service/internal/repository/posgrest"
	"github.com/hudumapay/settlement-service/internal/service"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine

	sweeper *service.Sweeper
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.Payment{},
		&models.Wallet{},
		&models.WalletTransaction{},
	); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	if cfg.Gateway.Simulation {
		logrus.Warn("gateway simulation mode is ON, no real money will move")
	}
	// the gateway offers no callback signature; authenticity rests on strict
	// correlation id matching in the finalize path
	logrus.Warn("gateway callback endpoint is unauthenticated")

	gatewayClient := gateway.New(cfg.Gateway)
	settlementStore := posgrest.NewSettlementStore(db)
	walletStore := posgrest.NewWalletStore(db)

	eventsPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, []string{
		cfg.Kafka.NotificationTopic,
		cfg.Kafka.AnomalyTopic,
		cfg.Kafka.DLQTopic,
	}, cfg.Kafka.DLQTopic, cfg.Kafka.GetRetryConfig())

	engine := service.NewSettlementEngine(
		settlementStore,
		gatewayClient,
		eventsPublisher,
		cfg.Settlement.CommissionDecimal(),
		cfg.Settlement.Currency,
	)
	walletService := service.NewWalletService(walletStore)

	paymentHandler := handlers.NewPaymentHandler(engine)
	callbackHandler := handlers.NewCallbackHandler(engine)
	walletHandler := handlers.NewWalletHandler(walletService, engine)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler, callbackHandler, walletHandler)

	a.sweeper = service.NewSweeper(engine,
		cfg.Settlement.SweepInterval,
		cfg.Settlement.CallbackWindow,
		cfg.Settlement.ExpiryWindow,
	)
}

func (a *App) Run() {
	go a.sweeper.Run(context.Background())

	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
