package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mark1979smith/farmison/config"
	"github.com/mark1979smith/farmison/internal/handlers"
	"github.com/mark1979smith/farmison/internal/metrics"
	"github.com/mark1979smith/farmison/internal/models"
	"github.com/mark1979smith/farmison/internal/notifier"
	"github.com/mark1979smith/farmison/internal/nvp"
	"github.com/mark1979smith/farmison/internal/ordernumber"
	"github.com/mark1979smith/farmison/internal/publisher"
	"github.com/mark1979smith/farmison/internal/repository/posgrest"
	"github.com/mark1979smith/farmison/internal/service"
	"github.com/sirupsen/logrus"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	if cfg.APP.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.PaypalAttempt{}, &models.PaypalAPIResponse{}, &models.FraudCheck{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	orders := posgrest.NewOrderStore(db)
	attempts := posgrest.NewAttemptStore(db)
	audit := posgrest.NewAuditStore(db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())
	eventNotifier := notifier.NewEventNotifier(a.publisher)

	formatter := ordernumber.New(cfg.OrderNumber.Prefix, cfg.OrderNumber.Width)

	paypalGateway := nvp.NewClient(cfg.PayPal.Endpoint,
		nvp.WithTimeout(cfg.PayPal.Timeout),
		nvp.WithRetry(cfg.PayPal.GetRetryConfig()),
	)
	maxmindGateway := nvp.NewClient(cfg.MaxMind.Endpoint,
		nvp.WithTimeout(cfg.MaxMind.Timeout),
		nvp.WithRetry(cfg.MaxMind.GetRetryConfig()),
		nvp.WithSeparator(";"),
	)

	fraudService := service.NewFraudService(service.FraudServiceConfig{
		LicenseKey:        cfg.MaxMind.LicenseKey,
		HighRiskThreshold: cfg.MaxMind.HighRiskThreshold,
		Production:        cfg.APP.IsProduction(),
	}, maxmindGateway, audit, eventNotifier, formatter)

	checkoutService := service.NewExpressCheckoutService(service.ExpressCheckoutConfig{
		User:        cfg.PayPal.User,
		Password:    cfg.PayPal.Password,
		Signature:   cfg.PayPal.Signature,
		APIVersion:  cfg.PayPal.APIVersion,
		RedirectURL: cfg.PayPal.RedirectURL,
		NotifyURL:   cfg.PayPal.NotifyURL,
	}, paypalGateway, orders, attempts, audit, eventNotifier, fraudService, formatter)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	metrics.RegisterMetrics()
	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(checkoutHandler)
}

func (a *App) Run() {
	defer func() {
		if err := a.publisher.Close(); err != nil {
			logrus.Errorf("Error closing Kafka publisher: %s", err.Error())
		}
	}()

	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
