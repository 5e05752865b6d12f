package bootstrap

import (
	"context"
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"cash-trader-be/internal/config"
	"cash-trader-be/internal/controller"
	"cash-trader-be/internal/handler"
	"cash-trader-be/internal/pkg/logger"
	"cash-trader-be/internal/repository/memory"
	"cash-trader-be/internal/repository/unitofwork"
	"cash-trader-be/internal/service"
	"cash-trader-be/internal/websocket"
	pktNats "cash-trader-be/pkg/nats"
	"cash-trader-be/pkg/printing"
	"cash-trader-be/pkg/register"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	CatalogController  controller.ICatalogController
	RegisterController controller.IRegisterController

	// Background services (exposed for main.go to run)
	PrintWorkerService service.IPrintWorkerService
	CatalogService     service.ICatalogService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Print queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	printLogger := logger.NewIsolatedLogger(cfg.App.PrintLogFilePath)
	wsHub := websocket.NewHub(rdb, printLogger)
	go wsHub.Run()

	// 3. Domain core
	catalog := register.NewCatalog()
	registers := memory.NewRegisterRepository(catalog)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Print.Topic, pubSub)
	catalogService := service.NewCatalogService(uowFactory, catalog, natsPub, sysLogger)
	printService := service.NewPrintService(uowFactory, publisherService, sysLogger)
	registerService := service.NewRegisterService(registers, printService, wsHub, sysLogger)

	renderer := printing.NewHTTPRenderer(cfg.Print.RendererURL)
	printer := printing.NewHTTPPrinter(cfg.Print.PrinterURL)
	printWorkerService := service.NewPrintWorkerService(
		pubSub,
		cfg.Print.Topic,
		uowFactory,
		renderer,
		printer,
		natsPub,
		printLogger,
	)

	authService := service.NewAuthService(&cfg.Auth)

	// 5. Notification bridge (event bus -> displays)
	notifService := service.NewNotificationService(natsSub, wsHub, registers, printLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(wsHub, natsPub, printLogger)

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		CatalogController:  controller.NewCatalogController(catalogService),
		RegisterController: controller.NewRegisterController(registerService, printService),

		PrintWorkerService: printWorkerService,
		CatalogService:     catalogService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		Logger: sysLogger,
	}
}
