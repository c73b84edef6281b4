package bootstrap

import (
	"context"
	"log"

	"github.com/dellis317/provocations/internal/config"
	"github.com/dellis317/provocations/internal/controller"
	"github.com/dellis317/provocations/internal/handler"
	"github.com/dellis317/provocations/internal/pkg/logger"
	"github.com/dellis317/provocations/internal/repository/implementation"
	"github.com/dellis317/provocations/internal/repository/memory"
	"github.com/dellis317/provocations/internal/repository/unitofwork"
	"github.com/dellis317/provocations/internal/service"
	"github.com/dellis317/provocations/internal/websocket"
	"github.com/dellis317/provocations/pkg/embedding"
	"github.com/dellis317/provocations/pkg/engine/analyze"
	"github.com/dellis317/provocations/pkg/engine/classify"
	"github.com/dellis317/provocations/pkg/engine/evolve"
	"github.com/dellis317/provocations/pkg/engine/lens"
	"github.com/dellis317/provocations/pkg/engine/provoke"
	"github.com/dellis317/provocations/pkg/llm/factory"

	pktNats "github.com/dellis317/provocations/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	DocumentController    controller.IDocumentController
	WorkspaceController   controller.IWorkspaceController
	LensController        controller.ILensController
	ProvocationController controller.IProvocationController
	OutlineController     controller.IOutlineController
	ReferenceController   controller.IReferenceController

	// Background services, run from main
	ConsumerService     service.IConsumerService
	NotificationService *service.NotificationService

	// WebSockets & notifications
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	llmTraffic := logger.NewLLMTrafficLogger(cfg.App.LLMTrafficLogPath)

	// In-process event bus for the embedding pipeline
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Embedding provider by config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// LLM provider by config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Engine components
	classifier := classify.NewClassifier()
	evolver := evolve.NewEvolver(llmProvider)
	analyzer := analyze.NewAnalyzer(llmProvider)
	lensGenerator := lens.NewGenerator(llmProvider)
	provokeGenerator := provoke.NewGenerator(llmProvider)

	// Sticky workspace sessions
	workspaceRepo := memory.NewWorkspaceRepository()

	// NATS; the app runs degraded without a broker
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis, used by the websocket hub to fan out across instances
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.ActivityLogPath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Embedding pipeline
	publisherService := service.NewPublisherService(cfg.App.EmbedTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.EmbedTopic, uowFactory, embeddingProvider)

	// Domain services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, cfg.Auth.TokenTTLMinute)
	documentService := service.NewDocumentService(uowFactory)
	workspaceService := service.NewWorkspaceService(
		uowFactory,
		classifier,
		evolver,
		analyzer,
		lensGenerator,
		provokeGenerator,
		embeddingProvider,
		workspaceRepo,
		natsPub,
		sysLogger,
		llmTraffic,
	)
	provocationService := service.NewProvocationService(uowFactory)
	outlineService := service.NewOutlineService(uowFactory, llmProvider)
	referenceService := service.NewReferenceService(uowFactory, publisherService, embeddingProvider, natsPub, sysLogger)

	// Notification domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, wsLogger)
	notifHandler := handler.NewNotificationHandler(notifService, wsHub, wsLogger)

	return &Container{
		AuthController:        controller.NewAuthController(authService),
		DocumentController:    controller.NewDocumentController(documentService),
		WorkspaceController:   controller.NewWorkspaceController(workspaceService),
		LensController:        controller.NewLensController(workspaceService),
		ProvocationController: controller.NewProvocationController(provocationService),
		OutlineController:     controller.NewOutlineController(outlineService),
		ReferenceController:   controller.NewReferenceController(referenceService),

		ConsumerService:     consumerService,
		NotificationService: notifService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
