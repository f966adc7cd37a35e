package container

import (
	"fmt"
	"io"
	"time"

	"github.com/soulmatch/soulmatch-backend/internal/config"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/handler"
	"github.com/soulmatch/soulmatch-backend/internal/delivery/http/middleware"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/gemini"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/server"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/notify"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository/kv"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/assessment"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/auth"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/chat"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/discovery"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Log    *logger.Logger
	Store  storage.Store
	Server *server.Server
	Gemini *gemini.GeminiClient
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Mode)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize the persisted store
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize Gemini client; replies fall back to the canned pool
	// without it
	var geminiClient *gemini.GeminiClient
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewGeminiClient(cfg.GeminiAPIKey)
		if err != nil {
			log.Warn("failed to initialize gemini client, continuing without AI replies", "error", err)
			geminiClient = nil
		}
	}

	// Initialize repositories
	profileRepo := kv.NewProfileRepository(store)
	conversationRepo := kv.NewConversationRepository(store)

	// Initialize change notification
	broadcaster := notify.NewBroadcaster()

	// Initialize use cases
	authUseCase := auth.NewAuthUseCase(
		profileRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessExpiryMin)*time.Minute,
		log,
	)

	assessmentUseCase := assessment.NewAssessmentUseCase(
		profileRepo,
		log,
	)

	discoveryUseCase := discovery.NewDiscoveryUseCase(
		profileRepo,
	)

	simulator := chat.NewSimulator(
		conversationRepo,
		geminiClient,
		broadcaster,
		cfg.Chat.ReplyDelay,
		log,
	)

	chatUseCase := chat.NewChatUseCase(
		conversationRepo,
		simulator,
		broadcaster,
		log,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	assessmentHandler := handler.NewAssessmentHandler(assessmentUseCase)
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUseCase)
	chatHandler := handler.NewChatHandler(chatUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		assessmentHandler,
		discoveryHandler,
		chatHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Log:    log,
		Store:  store,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Type {
	case config.StorageRedis:
		return storage.NewRedisStore(&cfg.Redis)
	case config.StoragePostgres:
		return storage.NewPostgresStore(&cfg.Database)
	default:
		return storage.NewMemoryStore(), nil
	}
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if closer, ok := c.Store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}

	if c.Log != nil {
		c.Log.Sync()
	}

	return nil
}
