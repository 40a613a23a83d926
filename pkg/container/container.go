package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"skateshop-backend/internal/config"
	infraCache "skateshop-backend/internal/infrastructure/cache"
	"skateshop-backend/internal/infrastructure/database"
	"skateshop-backend/internal/infrastructure/storage"
	"skateshop-backend/pkg/cache"
	"skateshop-backend/pkg/logger"

	"skateshop-backend/internal/domains/asset"
	assetHandler "skateshop-backend/internal/domains/asset/handler"
	assetRepo "skateshop-backend/internal/domains/asset/repository"
	assetService "skateshop-backend/internal/domains/asset/service"

	"skateshop-backend/internal/domains/design"
	designHandler "skateshop-backend/internal/domains/design/handler"
	designRepo "skateshop-backend/internal/domains/design/repository"
	designService "skateshop-backend/internal/domains/design/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	// Infrastructure - shared, singleton
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Storage     *storage.MinIOStorage
	AsynqClient *asynq.Client

	// Repositories
	AssetRepo  asset.Repository
	DesignRepo design.Repository

	// Services
	AssetService  asset.Service
	DesignService design.Service

	// Handlers
	AssetHandler  *assetHandler.AssetHandler
	DesignHandler *designHandler.DesignHandler
}

// NewContainer khởi tạo toàn bộ dependency graph theo thứ tự:
// Config → Infrastructure (DB, Redis, MinIO, Asynq) → Repos → Services → Handlers
// Thứ tự sai → nil pointer dereference
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisClient(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure không critical - log warning và continue
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("🪣 Connecting to MinIO...")

	objStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init MinIO storage: %w", err)
	}
	c.Storage = objStorage
	log.Println("✅ MinIO connected")

	// ========================================
	// STEP 5: INITIALIZE JOB QUEUE CLIENT
	// ========================================
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// ========================================
	// STEP 6: REPOSITORIES → SERVICES → HANDLERS
	// ========================================
	log.Println("📦 Initializing repositories...")
	c.initRepositories()

	log.Println("⚙️  Initializing services...")
	c.initServices()

	log.Println("🎯 Initializing handlers...")
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.AssetRepo = assetRepo.NewAssetRepository(pool)
	c.DesignRepo = designRepo.NewDesignRepository(pool)
}

func (c *Container) initServices() {
	c.AssetService = assetService.NewService(
		c.AssetRepo,
		c.Cache,
		c.Storage,
		storage.NewImageProcessor(),
		c.AsynqClient,
	)
	c.DesignService = designService.NewService(c.DesignRepo)
}

func (c *Container) initHandlers() {
	c.AssetHandler = assetHandler.NewAssetHandler(c.AssetService)
	c.DesignHandler = designHandler.NewDesignHandler(c.DesignService)
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close asynq client: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
