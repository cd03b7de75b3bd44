package di

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"meetapp/application/serviceimpl"
	"meetapp/domain/ports"
	"meetapp/domain/repositories"
	"meetapp/domain/services"
	"meetapp/infrastructure/messaging"
	natspkg "meetapp/infrastructure/nats"
	"meetapp/infrastructure/postgres"
	redispkg "meetapp/infrastructure/redis"
	"meetapp/infrastructure/storage"
	"meetapp/interfaces/api/handlers"
	"meetapp/pkg/config"
	"meetapp/pkg/logger"
	"meetapp/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config   *config.Config
	Location *time.Location

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // Redis client สำหรับ cache (optional)
	NATSClient     *natspkg.Client  // NATS connection + JetStream (optional)
	NATSPublisher  *natspkg.Publisher
	Storage        ports.StoragePort // Port/Adapter pattern
	Events         ports.EventPublisherPort
	EventScheduler scheduler.EventScheduler

	// Repositories
	UserRepository         repositories.UserRepository
	FileRepository         repositories.FileRepository
	MeetupRepository       repositories.MeetupRepository
	RegistrationRepository repositories.RegistrationRepository

	// Services
	UserService          services.UserService
	FileService          services.FileService
	MeetupService        services.MeetupService
	RegistrationService  services.RegistrationService
	BannerCleanupService services.BannerCleanupService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Location = cfg.Location()
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"timezone", c.Location.String(),
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		LogLevel: c.Config.Database.LogLevel,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database migrated")

	// Redis (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}

	c.initEvents()

	return c.initStorage()
}

// initEvents ใช้ NATS ถ้าต่อได้ ไม่งั้น log event เฉยๆ
func (c *Container) initEvents() {
	natsClient, err := natspkg.NewClient(natspkg.ClientConfig{
		URL:    c.Config.NATS.URL,
		Stream: c.Config.NATS.Stream,
	})
	if err != nil {
		logger.Warn("NATS client initialization failed (events logged only)", "error", err)
		c.Events = messaging.NewNoopEventPublisher()
		return
	}

	c.NATSClient = natsClient
	c.NATSPublisher = natspkg.NewPublisher(natsClient)
	c.Events = messaging.NewNATSEventPublisher(c.NATSPublisher)
}

// initStorage สร้าง storage adapter ตาม config
func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage
		logger.Info("S3 Storage initialized",
			"endpoint", c.Config.Storage.S3.Endpoint,
			"bucket", c.Config.Storage.S3.Bucket,
		)

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Storage.BasePath)
	}

	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.FileRepository = postgres.NewFileRepository(c.DB)
	c.MeetupRepository = postgres.NewMeetupRepository(c.DB)
	c.RegistrationRepository = postgres.NewRegistrationRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() {
	if c.RedisClient != nil {
		c.UserService = serviceimpl.NewUserServiceWithCache(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.ExpiresIn, c.RedisClient)
	} else {
		c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.ExpiresIn)
	}
	c.FileService = serviceimpl.NewFileService(c.FileRepository, c.Storage, c.Config.Storage.MaxUploadSize)

	// Meetup Service (with optional Redis cache)
	if c.RedisClient != nil {
		c.MeetupService = serviceimpl.NewMeetupServiceWithCache(
			c.MeetupRepository,
			c.FileRepository,
			c.Storage,
			c.Events,
			c.Location,
			c.RedisClient,
			c.Config.Redis.ListTTL,
		)
		logger.Info("Meetup service initialized with Redis cache", "ttl", c.Config.Redis.ListTTL)
	} else {
		c.MeetupService = serviceimpl.NewMeetupService(c.MeetupRepository, c.FileRepository, c.Storage, c.Events, c.Location)
		logger.Info("Meetup service initialized without cache")
	}

	c.RegistrationService = serviceimpl.NewRegistrationService(c.RegistrationRepository, c.MeetupRepository, c.Storage, c.Events)

	logger.Info("Services initialized")
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler(c.Location)

	if !c.Config.Cleanup.Enabled {
		logger.Info("Banner cleanup disabled")
		return nil
	}

	if err := scheduler.ValidateCronExpression(c.Config.Cleanup.Cron); err != nil {
		return fmt.Errorf("invalid CLEANUP_CRON: %w", err)
	}

	cleanup := serviceimpl.NewBannerCleanupService(
		serviceimpl.BannerCleanupConfig{
			Cron:        c.Config.Cleanup.Cron,
			OrphanAfter: c.Config.Cleanup.OrphanAfter,
		},
		c.FileRepository,
		c.Storage,
		c.EventScheduler,
	)
	if err := cleanup.RegisterCleanupJob(); err != nil {
		return err
	}
	c.BannerCleanupService = cleanup

	c.EventScheduler.Start()
	logger.Info("Banner cleanup scheduled", "cron", c.Config.Cleanup.Cron, "orphan_after", c.Config.Cleanup.OrphanAfter)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// FilesDir is the directory to serve under /files, empty unless storage is local.
func (c *Container) FilesDir() string {
	if local, ok := c.Storage.(*storage.LocalStorage); ok {
		return local.BasePath()
	}
	return ""
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		UserService:         c.UserService,
		FileService:         c.FileService,
		MeetupService:       c.MeetupService,
		RegistrationService: c.RegistrationService,
		Location:            c.Location,
	}
}
