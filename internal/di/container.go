package di

import (
	"context"
	"fmt"
	"time"

	"github.com/MischieS/agenta-sub001/internal/auth"
	"github.com/MischieS/agenta-sub001/internal/handler"
	"github.com/MischieS/agenta-sub001/internal/repository"
	"github.com/MischieS/agenta-sub001/internal/service"
	"github.com/MischieS/agenta-sub001/pkg/config"
	"github.com/MischieS/agenta-sub001/pkg/database"
	"github.com/MischieS/agenta-sub001/pkg/kafka"
	"github.com/MischieS/agenta-sub001/pkg/logger"
	"github.com/MischieS/agenta-sub001/pkg/redis"
)

// Container wires infrastructure, repositories, services and handlers
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Redis *redis.Client
	Kafka *kafka.Producer

	AuthService         service.AuthService
	UserService         service.UserService
	StudentService      service.StudentService
	UniversityService   service.UniversityService
	MessageService      service.MessageService
	NotificationService service.NotificationService
	DocumentService     service.DocumentService

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	StudentHandler      *handler.StudentHandler
	UniversityHandler   *handler.UniversityHandler
	MessageHandler      *handler.MessageHandler
	NotificationHandler *handler.NotificationHandler
	DocumentHandler     *handler.DocumentHandler
	HealthHandler       *handler.HealthHandler
}

// NewContainer builds the full dependency graph
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log := logger.Get()

	db, err := database.NewPostgres(ctx, &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  10 * time.Second,
		MaxRetries:      3,
		RetryInterval:   2 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, &redis.Config{
		Host:          cfg.Redis.Host,
		Port:          cfg.Redis.Port,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		PoolSize:      cfg.Redis.PoolSize,
		MinIdleConns:  cfg.Redis.MinIdleConns,
		DialTimeout:   cfg.Redis.DialTimeout,
		ReadTimeout:   cfg.Redis.ReadTimeout,
		WriteTimeout:  cfg.Redis.WriteTimeout,
		MaxRetries:    3,
		RetryInterval: time.Second,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	var producer *kafka.Producer
	var events service.EventPublisher = service.NopEventPublisher{}
	if cfg.Kafka.Enabled {
		producer, err = kafka.NewProducer(ctx, &kafka.ProducerConfig{
			Brokers:  cfg.Kafka.Brokers,
			ClientID: cfg.Kafka.ClientID,
			Topic:    cfg.Kafka.Topic,
		})
		if err != nil {
			redisClient.Close()
			db.Close()
			return nil, fmt.Errorf("connect kafka: %w", err)
		}
		events = service.NewKafkaEventPublisher(producer)
	} else {
		log.Info("kafka disabled, domain events will not be published")
	}

	pool := db.Pool()
	userRepo := repository.NewPostgresUserRepository(pool)
	studentRepo := repository.NewPostgresStudentRepository(pool)
	universityRepo := repository.NewCachedUniversityRepository(
		repository.NewPostgresUniversityRepository(pool),
		redisClient,
		cfg.Redis.CatalogTTL,
	)
	messageRepo := repository.NewPostgresMessageRepository(pool)
	notificationRepo := repository.NewPostgresNotificationRepository(pool)
	documentRepo := repository.NewPostgresDocumentRepository(pool)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)

	authService := service.NewAuthService(userRepo, studentRepo, tokens, nil)
	userService := service.NewUserService(userRepo, studentRepo, auth.DefaultBcryptCost)
	notificationService := service.NewNotificationService(notificationRepo, events)
	studentService := service.NewStudentService(studentRepo, userRepo, notificationService, auth.DefaultBcryptCost)
	universityService := service.NewUniversityService(universityRepo)
	messageService := service.NewMessageService(messageRepo, studentRepo, notificationService)
	documentService := service.NewDocumentService(documentRepo, studentRepo)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Kafka:  producer,

		AuthService:         authService,
		UserService:         userService,
		StudentService:      studentService,
		UniversityService:   universityService,
		MessageService:      messageService,
		NotificationService: notificationService,
		DocumentService:     documentService,

		AuthHandler:         handler.NewAuthHandler(authService),
		UserHandler:         handler.NewUserHandler(authService, userService),
		StudentHandler:      handler.NewStudentHandler(studentService),
		UniversityHandler:   handler.NewUniversityHandler(universityService),
		MessageHandler:      handler.NewMessageHandler(messageService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		DocumentHandler:     handler.NewDocumentHandler(documentService),
		HealthHandler:       handler.NewHealthHandler(db, redisClient, cfg.App.Version),
	}, nil
}

// Close releases infrastructure resources in reverse order
func (c *Container) Close() {
	if c.Kafka != nil {
		c.Kafka.Close()
	}
	if c.Redis != nil {
		c.Redis.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
