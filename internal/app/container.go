package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Jasmitsingh01/school-management/domain"
	"github.com/Jasmitsingh01/school-management/internal/config"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/auth"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/database"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/notifications"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/repositories"
	"github.com/Jasmitsingh01/school-management/internal/infrastructure/storage"
	"github.com/Jasmitsingh01/school-management/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo   domain.UserRepository
	OTPRepo    domain.OTPRepository
	SchoolRepo domain.SchoolRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	SchoolSvc       domain.SchoolService
	Storage         domain.FileStorage
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = redis.NewClient(&redis.Options{
		Addr:     c.Config.RedisAddr,
		Password: c.Config.RedisPassword,
		DB:       c.Config.RedisDB,
	})
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.OTPRepo = repositories.NewOTPRepository(c.DB)
	c.SchoolRepo = repositories.NewSchoolRepository(c.DB)
}

func (c *Container) initServices() error {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.SessionSecret,
		c.Config.SessionIssuer,
		c.Config.SessionTTL,
	)
	c.NotificationSvc = notifications.NewSMTPService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	otpConfig := services.OTPConfig{
		Length:       c.Config.OTP_Length,
		TTL:          c.Config.OTP_TTL,
		ResendWindow: c.Config.OTP_ResendWindow,
	}
	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.OTPRepo, c.RedisClient, otpConfig)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.OTPSvc)
	c.SchoolSvc = services.NewSchoolService(c.SchoolRepo)

	store, err := c.initStorage()
	if err != nil {
		return err
	}
	c.Storage = store

	return nil
}

func (c *Container) initStorage() (domain.FileStorage, error) {
	if c.Config.StorageBackend == "s3" {
		return storage.NewS3Storage(context.Background(), storage.S3Config{
			Region:    c.Config.S3Region,
			Bucket:    c.Config.S3Bucket,
			Endpoint:  c.Config.S3Endpoint,
			AccessKey: c.Config.S3AccessKey,
			SecretKey: c.Config.S3SecretKey,
		})
	}
	return storage.NewLocalStorage(c.Config.StorageLocalDir, c.Config.StorageBaseURL)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
