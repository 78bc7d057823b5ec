package app

import (
	"gorm.io/gorm"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/config"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/auth"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/database"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/notifications"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/infrastructure/repositories"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/services"

	"github.com/sirupsen/logrus"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config
	Log    *logrus.Logger

	// Infrastructure
	DB *gorm.DB

	// Repositories
	AdminRepo    domain.AdminRepository
	EnquiryRepo  domain.EnquiryRepository
	ProductRepo  domain.ProductRepository
	CategoryRepo domain.CategoryRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	EnquirySvc      domain.EnquiryService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, log *logrus.Logger) (*Container, error) {
	container := &Container{Config: cfg, Log: log}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRepositories() {
	c.AdminRepo = repositories.NewAdminRepository(c.DB)
	c.EnquiryRepo = repositories.NewEnquiryRepository(c.DB)
	c.ProductRepo = repositories.NewProductRepository(c.DB)
	c.CategoryRepo = repositories.NewCategoryRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.NotificationSvc = notifications.NewMailer(notifications.MailerConfig{
		Host:     c.Config.SMTPHost,
		Port:     c.Config.SMTPPort,
		Username: c.Config.SMTPUser,
		Password: c.Config.SMTPPass,
		From:     c.Config.MailFrom,
		FromName: c.Config.MailFromName,
	}, c.Log)

	c.OTPSvc = services.NewOTPService(c.AdminRepo, c.NotificationSvc, services.OTPConfig{
		Username:    c.Config.AdminUsername,
		Recipient:   c.Config.AdminEmail,
		Length:      c.Config.OTPLength,
		TTL:         c.Config.OTPTTL,
		Cooldown:    c.Config.OTPCooldown,
		MaxAttempts: c.Config.OTPMaxAttempts,
	}, c.Log)

	c.AuthSvc = services.NewAuthService(
		c.AdminRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		c.Config.AdminUsername,
		int64(c.Config.TokenTTL.Seconds()),
		c.Log,
	)

	c.EnquirySvc = services.NewEnquiryService(
		c.EnquiryRepo,
		c.ProductRepo,
		c.NotificationSvc,
		c.Config.AdminEmail,
		c.Log,
	)
}
