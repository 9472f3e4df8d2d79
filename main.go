package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/vasthra/vasthra-api/controllers"
	"github.com/vasthra/vasthra-api/initializers"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/middlewares"
	"github.com/vasthra/vasthra-api/repository"
	"github.com/vasthra/vasthra-api/routes"
	"github.com/vasthra/vasthra-api/services"
	"github.com/vasthra/vasthra-api/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func main() {
	envErr := initializers.LoadEnv()
	cfg, err := initializers.LoadConfig()
	if err != nil {
		logger.Initialize("development")
		logger.Log.Fatal("Invalid configuration", zap.Error(err))
	}

	logger.Initialize(cfg.Env)
	defer logger.Sync()
	if envErr != nil {
		logger.Log.Warn("No .env file found, using system environment variables", zap.Error(envErr))
	}

	if err := initializers.ConnectToDB(cfg); err != nil {
		logger.Log.Fatal("Database unavailable", zap.Error(err))
	}
	defer initializers.CloseDB()
	if err := initializers.SyncDatabase(); err != nil {
		logger.Log.Fatal("Database migration failed", zap.Error(err))
	}

	// Prices leave the API as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	server, err := newServer(cfg)
	if err != nil {
		logger.Log.Fatal("Invalid trusted proxies", zap.Error(err))
	}
	registerRoutes(server, cfg, initializers.DB)

	logger.Log.Info("Server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := server.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server stopped", zap.Error(err))
	}
}

// newServer builds the router with the global middleware stack. With no
// trusted proxies configured, client IPs come from the socket address and
// forwarding headers are ignored.
func newServer(cfg *initializers.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	server := gin.New()
	if err := server.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	server.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.SecurityHeaders())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return server, nil
}

func newLoginLimiter() gin.HandlerFunc {
	return middlewares.NewRateLimiter(rate.Every(time.Minute/10), 5, 10*time.Minute).Middleware()
}

func registerRoutes(server *gin.Engine, cfg *initializers.Config, db *gorm.DB) {
	users := repository.NewGormUserRepository(db)
	addresses := repository.NewGormAddressRepository(db)
	products := repository.NewGormProductRepository(db)
	carts := repository.NewGormCartRepository(db)
	orders := repository.NewGormOrderRepository(db)

	tokens := services.NewTokenService(cfg.JWTSecret)

	var uploader services.ImageUploader
	if cfg.S3Bucket != "" {
		s3, err := utils.NewS3Uploader(context.Background(), cfg.S3Bucket)
		if err != nil {
			logger.Log.Warn("Image uploads disabled", zap.Error(err))
		} else {
			uploader = s3
		}
	}

	var mailer services.OrderMailer
	if cfg.MailEnabled() {
		mailer = utils.NewSMTPMailer(utils.MailConfig{
			Address:  cfg.SMTPAddress,
			Host:     cfg.FromSMTPHost,
			From:     cfg.FromEmail,
			Password: cfg.FromPassword,
		})
	}

	requireAuth := middlewares.RequireAuth(tokens)
	loginLimit := newLoginLimiter()

	routes.DefaultRoutes(server, controllers.NewDefaultController(repository.NewHealthRepository(db)))
	routes.UserRoutes(server,
		controllers.NewAuthController(services.NewAuthService(users, tokens), cfg.IsProduction()),
		controllers.NewUserController(services.NewUserService(users, addresses)),
		requireAuth, loginLimit)
	routes.ProductRoutes(server, controllers.NewProductController(services.NewCatalogService(products)))
	routes.CartRoutes(server, controllers.NewCartController(services.NewCartService(carts, products)), requireAuth)
	routes.OrderRoutes(server, controllers.NewOrderController(services.NewOrderService(orders, users, mailer)), requireAuth)
	routes.SellerRoutes(server, controllers.NewSellerController(services.NewSellerService(products, uploader)), requireAuth)
}
