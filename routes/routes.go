package routes

import (
	"safeher/auth"
	"safeher/client"
	"safeher/config"
	"safeher/controller"
	"safeher/middleware"
	"safeher/repository"
	"safeher/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies carries everything the router needs. Tests build it with an
// in-memory repository and a fake OTP gateway.
type Dependencies struct {
	Users   repository.UserRepository
	Gateway service.OtpGateway
	Tokens  *auth.TokenService
	Cfg     *config.SystemConfigs
}

func SetupRouter(db *mongo.Database, cfg *config.SystemConfigs) *gin.Engine {
	deps := Dependencies{
		Users:   repository.NewUserRepository(db),
		Gateway: client.NewTwoFactorClient(cfg.Config.TwoFactorApiKey),
		Tokens:  auth.NewTokenService(cfg.Config.JwtSecret),
		Cfg:     cfg,
	}
	return New(deps)
}

func New(deps Dependencies) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(deps.Cfg))
	r.Use(middleware.RateLimiter(deps.Cfg))

	otpSvc := service.NewOtpService(deps.Gateway)
	authSvc := service.NewAuthService(deps.Users, deps.Tokens)
	userSvc := service.NewUserService(deps.Users)

	authenticate := middleware.AuthMiddleware(deps.Tokens, deps.Users)
	userCtrl := controller.NewUserController(userSvc)

	api := r.Group("/api")
	{
		controller.NewHealthController().RegisterRoutes(api)
		controller.NewAuthController(authSvc, otpSvc).RegisterRoutes(api)
	}

	user := r.Group("/user")
	user.Use(authenticate)
	{
		userCtrl.RegisterRoutes(user)
	}

	profile := r.Group("/auth")
	profile.Use(authenticate)
	{
		userCtrl.RegisterProfileRoutes(profile)
	}

	return r
}
