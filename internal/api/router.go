package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coreledger/banking-api/internal/api/handler"
	"github.com/coreledger/banking-api/internal/api/middleware"
	"github.com/coreledger/banking-api/internal/core/auth"
	"github.com/coreledger/banking-api/internal/core/ports"
	"github.com/coreledger/banking-api/internal/core/service"
	healthhandlers "github.com/coreledger/banking-api/internal/infrastructure/http/handlers"
)

// RouterConfig carries everything NewRouter needs. Repositories are
// interfaces so tests can wire in-memory fakes; Mongo and Redis are optional
// and only feed the readiness probe and the idempotency guard.
type RouterConfig struct {
	Users        ports.UserRepository
	Accounts     ports.AccountRepository
	Transactions ports.TransactionRepository

	// TokenKey is the raw (base64-decoded) HS256 signing key.
	TokenKey []byte

	Guard handler.IdempotencyGuard

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered
// under the endpoint role policy.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bank"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.TokenKey)
	authService := service.NewAuthService(cfg.Users, tokenService, cfg.Logger)
	userService := service.NewUserService(cfg.Users, cfg.Logger)
	accountService := service.NewAccountService(cfg.Accounts, cfg.Logger)
	transactionService := service.NewTransactionService(cfg.Transactions, cfg.Accounts, cfg.Logger)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(transactionService, cfg.Guard)

	authn := middleware.Auth(tokenService)

	// --- Public auth + docs + ops surface ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := healthhandlers.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	if cfg.Mongo != nil && cfg.Redis != nil {
		readiness := healthhandlers.NewHealthDependenciesHandler(cfg.Mongo, cfg.Redis)
		e.GET("/health/ready", readiness.Readiness)
	}

	// --- Users: registration is public, reads need a token, writes are admin-only ---
	e.POST("/user/add", userHandler.Add)
	e.GET("/user/fetch", userHandler.List, authn, middleware.RBAC(auth.AdminOnly...))
	e.GET("/user/fetch/:id", userHandler.Get, authn, middleware.RBAC(auth.UserOrAdmin...))
	e.PUT("/user/update/:id", userHandler.Update, authn, middleware.RBAC(auth.AdminOnly...))
	e.DELETE("/user/delete/:id", userHandler.Delete, authn, middleware.RBAC(auth.AdminOnly...))

	// --- Accounts: no role restriction ---
	e.GET("/account/fetch", accountHandler.List)
	e.GET("/account/fetch/:id", accountHandler.Get)
	e.POST("/account/add", accountHandler.Add)
	e.PUT("/account/update/:id", accountHandler.Update)
	e.DELETE("/account/delete/:id", accountHandler.Delete)
	e.GET("/account/fetch/user/:userId", accountHandler.ListByUser)

	// --- Transactions: no role restriction ---
	e.POST("/transaction/add", transactionHandler.Add)
	e.GET("/transaction/fetch", transactionHandler.List)
	e.GET("/transaction/fetch/:id", transactionHandler.Get)
	e.PUT("/transaction/update/:id", transactionHandler.Update)
	e.DELETE("/transaction/delete/:id", transactionHandler.Delete)
	e.GET("/transaction/fetch/account/:accountId", transactionHandler.ListByAccount)

	return e
}
