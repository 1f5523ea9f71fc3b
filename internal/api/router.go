package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/gwarranty/user-service/docs"
	"github.com/gwarranty/user-service/internal/api/handler"
	"github.com/gwarranty/user-service/internal/api/middleware"
	"github.com/gwarranty/user-service/internal/core/domain"
	"github.com/gwarranty/user-service/internal/core/ports"
	"github.com/gwarranty/user-service/internal/core/service"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The user repository and DB pinger are injected so tests can run the full
// stack against in-memory doubles.
func NewRouter(users ports.UserRepository, db handler.Pinger, tokens *service.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Dependencies ---
	authService := service.NewAuthService(users, tokens)
	userService := service.NewUserService(users)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.GET("/user-dashboard", authHandler.UserDashboard,
		authRequired, middleware.RBAC(domain.RoleUser, domain.RoleAdmin))
	auth.GET("/admin-panel", authHandler.AdminPanel,
		authRequired, middleware.RBAC(domain.RoleAdmin))
	auth.GET("/shopkeeper-zone", authHandler.ShopkeeperZone,
		authRequired, middleware.RBAC(domain.RoleShopkeeper, domain.RoleAdmin))

	// --- User routes (CRUD is admin-only, registration is public) ---
	usersGroup := e.Group("/users")
	usersGroup.POST("/register", userHandler.Register)

	adminOnly := []echo.MiddlewareFunc{authRequired, middleware.RBAC(domain.RoleAdmin)}
	usersGroup.POST("/admin-create", userHandler.AdminCreate, adminOnly...)
	usersGroup.POST("/create-shopkeeper", userHandler.CreateShopkeeper, adminOnly...)
	usersGroup.GET("", userHandler.List, adminOnly...)
	usersGroup.GET("/:id", userHandler.Get, adminOnly...)
	usersGroup.PUT("/:id", userHandler.Update, adminOnly...)
	usersGroup.DELETE("/:id", userHandler.Delete, adminOnly...)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler()) // prometheus scrape target
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
