package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/deskhive/booking-system/internal/api/handler"
	"github.com/deskhive/booking-system/internal/api/middleware"
	"github.com/deskhive/booking-system/internal/core/domain"
	"github.com/deskhive/booking-system/internal/core/service"
	"github.com/deskhive/booking-system/internal/infrastructure/config"
	mongodb "github.com/deskhive/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/deskhive/booking-system/internal/infrastructure/db/redis"
)

const maxBodySize = "10K"

// NewRouter builds the Echo instance with the full middleware chain and every
// route registered.
func NewRouter(cfg *config.Config, mongoClient *mongo.Client, db *mongo.Database, rdb *goredis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware, outermost first ---
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.ClientOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit(maxBodySize))
	e.Use(middleware.Sanitize())
	e.Use(echomiddleware.Gzip())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echomiddleware.Recover())
	e.Use(echoprometheus.NewMiddleware("booking"))

	e.RouteNotFound("/*", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("Can't find %s on this server!", c.Request().URL.Path))
	})

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roomRepo := mongodb.NewRoomRepository(db)
	floorRepo := mongodb.NewFloorRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	visitorRepo := mongodb.NewVisitorRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	voucherRepo := mongodb.NewVoucherRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	userService := service.NewUserService(userRepo, log)
	roomService := service.NewRoomService(roomRepo, log)
	floorService := service.NewFloorService(floorRepo)
	employeeService := service.NewEmployeeService(employeeRepo, userRepo)
	visitorService := service.NewVisitorService(visitorRepo, roomRepo)
	orderService := service.NewOrderService(orderRepo, roomRepo, voucherRepo, log)
	voucherService := service.NewVoucherService(voucherRepo)

	cookies := handler.NewCookiePolicy(time.Duration(cfg.CookieTTLHours)*time.Hour, cfg.TrustedProxies)

	authHandler := handler.NewAuthHandler(authService, cookies)
	userHandler := handler.NewUserHandler(userService)
	roomHandler := handler.NewRoomHandler(roomService)
	floorHandler := handler.NewFloorHandler(floorService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	visitorHandler := handler.NewVisitorHandler(visitorService)
	orderHandler := handler.NewOrderHandler(orderService)
	voucherHandler := handler.NewVoucherHandler(voucherService)
	healthHandler := handler.NewHealthHandler(mongoClient, rdb)

	authn := middleware.Authenticate(authService)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)
	adminOrOwner := middleware.RequireRoles(domain.RoleAdmin, domain.RoleOwner)

	// --- Probes and operational endpoints (outside the rate limit) ---
	e.Static("/public", "public")
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- API, rate limited as a group ---
	window := time.Duration(cfg.RateWindowMinutes) * time.Minute
	api := e.Group("/api", middleware.RateLimit(redisdb.NewRequestCounter(rdb, window), cfg.RateLimit, log))

	api.GET("/test", healthHandler.Test)

	v1 := api.Group("/v1")

	users := v1.Group("/users")
	users.POST("/signup", authHandler.Signup)
	users.POST("/login", authHandler.Login)
	users.POST("/logout", authHandler.Logout)
	users.GET("/me", userHandler.Me, authn)
	users.GET("", userHandler.List, authn, adminOnly)
	users.GET("/:id", userHandler.Get, authn, adminOnly)
	users.PATCH("/:id", userHandler.Update, authn, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authn, adminOnly)

	rooms := v1.Group("/rooms")
	rooms.GET("", roomHandler.List)
	rooms.GET("/:id", roomHandler.Get)
	rooms.POST("", roomHandler.Create, authn, adminOrOwner)
	rooms.PATCH("/:id", roomHandler.Update, authn, adminOrOwner)
	rooms.DELETE("/:id", roomHandler.Delete, authn, adminOrOwner)

	floors := v1.Group("/floors", authn)
	floors.GET("", floorHandler.List)
	floors.GET("/:id", floorHandler.Get)
	floors.POST("", floorHandler.Create, adminOrOwner)
	floors.PATCH("/:id", floorHandler.Update, adminOrOwner)
	floors.DELETE("/:id", floorHandler.Delete, adminOrOwner)

	employees := v1.Group("/employees", authn)
	employees.GET("", employeeHandler.List, adminOrOwner)
	employees.GET("/:id", employeeHandler.Get, adminOrOwner)
	employees.POST("", employeeHandler.Create, adminOrOwner)
	employees.PATCH("/:id", employeeHandler.Update, adminOrOwner)
	employees.DELETE("/:id", employeeHandler.Delete, adminOrOwner)

	visitors := v1.Group("/visitors", authn)
	visitors.GET("", visitorHandler.List)
	visitors.GET("/:id", visitorHandler.Get)
	visitors.POST("", visitorHandler.Create)
	visitors.PATCH("/:id", visitorHandler.Update, adminOrOwner)
	visitors.DELETE("/:id", visitorHandler.Delete, adminOrOwner)

	vouchers := v1.Group("/vouchers", authn)
	vouchers.GET("", voucherHandler.List)
	vouchers.GET("/:id", voucherHandler.Get)
	vouchers.POST("", voucherHandler.Create, adminOrOwner)
	vouchers.PATCH("/:id", voucherHandler.Update, adminOrOwner)
	vouchers.DELETE("/:id", voucherHandler.Delete, adminOrOwner)

	orders := v1.Group("/orders", authn)
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.PATCH("/:id/cancel", orderHandler.Cancel)
	orders.DELETE("/:id", orderHandler.Delete, adminOnly)

	return e
}

// requestLogger emits one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
