package server

import (
	"context"
	"log/slog"
	"net/http"

	"razorpay-checkout/internal/handler"
	authmw "razorpay-checkout/internal/middleware"
	"razorpay-checkout/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Services struct {
	Auth    service.AuthService
	Product service.ProductService
	Order   service.OrderService
	Webhook service.WebhookService
}

type Server struct {
	echo           *echo.Echo
	authService    service.AuthService
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	webhookHandler *handler.WebhookHandler
}

func NewServer(logger *slog.Logger, services Services) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		authService:    services.Auth,
		authHandler:    handler.NewAuthHandler(logger, services.Auth),
		productHandler: handler.NewProductHandler(services.Product),
		orderHandler:   handler.NewOrderHandler(logger, services.Order),
		webhookHandler: handler.NewWebhookHandler(logger, services.Webhook),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/register", s.authHandler.Register)
	auth.POST("/login", s.authHandler.Login)

	api.GET("/products", s.productHandler.ListProducts)
	api.GET("/products/:id", s.productHandler.GetProduct)

	// -------- orders --------
	orders := api.Group("/orders", authmw.AuthMiddleware(s.authService))
	orders.POST("", s.orderHandler.CreateOrder)
	orders.GET("/user", s.orderHandler.ListUserOrders)

	// -------- razorpay webhooks --------
	api.POST("/webhook/razorpay", s.webhookHandler.RazorpayWebhook)
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
