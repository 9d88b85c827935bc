package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"razorpay-checkout/internal/dto"
	"razorpay-checkout/internal/middleware"
	"razorpay-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	logger       *slog.Logger
	orderService service.OrderService
}

func NewOrderHandler(logger *slog.Logger, orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		logger:       logger,
		orderService: orderService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		h.logger.ErrorContext(ctx, "bind create order request", "error", err)
		return internalServerError(c)
	}

	result, err := h.orderService.CreateIntent(ctx, middleware.UserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return unauthorized(c)
		}
		// callers only learn that creation failed
		h.logger.ErrorContext(ctx, "create order", "error", err)
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) ListUserOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListUserOrders(ctx, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return unauthorized(c)
		}
		h.logger.ErrorContext(ctx, "list user orders", "error", err)
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, orders)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, dto.Message{Message: "Unauthorized"})
}

func internalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, dto.Message{Message: "Internal Server Error"})
}
