package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"razorpay-checkout/internal/dto"
	"razorpay-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	logger      *slog.Logger
	authService service.AuthService
}

func NewAuthHandler(logger *slog.Logger, authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	user, err := h.authService.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, dto.Message{Message: err.Error()})
		case errors.Is(err, service.ErrConflict):
			return c.JSON(http.StatusConflict, dto.Message{Message: "email already registered"})
		}
		h.logger.ErrorContext(ctx, "register user", "error", err)
		return internalServerError(c)
	}

	return c.JSON(http.StatusCreated, dto.RegisterResponse{ID: user.ID, Email: user.Email})
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return c.JSON(http.StatusUnauthorized, dto.Message{Message: "invalid email or password"})
		}
		h.logger.ErrorContext(ctx, "login", "error", err)
		return internalServerError(c)
	}

	return c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User: dto.UserInfo{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
