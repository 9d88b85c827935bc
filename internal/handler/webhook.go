package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"razorpay-checkout/internal/dto"
	"razorpay-checkout/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	headerRazorpaySignature = "X-Razorpay-Signature"
	headerRazorpayEventID   = "X-Razorpay-Event-Id"
)

type WebhookHandler struct {
	logger         *slog.Logger
	webhookService service.WebhookService
}

func NewWebhookHandler(logger *slog.Logger, webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		logger:         logger,
		webhookService: webhookService,
	}
}

// RazorpayWebhook answers 200 for every verified delivery, including ones it ignores,
// so razorpay only redelivers on 401 and 500.
func (h *WebhookHandler) RazorpayWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	// the signature covers the raw bytes, so read them before anything decodes the body
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.ErrorContext(ctx, "read webhook body", "error", err)
		return internalServerError(c)
	}

	result, err := h.webhookService.HandleWebhook(ctx, service.WebhookRequest{
		Body:      body,
		Signature: c.Request().Header.Get(headerRazorpaySignature),
		EventID:   c.Request().Header.Get(headerRazorpayEventID),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			h.logger.WarnContext(ctx, "webhook signature rejected", "remote_ip", c.RealIP())
			return unauthorized(c)
		}
		h.logger.ErrorContext(ctx, "handle webhook", "error", err)
		return internalServerError(c)
	}

	h.logger.InfoContext(ctx, "webhook handled",
		"outcome", result.Outcome,
		"gateway_order_id", result.GatewayOrderID,
	)
	return c.JSON(http.StatusOK, dto.Message{Message: "Success"})
}
