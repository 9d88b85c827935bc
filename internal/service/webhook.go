package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"razorpay-checkout/internal/model"
	"razorpay-checkout/internal/repository"
)

const (
	OutcomeCompleted    = "completed"
	OutcomeDuplicate    = "duplicate"
	OutcomeIgnored      = "ignored"
	OutcomeUnknownOrder = "unknown_order"
	OutcomeMalformed    = "malformed"
)

type WebhookRequest struct {
	Body      []byte
	Signature string
	EventID   string // optional, X-Razorpay-Event-Id
}

type WebhookResult struct {
	Outcome          string
	GatewayOrderID   string
	GatewayPaymentID string
}

type WebhookService interface {
	// HandleWebhook verifies and applies a razorpay delivery. Deliveries may repeat or race;
	// only the first one that finds the order pending completes it.
	HandleWebhook(ctx context.Context, req WebhookRequest) (*WebhookResult, error)
}

type webhookServiceImpl struct {
	logger           *slog.Logger
	webhookSecret    string
	orderRepo        repository.OrderRepository
	webhookEventRepo repository.WebhookEventRepository
	notifier         OrderNotifier
}

func NewWebhookService(
	logger *slog.Logger,
	webhookSecret string,
	orderRepo repository.OrderRepository,
	webhookEventRepo repository.WebhookEventRepository,
	notifier OrderNotifier,
) WebhookService {
	return &webhookServiceImpl{
		logger:           logger,
		webhookSecret:    webhookSecret,
		orderRepo:        orderRepo,
		webhookEventRepo: webhookEventRepo,
		notifier:         notifier,
	}
}

func (s *webhookServiceImpl) HandleWebhook(ctx context.Context, req WebhookRequest) (*WebhookResult, error) {
	if req.Signature == "" {
		return nil, fmt.Errorf("%w: missing signature", ErrUnauthorized)
	}
	if !VerifySignature(req.Body, req.Signature, s.webhookSecret) {
		return nil, fmt.Errorf("%w: signature mismatch", ErrUnauthorized)
	}

	event, parseErr := model.ParseRazorpayWebhookEvent(req.Body)

	eventID := req.EventID
	if eventID == "" {
		eventID = req.Signature
	}
	delivery := &model.WebhookEvent{EventID: eventID}
	if parseErr == nil {
		delivery.EventType = event.Event
		if entity := capturedPayment(event); entity != nil {
			delivery.GatewayOrderID = entity.OrderID
		}
	}
	s.recordDelivery(ctx, delivery)

	result, err := s.apply(ctx, event, parseErr)
	if err != nil {
		return nil, err
	}

	if err := s.webhookEventRepo.SetOutcome(ctx, eventID, result.Outcome); err != nil {
		s.logger.WarnContext(ctx, "set webhook outcome failed", "event_id", eventID, "error", err)
	}

	return result, nil
}

func (s *webhookServiceImpl) apply(ctx context.Context, event *model.RazorpayWebhookEvent, parseErr error) (*WebhookResult, error) {
	if parseErr != nil {
		s.logger.ErrorContext(ctx, "webhook payload rejected", "error", fmt.Errorf("%w: %v", ErrMalformedPayload, parseErr))
		return &WebhookResult{Outcome: OutcomeMalformed}, nil
	}

	if event.Event != model.EventPaymentCaptured {
		s.logger.InfoContext(ctx, "webhook event ignored", "event", event.Event)
		return &WebhookResult{Outcome: OutcomeIgnored}, nil
	}

	payment := capturedPayment(event)
	if payment == nil || payment.OrderID == "" || payment.ID == "" {
		s.logger.ErrorContext(ctx, "webhook payload rejected",
			"error", fmt.Errorf("%w: capture without order or payment id", ErrMalformedPayload))
		return &WebhookResult{Outcome: OutcomeMalformed}, nil
	}

	result := &WebhookResult{
		GatewayOrderID:   payment.OrderID,
		GatewayPaymentID: payment.ID,
	}

	order, err := s.orderRepo.UpdateIfPending(ctx, payment.OrderID, model.OrderTransition{
		Status:           model.OrderStatusCompleted,
		GatewayPaymentID: payment.ID,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "complete order failed", "gateway_order_id", payment.OrderID, "error", err)
		return nil, fmt.Errorf("%w: complete order %s: %v", ErrInternal, payment.OrderID, err)
	}

	if order != nil {
		result.Outcome = OutcomeCompleted
		s.logger.InfoContext(ctx, "order completed",
			"order_id", order.ID,
			"gateway_order_id", order.GatewayOrderID,
			"gateway_payment_id", order.GatewayPaymentID,
		)

		if err := s.notifier.OrderCompleted(ctx, order); err != nil {
			s.logger.ErrorContext(ctx, "order completed notification failed", "order_id", order.ID, "error", err)
		}
		return result, nil
	}

	existing, err := s.orderRepo.FindByGatewayOrderID(ctx, payment.OrderID)
	if errors.Is(err, repository.ErrOrderNotFound) {
		s.logger.WarnContext(ctx, "webhook for unknown order", "gateway_order_id", payment.OrderID)
		result.Outcome = OutcomeUnknownOrder
		return result, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get order %s: %v", ErrInternal, payment.OrderID, err)
	}

	if !existing.Status.IsTerminal() {
		// created between the update and the lookup; let the gateway redeliver
		return nil, fmt.Errorf("%w: order %s still %s", ErrInternal, payment.OrderID, existing.Status)
	}

	s.logger.WarnContext(ctx, "order already in terminal status",
		"gateway_order_id", payment.OrderID,
		"status", existing.Status,
		"gateway_payment_id", payment.ID,
	)
	result.Outcome = OutcomeDuplicate
	return result, nil
}

func (s *webhookServiceImpl) recordDelivery(ctx context.Context, delivery *model.WebhookEvent) {
	firstSeen, err := s.webhookEventRepo.Record(ctx, delivery)
	if err != nil {
		s.logger.WarnContext(ctx, "record webhook delivery failed", "event_id", delivery.EventID, "error", err)
		return
	}
	if !firstSeen {
		s.logger.InfoContext(ctx, "webhook redelivery", "event_id", delivery.EventID, "event", delivery.EventType)
	}
}

func capturedPayment(event *model.RazorpayWebhookEvent) *model.RazorpayPaymentEntity {
	if event == nil || event.Payload.Payment == nil {
		return nil
	}
	return &event.Payload.Payment.Entity
}
