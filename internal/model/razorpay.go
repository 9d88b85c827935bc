package model

import (
	"encoding/json"
	"errors"
)

const EventPaymentCaptured = "payment.captured"

type RazorpayPaymentEntity struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Email    string `json:"email"`
}

type RazorpayPayment struct {
	Entity RazorpayPaymentEntity `json:"entity"`
}

type RazorpayPayload struct {
	Payment *RazorpayPayment `json:"payment"`
}

type RazorpayWebhookEvent struct {
	Entity    string          `json:"entity"`
	AccountID string          `json:"account_id"`
	Event     string          `json:"event"`
	Contains  []string        `json:"contains"`
	Payload   RazorpayPayload `json:"payload"`
	CreatedAt int64           `json:"created_at"`
}

// ParseRazorpayWebhookEvent decodes a webhook envelope. An empty event name is rejected.
func ParseRazorpayWebhookEvent(body []byte) (*RazorpayWebhookEvent, error) {
	var event RazorpayWebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, err
	}
	if event.Event == "" {
		return nil, errMissingEvent
	}
	return &event, nil
}

var errMissingEvent = errors.New("missing event name")
