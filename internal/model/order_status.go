package model

import (
	"errors"
	"fmt"
)

type OrderStatus string

// remember to add new statuses to validOrderStatuses
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusCompleted: {},
	OrderStatusFailed:    {},
	OrderStatusCancelled: {},
}

var ErrInvalidTransition = errors.New("invalid order transition")

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid order status")
}

// IsTerminal reports whether no further transition is allowed out of s.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusFailed, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
// Only pending orders move, and only into a terminal status.
func CanTransition(from, to OrderStatus) bool {
	return from == OrderStatusPending && to.IsTerminal()
}

// Validate checks the transition target. A completed order must carry the gateway payment id.
func (t OrderTransition) Validate() error {
	if !t.Status.IsTerminal() {
		return fmt.Errorf("%w: target status %q is not terminal", ErrInvalidTransition, t.Status)
	}
	if t.Status == OrderStatusCompleted && t.GatewayPaymentID == "" {
		return fmt.Errorf("%w: completed order requires gateway payment id", ErrInvalidTransition)
	}
	return nil
}
