package repository

import (
	"context"
	"time"

	"razorpay-checkout/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookEventRepository is an audit log of received deliveries. It is never used to decide
// whether an event is applied; the conditional order update does that.
type WebhookEventRepository interface {
	// Record stores the delivery and reports whether it is the first one seen for eventID.
	Record(ctx context.Context, event *model.WebhookEvent) (bool, error)
	// SetOutcome stores the outcome only if none is set yet, so a redelivery never
	// hides which delivery applied the event.
	SetOutcome(ctx context.Context, eventID, outcome string) error
}

type webhookEventRepoImpl struct {
	db *gorm.DB
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepository {
	return &webhookEventRepoImpl{db: db}
}

func (r *webhookEventRepoImpl) Record(ctx context.Context, event *model.WebhookEvent) (bool, error) {
	if event.ReceivedAt.IsZero() {
		event.ReceivedAt = time.Now()
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(event)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *webhookEventRepoImpl) SetOutcome(ctx context.Context, eventID, outcome string) error {
	return r.db.WithContext(ctx).
		Model(&model.WebhookEvent{}).
		Where("event_id = ? AND outcome = ?", eventID, "").
		Update("outcome", outcome).
		Error
}
