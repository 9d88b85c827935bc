package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string    `gorm:"primaryKey;size:64;not null" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	ImageURL    string    `gorm:"size:512" json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type User struct {
	ID           string `gorm:"primaryKey;size:36;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null;default:user"` // user, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Variant is the purchased item snapshot taken when the order is created.
type Variant struct {
	Type    string          `json:"type"`
	License string          `json:"license"`
	Price   decimal.Decimal `json:"price"`
}

type Order struct {
	ID               string      `gorm:"primaryKey;size:36;not null"` // also sent as razorpay receipt
	UserID           string      `gorm:"size:36;index;not null"`      // buyer
	ProductID        string      `gorm:"size:64;index;not null"`
	Variant          Variant     `gorm:"type:text;serializer:json;not null"`
	GatewayOrderID   string      `gorm:"size:64;uniqueIndex;not null"` // razorpay order id
	GatewayPaymentID string      `gorm:"size:64;not null;default:''"`  // razorpay payment id, set on capture
	AmountMinorUnits int64       `gorm:"not null"`                     // paise
	Currency         string      `gorm:"size:8;not null"`
	Status           OrderStatus `gorm:"size:16;index;not null"`
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderTransition is the set of columns a webhook or admin path may change on a pending order.
type OrderTransition struct {
	Status           OrderStatus
	GatewayPaymentID string
}

type WebhookEvent struct {
	EventID        string `gorm:"primaryKey;size:128;not null"`
	EventType      string `gorm:"size:64;index"`
	GatewayOrderID string `gorm:"size:64;index"`
	Outcome        string `gorm:"size:32"`
	ReceivedAt     time.Time
	CreatedAt      time.Time
}
