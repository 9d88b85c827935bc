package dto

import (
	"time"

	"razorpay-checkout/internal/model"
)

type CreateOrderRequest struct {
	ProductID string        `json:"productId"`
	Variant   model.Variant `json:"variant"`
}

type CreateOrderResponse struct {
	OrderID   string `json:"orderId"` // razorpay order id, handed to checkout.js
	Amount    int64  `json:"amount"`  // paise
	Currency  string `json:"currency"`
	DBOrderID string `json:"dbOrderId"`
}

type UserOrder struct {
	ID             string        `json:"id"`
	ProductID      string        `json:"productId"`
	ProductName    string        `json:"productName"`
	ProductImage   string        `json:"productImage"`
	Variant        model.Variant `json:"variant"`
	GatewayOrderID string        `json:"razorpayOrderId"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	Status         string        `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type Message struct {
	Message string `json:"message"`
}
