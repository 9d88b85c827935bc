package testutil

import (
	"encoding/json"
	"time"

	"razorpay-checkout/internal/model"
)

// PaymentEvent builds a razorpay webhook body for a payment on gatewayOrderID.
func PaymentEvent(event, gatewayOrderID, paymentID string, amount int64) []byte {
	body, err := json.Marshal(model.RazorpayWebhookEvent{
		Entity:    "event",
		AccountID: "acc_test",
		Event:     event,
		Contains:  []string{"payment"},
		Payload: model.RazorpayPayload{
			Payment: &model.RazorpayPayment{
				Entity: model.RazorpayPaymentEntity{
					ID:       paymentID,
					OrderID:  gatewayOrderID,
					Amount:   amount,
					Currency: "INR",
					Status:   "captured",
					Method:   "upi",
				},
			},
		},
		CreatedAt: time.Now().Unix(),
	})
	if err != nil {
		panic(err)
	}
	return body
}

func CapturedEvent(gatewayOrderID, paymentID string, amount int64) []byte {
	return PaymentEvent(model.EventPaymentCaptured, gatewayOrderID, paymentID, amount)
}
