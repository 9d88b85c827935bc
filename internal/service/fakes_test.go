package service_test

import (
	"context"
	"errors"
	"sync"

	"razorpay-checkout/internal/client"

	"github.com/brianvoe/gofakeit/v7"
)

type gatewayCall struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   []gatewayCall
	err     error
	orderID string // fixed id for every call when set
}

func (g *fakeGateway) OpenPaymentIntent(_ context.Context, amount int64, currency, receipt string, notes map[string]string) (*client.PaymentIntent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls = append(g.calls, gatewayCall{Amount: amount, Currency: currency, Receipt: receipt, Notes: notes})
	if g.err != nil {
		return nil, g.err
	}

	orderID := g.orderID
	if orderID == "" {
		orderID = "order_" + gofakeit.LetterN(14)
	}
	return &client.PaymentIntent{GatewayOrderID: orderID, Amount: amount, Currency: currency}, nil
}

func (g *fakeGateway) Calls() []gatewayCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]gatewayCall(nil), g.calls...)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) Sent() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

var errSMTPDown = errors.New("smtp: connection refused")
