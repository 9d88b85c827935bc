package client_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"razorpay-checkout/internal/client"
	"razorpay-checkout/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRazorpayClient_OpenPaymentIntent(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		response   string
		wantIntent *client.PaymentIntent
		wantError  string
	}{
		{
			name:     "created: ok",
			status:   http.StatusOK,
			response: `{"id":"order_EKwxwAgItmmXdp","entity":"order","amount":49999,"currency":"INR","receipt":"r1","status":"created"}`,
			wantIntent: &client.PaymentIntent{
				GatewayOrderID: "order_EKwxwAgItmmXdp",
				Amount:         49999,
				Currency:       "INR",
			},
		},
		{
			name:      "gateway rejection: error with description",
			status:    http.StatusBadRequest,
			response:  `{"error":{"code":"BAD_REQUEST_ERROR","description":"Order amount less than minimum amount allowed"}}`,
			wantError: "razorpay error 400: BAD_REQUEST_ERROR: Order amount less than minimum amount allowed",
		},
		{
			name:      "unexpected body: error with raw body",
			status:    http.StatusBadGateway,
			response:  `upstream down`,
			wantError: "razorpay error 502: upstream down",
		},
		{
			name:      "missing id: error",
			status:    http.StatusOK,
			response:  `{"entity":"order"}`,
			wantError: "razorpay response missing order id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured struct {
				method, path, user, pass string
				body                     map[string]any
			}

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured.method = r.Method
				captured.path = r.URL.Path
				captured.user, captured.pass, _ = r.BasicAuth()
				raw, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(raw, &captured.body)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer srv.Close()

			gateway := client.NewRazorpayClient(&config.Razorpay{
				BaseApiURL: srv.URL + "/",
				KeyID:      "rzp_test_key",
				KeySecret:  "rzp_test_secret",
			})

			intent, err := gateway.OpenPaymentIntent(t.Context(), 49999, "INR", "r1", map[string]string{"productId": "p1"})

			assert.Equal(t, http.MethodPost, captured.method)
			assert.Equal(t, "/v1/orders", captured.path)
			assert.Equal(t, "rzp_test_key", captured.user)
			assert.Equal(t, "rzp_test_secret", captured.pass)
			assert.EqualValues(t, 49999, captured.body["amount"])
			assert.Equal(t, "INR", captured.body["currency"])
			assert.Equal(t, "r1", captured.body["receipt"])
			assert.Equal(t, map[string]any{"productId": "p1"}, captured.body["notes"])

			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				assert.Nil(t, intent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, intent)
		})
	}
}

func TestRazorpayClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	gateway := client.NewRazorpayClient(&config.Razorpay{BaseApiURL: url})

	_, err := gateway.OpenPaymentIntent(t.Context(), 100, "INR", "r1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "razorpay create order request failed")
}
