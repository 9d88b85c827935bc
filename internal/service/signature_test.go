package service_test

import (
	"strings"
	"testing"

	"razorpay-checkout/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	const secret = "whsec_test"
	body := []byte(`{"event":"payment.captured"}`)
	valid := service.SignPayload(body, secret)

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		want      bool
	}{
		{name: "valid", body: body, signature: valid, secret: secret, want: true},
		{name: "uppercase hex", body: body, signature: strings.ToUpper(valid), secret: secret, want: true},
		{name: "empty signature", body: body, signature: "", secret: secret},
		{name: "empty secret", body: body, signature: valid, secret: ""},
		{name: "wrong secret", body: body, signature: valid, secret: "other"},
		{name: "tampered body", body: []byte(`{"event":"payment.captured" }`), signature: valid, secret: secret},
		{name: "not hex", body: body, signature: "zz" + valid[2:], secret: secret},
		{name: "truncated", body: body, signature: valid[:32], secret: secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.VerifySignature(tt.body, tt.signature, tt.secret))
		})
	}
}

func TestSignPayload_KnownVector(t *testing.T) {
	// RFC 4231 test case 2
	got := service.SignPayload([]byte("what do ya want for nothing?"), "Jefe")
	assert.Equal(t, "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843", got)
}
