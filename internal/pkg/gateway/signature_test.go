package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyPaymentSignature(t *testing.T) {
	v := NewSignatureVerifier("test_secret")

	valid := sign("test_secret", "order_abc123", "pay_xyz789")

	assert.True(t, v.VerifyPaymentSignature("order_abc123", "pay_xyz789", valid))
	assert.True(t, v.VerifyPaymentSignature("order_abc123", "pay_xyz789", "  "+valid+"\n"),
		"surrounding whitespace on the signature should be tolerated")

	assert.False(t, v.VerifyPaymentSignature("order_abc123", "pay_other", valid),
		"signature bound to a different payment must fail")
	assert.False(t, v.VerifyPaymentSignature("order_other", "pay_xyz789", valid),
		"signature bound to a different order must fail")
	assert.False(t, v.VerifyPaymentSignature("order_abc123", "pay_xyz789", ""))
	assert.False(t, v.VerifyPaymentSignature("order_abc123", "pay_xyz789", "not-a-signature"))

	wrongKey := NewSignatureVerifier("other_secret")
	assert.False(t, wrongKey.VerifyPaymentSignature("order_abc123", "pay_xyz789", valid))
}
