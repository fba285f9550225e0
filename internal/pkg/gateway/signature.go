package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureVerifier verifies payment callback signatures.
type SignatureVerifier struct {
	keySecret string
}

// NewSignatureVerifier creates a new signature verifier
func NewSignatureVerifier(keySecret string) *SignatureVerifier {
	return &SignatureVerifier{
		keySecret: keySecret,
	}
}

// VerifyPaymentSignature verifies the HMAC-SHA256 signature the gateway
// computes over "<orderID>|<paymentID>" with the key secret.
func (v *SignatureVerifier) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	payload := orderID + "|" + paymentID
	mac := hmac.New(sha256.New, []byte(v.keySecret))
	mac.Write([]byte(payload))
	expectedMAC := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expectedMAC), []byte(strings.TrimSpace(signature)))
}
