package gateway

import (
	"fmt"
	"time"

	"github.com/drivedesk/payroll-backend-go/internal/config"
	razorpay "github.com/razorpay/razorpay-go"
)

// Client wraps the official Razorpay SDK.
type Client struct {
	api      *razorpay.Client
	keyID    string
	currency string
	timeout  time.Duration
}

// NewClient creates a new payment gateway client using the official SDK.
func NewClient(cfg config.GatewayConfig) *Client {
	api := razorpay.NewClient(cfg.KeyID, cfg.KeySecret)

	currency := cfg.Currency
	if currency == "" {
		currency = "INR"
	}

	return &Client{
		api:      api,
		keyID:    cfg.KeyID,
		currency: currency,
		timeout:  cfg.Timeout,
	}
}

// KeyID returns the public half of the credential pair, safe to hand to
// clients for checkout.
func (c *Client) KeyID() string {
	return c.keyID
}

// APIError represents a gateway API error
type APIError struct {
	Op      string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway %s failed: %s", e.Op, e.Message)
}
