package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// OrderRequest represents the request to create a gateway order.
type OrderRequest struct {
	Amount   decimal.Decimal   `json:"amount"`
	Currency string            `json:"currency,omitempty"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// OrderResponse represents the created gateway order.
type OrderResponse struct {
	OrderID  string          `json:"order_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

type orderResult struct {
	data map[string]interface{}
	err  error
}

// CreateOrder creates a gateway order for req.Amount. The gateway expects the
// amount in currency subunits (paise for INR). The SDK call carries no context,
// so it runs under a bounded deadline and a timeout surfaces as a plain error
// with nothing persisted.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (OrderResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}

	payload := map[string]interface{}{
		"amount":   req.Amount.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": currency,
		"receipt":  req.Receipt,
	}
	if len(req.Notes) > 0 {
		notes := make(map[string]interface{}, len(req.Notes))
		for k, v := range req.Notes {
			notes[k] = v
		}
		payload["notes"] = notes
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ch := make(chan orderResult, 1)
	go func() {
		data, err := c.api.Order.Create(payload, nil)
		ch <- orderResult{data: data, err: err}
	}()

	var data map[string]interface{}
	select {
	case <-ctx.Done():
		return OrderResponse{}, fmt.Errorf("failed to create order: %w", ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return OrderResponse{}, fmt.Errorf("failed to create order: %w", res.err)
		}
		data = res.data
	}

	orderID, _ := data["id"].(string)
	if orderID == "" {
		return OrderResponse{}, &APIError{Op: "order create", Message: "response carried no order id"}
	}

	resp := OrderResponse{
		OrderID:  orderID,
		Amount:   req.Amount,
		Currency: currency,
	}
	if status, ok := data["status"].(string); ok {
		resp.Status = status
	}

	return resp, nil
}
