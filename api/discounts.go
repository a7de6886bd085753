package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"labdesk/models"
)

// PreviewDiscount asks the backend to price a discount against amount.
// All discount arithmetic is server-authoritative; the preview is a
// non-binding display estimate and is recomputed at submission.
func (c *Client) PreviewDiscount(ctx context.Context, amount float64, discountType models.DiscountType, discountValue float64) (*models.DiscountPreview, error) {
	body := map[string]any{
		"amount":         amount,
		"discount_type":  discountType,
		"discount_value": discountValue,
	}
	raw, err := c.doJSON(ctx, http.MethodPost, "/discounts/preview", nil, body, nil)
	if err != nil {
		return nil, err
	}
	var preview models.DiscountPreview
	if err := json.Unmarshal(objectItem(raw), &preview); err != nil {
		return nil, fmt.Errorf("failed to decode discount preview: %w", err)
	}
	return &preview, nil
}
