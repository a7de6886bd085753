package booking

import (
	"context"

	"labdesk/models"
)

// Previewer asks the backend to price the current discount inputs. The only
// arithmetic done client-side is summing the selected tests' list prices;
// everything else is server-authoritative.
type Previewer struct {
	api DiscountAPI
}

func NewPreviewer(api DiscountAPI) *Previewer {
	return &Previewer{api: api}
}

// Preview validates the discount inputs, sums the selected tests' prices
// from the catalog and requests a server-side preview. The result is stored
// on the draft; a later mutation of the selection or the discount inputs
// invalidates it.
//
// Validation is fail-fast: a request the backend is guaranteed to reject is
// refused here without a network call.
func (p *Previewer) Preview(ctx context.Context, draft *Draft, catalog *Paginator) (*models.DiscountPreview, error) {
	discountType, discountValue := draft.Discount()
	if discountType == models.DiscountNone && discountValue > 0 {
		return nil, NewValidationError("Select discount type")
	}
	if discountType != models.DiscountNone && discountValue <= 0 {
		return nil, NewValidationError("Enter discount value")
	}

	total := 0.0
	for _, id := range draft.SelectedTestIDs() {
		if price, ok := catalog.PriceOf(id); ok {
			total += price
		}
	}

	preview, err := p.api.PreviewDiscount(ctx, total, discountType, discountValue)
	if err != nil {
		return nil, err
	}
	draft.SetPreview(preview)
	return preview, nil
}
