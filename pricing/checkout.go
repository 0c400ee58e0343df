// Package pricing computes the checkout cost breakdown. All functions are
// pure and synchronous; callers recompute on every change to the selection or
// shipping option instead of caching.
package pricing

import "errors"

const (
	// TaxRate is the fixed sales tax applied to the subtotal.
	TaxRate = 0.08
	// FreeShippingThreshold is the subtotal (LKR) above which standard
	// shipping is free.
	FreeShippingThreshold = 300000.0
)

var ErrUnknownShippingOption = errors.New("unknown shipping option")

type LineItem struct {
	UnitPrice float64
	Quantity  int
	Selected  bool
}

type ShippingOption struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
	// FreeOverThreshold waives the fee once the subtotal reaches
	// FreeShippingThreshold.
	FreeOverThreshold bool `json:"free_over_threshold"`
}

var shippingOptions = []ShippingOption{
	{ID: "standard", Label: "Standard Delivery (3-5 days)", Fee: 1500, FreeOverThreshold: true},
	{ID: "express", Label: "Express Delivery (1-2 days)", Fee: 4500},
	{ID: "pickup", Label: "Store Pickup", Fee: 0},
}

// ShippingOptions returns the selectable options in display order.
func ShippingOptions() []ShippingOption {
	out := make([]ShippingOption, len(shippingOptions))
	copy(out, shippingOptions)
	return out
}

type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
	// Empty marks a quote with no selected items; the breakdown is
	// suppressed and a prompt shown instead.
	Empty bool `json:"empty"`
}

// ComputeQuote prices the selected items only; deselected items are excluded
// from the subtotal. Total always equals Subtotal + Tax + ShippingFee.
func ComputeQuote(items []LineItem, shippingOptionID string) (Quote, error) {
	option, ok := findOption(shippingOptionID)
	if !ok {
		return Quote{}, ErrUnknownShippingOption
	}

	subtotal := 0.0
	selected := 0
	for _, item := range items {
		if !item.Selected {
			continue
		}
		selected++
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	if selected == 0 {
		return Quote{Empty: true}, nil
	}

	tax := subtotal * TaxRate
	fee := option.Fee
	if option.FreeOverThreshold && subtotal >= FreeShippingThreshold {
		fee = 0
	}

	return Quote{
		Subtotal:    subtotal,
		Tax:         tax,
		ShippingFee: fee,
		Total:       subtotal + tax + fee,
	}, nil
}

func findOption(id string) (ShippingOption, bool) {
	for _, opt := range shippingOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return ShippingOption{}, false
}
