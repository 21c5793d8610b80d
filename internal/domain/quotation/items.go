package quotation

import (
	"math"
	"strings"
)

// totalTolerance absorbs rounding in client-computed line totals.
const totalTolerance = 0.01

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

func (li LineItem) validate() error {
	if strings.TrimSpace(li.Description) == "" {
		return ErrEmptyDescription
	}
	if !(li.Quantity > 0) || math.IsInf(li.Quantity, 0) {
		return ErrInvalidQuantity
	}
	if !(li.UnitPrice >= 0) || math.IsInf(li.UnitPrice, 0) {
		return ErrInvalidUnitPrice
	}
	if math.IsNaN(li.Total) || math.Abs(li.Total-li.Quantity*li.UnitPrice) > totalTolerance {
		return ErrTotalMismatch
	}
	return nil
}

// NewLineItems validates the items as submitted. Totals are checked, never recomputed.
func NewLineItems(items []LineItem) ([]LineItem, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	out := make([]LineItem, len(items))
	for i, li := range items {
		if err := li.validate(); err != nil {
			return nil, err
		}
		li.Description = strings.TrimSpace(li.Description)
		out[i] = li
	}
	return out, nil
}

// SumTotals adds the line totals rounded to cents.
func SumTotals(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Total
	}
	return math.Round(sum*100) / 100
}
