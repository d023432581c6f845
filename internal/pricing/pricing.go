// Package pricing computes quotation totals. The functions are pure and total
// over validated input: quantity >= 1, price >= 0.01 and discount within
// [0,100] are enforced at the form boundary, never here.
package pricing

import (
	"fmt"
	"strings"

	"github.com/archemics/salessnap/internal/models"
)

// StandardRate is the flat VAT surcharge of the taxed company profile.
// The alternative profile applies no VAT at all; see config.VATRate.
const StandardRate = 0.15

// Totals aggregates a quotation's item list.
type Totals struct {
	Subtotal   float64 `json:"subtotal"`
	VAT        float64 `json:"vat"`
	GrandTotal float64 `json:"grandTotal"`
}

// NetLine returns the post-discount total of a single line item.
func NetLine(it models.QuotationItem) float64 {
	lineTotal := it.Price * float64(it.Quantity)
	var discountAmount float64
	if it.Discount != 0 {
		discountAmount = lineTotal * (it.Discount / 100)
	}
	return lineTotal - discountAmount
}

// Compute sums the net lines into a pre-VAT subtotal, applies vatRate and
// returns all three amounts. An empty item list yields all zeros. Sums are
// kept at full float64 precision; rounding happens only at formatting time.
func Compute(items []models.QuotationItem, vatRate float64) Totals {
	var t Totals
	for _, it := range items {
		t.Subtotal += NetLine(it)
	}
	t.VAT = t.Subtotal * vatRate
	t.GrandTotal = t.Subtotal + t.VAT
	return t
}

// Subtotal is a convenience for writers keeping Quotation.Total in sync.
func Subtotal(items []models.QuotationItem) float64 {
	return Compute(items, 0).Subtotal
}

// FormatUSD renders an amount as $1,234.56 with grouped thousands.
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := "$" + strings.Join(groups, ",") + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}
