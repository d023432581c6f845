package pricing

import (
	"math"
	"testing"

	"github.com/archemics/salessnap/internal/models"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestComputeEmptyItems(t *testing.T) {
	got := Compute(nil, StandardRate)
	if got.Subtotal != 0 || got.VAT != 0 || got.GrandTotal != 0 {
		t.Fatalf("expected all zeros for empty items, got %+v", got)
	}
}

func TestComputeDiscountAndVAT(t *testing.T) {
	// 2 x 100 at 10% discount plus 1 x 50 undiscounted, 15% VAT.
	items := []models.QuotationItem{
		{ProductID: "a", Quantity: 2, Price: 100, Discount: 10},
		{ProductID: "b", Quantity: 1, Price: 50},
	}
	got := Compute(items, StandardRate)
	if !almostEqual(got.Subtotal, 230) {
		t.Fatalf("subtotal: want 230 got %v", got.Subtotal)
	}
	if !almostEqual(got.VAT, 34.5) {
		t.Fatalf("vat: want 34.5 got %v", got.VAT)
	}
	if !almostEqual(got.GrandTotal, 264.5) {
		t.Fatalf("grand total: want 264.5 got %v", got.GrandTotal)
	}
}

func TestComputeZeroRateProfile(t *testing.T) {
	items := []models.QuotationItem{
		{ProductID: "a", Quantity: 3, Price: 19.99},
	}
	got := Compute(items, 0)
	if got.VAT != 0 {
		t.Fatalf("expected no VAT, got %v", got.VAT)
	}
	if !almostEqual(got.GrandTotal, got.Subtotal) {
		t.Fatalf("grand total should equal subtotal, got %+v", got)
	}
}

func TestGrandTotalIdentity(t *testing.T) {
	items := []models.QuotationItem{
		{ProductID: "a", Quantity: 7, Price: 3.13, Discount: 33},
		{ProductID: "b", Quantity: 1, Price: 0.01},
		{ProductID: "c", Quantity: 120, Price: 89.99, Discount: 100},
	}
	for _, rate := range []float64{0, StandardRate} {
		got := Compute(items, rate)
		if !almostEqual(got.GrandTotal, got.Subtotal+got.Subtotal*rate) {
			t.Fatalf("rate %v: identity broken: %+v", rate, got)
		}
	}
}

func TestNetLineBounds(t *testing.T) {
	// netLine <= lineTotal and netLine >= 0 over the valid discount range.
	for _, d := range []float64{0, 1, 10, 50, 99.5, 100} {
		it := models.QuotationItem{Quantity: 4, Price: 25.5, Discount: d}
		net := NetLine(it)
		lineTotal := it.Price * float64(it.Quantity)
		if net < 0 || net > lineTotal {
			t.Fatalf("discount %v: net %v out of [0,%v]", d, net, lineTotal)
		}
	}
}

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{264.5, "$264.50"},
		{5449.93, "$5,449.93"},
		{1234567.891, "$1,234,567.89"},
		{-42, "-$42.00"},
	}
	for _, c := range cases {
		if got := FormatUSD(c.in); got != c.want {
			t.Errorf("FormatUSD(%v) = %q want %q", c.in, got, c.want)
		}
	}
}
