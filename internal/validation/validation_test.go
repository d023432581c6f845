package validation

import "testing"

func TestLineItemValidators(t *testing.T) {
	v := Violations{}
	Quantity("quantity", 0, v)
	UnitPrice("price", 0.001, v)
	DiscountPercent("discount", 101, v)
	if len(v) != 3 {
		t.Fatalf("expected 3 violations, got %v", v)
	}

	v = Violations{}
	Quantity("quantity", 1, v)
	UnitPrice("price", 0.01, v)
	DiscountPercent("discount", 0, v)
	DiscountPercent("discount2", 100, v)
	if !v.Empty() {
		t.Fatalf("boundary values should pass, got %v", v)
	}
}

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	Required("company", "Acme", v)
	if v["name"] != "required" || len(v) != 1 {
		t.Fatalf("unexpected violations %v", v)
	}
}
