package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func PositiveFloat(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// Line item bounds: quantities start at one, prices at a cent, and
// discounts are percentages.
func Quantity(field string, qty int, v Violations) {
	if qty < 1 {
		v[field] = "must_be_at_least_1"
	}
}

func UnitPrice(field string, price float64, v Violations) {
	if price < 0.01 {
		v[field] = "must_be_at_least_0.01"
	}
}

func DiscountPercent(field string, d float64, v Violations) {
	RangeFloat(field, d, 0, 100, v)
}
