package models

import "fmt"

// CouponStage selects where the coupon reduction sits in the pricing pipeline
type CouponStage string

const (
	CouponBeforeTax CouponStage = "before_tax"
	CouponAfterTax  CouponStage = "after_tax"
)

// Policy holds the rates and thresholds a cart is priced with
type Policy struct {
	TaxRate                float64     `json:"taxRate"`
	MemberDiscountRate     float64     `json:"memberDiscountRate"`
	CouponDiscountRate     float64     `json:"couponDiscountRate"`
	BigSpenderFlatDiscount float64     `json:"bigSpenderFlatDiscount"`
	BigSpenderThreshold    float64     `json:"bigSpenderThreshold"`
	CurrencySymbol         string      `json:"currencySymbol"`
	CouponStage            CouponStage `json:"couponStage"`
}

// DefaultPolicy returns the standard checkout policy
func DefaultPolicy() Policy {
	return Policy{
		TaxRate:                0.08,
		MemberDiscountRate:     0.05,
		CouponDiscountRate:     0.15,
		BigSpenderFlatDiscount: 10,
		BigSpenderThreshold:    100,
		CurrencySymbol:         "$",
		CouponStage:            CouponBeforeTax,
	}
}

// Validate checks that rates lie in [0,1] and flat amounts are non-negative
func (p Policy) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"tax rate", p.TaxRate},
		{"member discount rate", p.MemberDiscountRate},
		{"coupon discount rate", p.CouponDiscountRate},
	}
	for _, r := range rates {
		if r.value < 0 || r.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", r.name, r.value)
		}
	}
	if p.BigSpenderFlatDiscount < 0 {
		return fmt.Errorf("big spender discount cannot be negative")
	}
	if p.BigSpenderThreshold < 0 {
		return fmt.Errorf("big spender threshold cannot be negative")
	}
	switch p.CouponStage {
	case CouponBeforeTax, CouponAfterTax:
	default:
		return fmt.Errorf("unknown coupon stage %q", p.CouponStage)
	}
	return nil
}

// CalculationError is returned when a cart total comes out negative
type CalculationError struct {
	Total float64
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("error in calculation: negative total %.2f", e.Total)
}
