package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func demoCart() *Cart {
	cart := NewCart()

	laptop := NewLineItem("Laptop", 1000, 1)
	laptop.SetCategory("electronics")

	cart.AddItem(NewLineItem("Apple", 1.5, 10))
	cart.AddItem(NewLineItem("Banana", 0.5, 5))
	cart.AddItem(laptop)
	return cart
}

func TestLineItem_Total(t *testing.T) {
	cases := []struct {
		price    float64
		quantity int
		want     float64
	}{
		{1.5, 10, 15},
		{0.5, 5, 2.5},
		{1000, 1, 1000},
		{3.25, 0, 0},
		{0, 7, 0},
	}
	for _, tc := range cases {
		item := NewLineItem("x", tc.price, tc.quantity)
		assert.Equal(t, tc.want, item.Total(), "price %v qty %d", tc.price, tc.quantity)
	}
}

func TestLineItem_Defaults(t *testing.T) {
	item := NewLineItem("Apple", 1.5, 10)
	assert.Equal(t, DefaultCategory, item.Category)
	assert.Zero(t, item.EnvironmentalFee)

	item.SetCategory("produce")
	assert.Equal(t, "produce", item.Category)
}

func TestLineItem_DiscountedTotal(t *testing.T) {
	item := NewLineItem("Laptop", 1000, 2)
	assert.InDelta(t, 1200.0, item.DiscountedTotal(), delta)
}

func TestCart_SubtotalEmpty(t *testing.T) {
	assert.Equal(t, float64(0), NewCart().Subtotal())
}

func TestCart_SubtotalOrderIndependent(t *testing.T) {
	items := []LineItem{
		NewLineItem("Apple", 1.5, 10),
		NewLineItem("Banana", 0.5, 5),
		NewLineItem("Laptop", 1000, 1),
	}

	forward := NewCart()
	reverse := NewCart()
	var sum float64
	for i := range items {
		forward.AddItem(items[i])
		reverse.AddItem(items[len(items)-1-i])
		sum += items[i].Total()
	}

	assert.Equal(t, 1017.5, forward.Subtotal())
	assert.Equal(t, sum, forward.Subtotal())
	assert.Equal(t, forward.Subtotal(), reverse.Subtotal())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	cart := demoCart()
	items := cart.Items()
	items[0].UnitPrice = 999

	assert.Equal(t, 1.5, cart.Items()[0].UnitPrice)
	assert.Equal(t, "Apple", cart.Items()[0].Name)
	assert.Equal(t, "Laptop", cart.Items()[2].Name)
}

func TestCart_ApplyDiscountsCompounds(t *testing.T) {
	cart := NewCart()
	// 200 -> 190 (member) -> 180 (big spender) -> 153 (coupon)
	assert.InDelta(t, 153.0, cart.ApplyDiscounts(200, true, true), delta)
}

func TestCart_ApplyDiscountsStages(t *testing.T) {
	cart := NewCart()

	assert.InDelta(t, 190.0, cart.ApplyDiscounts(200, false, false), delta)
	assert.InDelta(t, 180.0, cart.ApplyDiscounts(200, true, false), delta)
	assert.InDelta(t, 161.5, cart.ApplyDiscounts(200, false, true), delta)
	assert.InDelta(t, 50.0, cart.ApplyDiscounts(50, false, false), delta)
}

func TestCart_BigSpenderThresholdIsExclusive(t *testing.T) {
	cart := NewCart()

	assert.Equal(t, 100.0, cart.ApplyDiscounts(100, false, false))
	assert.InDelta(t, 90.01, cart.ApplyDiscounts(100.01, false, false), delta)
}

func TestCart_BigSpenderUsesMemberDiscountedAmount(t *testing.T) {
	cart := NewCart()
	// 105 * 0.95 = 99.75, below the threshold once membership applies
	assert.InDelta(t, 99.75, cart.ApplyDiscounts(105, true, false), delta)
	assert.InDelta(t, 95.0, cart.ApplyDiscounts(105, false, false), delta)
}

func TestCart_DiscountMonotonicity(t *testing.T) {
	cart := NewCart()
	flags := []struct{ member, coupon bool }{
		{false, false}, {true, false}, {false, true}, {true, true},
	}

	// Subtotals in (100, 100/0.95] are left out: there the member discount drops the
	// amount under the big spender threshold and forfeits the flat discount.
	for _, subtotal := range []float64{0, 10, 99.99, 100, 105.27, 250, 1017.5} {
		results := make(map[[2]bool]float64)
		for _, f := range flags {
			results[[2]bool{f.member, f.coupon}] = cart.ApplyDiscounts(subtotal, f.member, f.coupon)
		}
		none := results[[2]bool{false, false}]
		member := results[[2]bool{true, false}]
		coupon := results[[2]bool{false, true}]
		both := results[[2]bool{true, true}]

		assert.LessOrEqual(t, member, none+delta, "member at %v", subtotal)
		assert.LessOrEqual(t, coupon, none+delta, "coupon at %v", subtotal)
		assert.LessOrEqual(t, both, member+delta, "both vs member at %v", subtotal)
		assert.LessOrEqual(t, both, coupon+delta, "both vs coupon at %v", subtotal)
	}
}

func TestCart_TotalEndToEnd(t *testing.T) {
	cart := demoCart()

	total, err := cart.Total(true, true)
	require.NoError(t, err)
	assert.InDelta(t, 878.18175, total, 1e-6)
	assert.Equal(t, 878, int(total))
}

func TestCart_BreakdownEndToEnd(t *testing.T) {
	b, err := demoCart().Breakdown(true, true)
	require.NoError(t, err)

	assert.Equal(t, 1017.5, b.Subtotal)
	assert.InDelta(t, 50.875, b.MemberDiscount, delta)
	assert.Equal(t, 10.0, b.BigSpenderDiscount)
	assert.InDelta(t, 143.49375, b.CouponDiscount, 1e-6)
	assert.InDelta(t, 813.13125, b.DiscountedSubtotal, 1e-6)
	assert.InDelta(t, 65.0505, b.Tax, 1e-6)
	assert.InDelta(t, 878.18175, b.Total, 1e-6)
	assert.InDelta(t, 204.36875, b.TotalDiscount(), 1e-6)
}

func TestCart_TotalIsIdempotent(t *testing.T) {
	cart := demoCart()

	first, err := cart.Total(true, false)
	require.NoError(t, err)
	second, err := cart.Total(true, false)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1017.5, cart.Subtotal())
}

func TestCart_TotalEmptyCart(t *testing.T) {
	total, err := NewCart().Total(true, true)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestCart_NegativeTotalIsCalculationError(t *testing.T) {
	cart := NewCart()
	cart.AddItem(NewLineItem("Refund", -20, 1))

	total, err := cart.Total(false, false)
	require.Error(t, err)
	assert.Zero(t, total)

	var calcErr *CalculationError
	require.True(t, errors.As(err, &calcErr))
	assert.InDelta(t, -21.6, calcErr.Total, delta)
}

func TestCart_EnvironmentalFeeIgnored(t *testing.T) {
	withFee := NewCart()
	item := NewLineItem("Fridge", 500, 1)
	item.EnvironmentalFee = 25
	withFee.AddItem(item)

	withoutFee := NewCart()
	withoutFee.AddItem(NewLineItem("Fridge", 500, 1))

	a, err := withFee.Total(false, false)
	require.NoError(t, err)
	b, err := withoutFee.Total(false, false)
	require.NoError(t, err)
	assert.Equal(t, b, a)
}

func TestCart_CouponAfterTax(t *testing.T) {
	policy := DefaultPolicy()
	policy.CouponStage = CouponAfterTax
	cart := NewCartWithPolicy(policy)
	cart.AddItem(NewLineItem("Widget", 200, 1))

	// coupon is no longer part of the pre-tax discounts
	assert.InDelta(t, 180.0, cart.ApplyDiscounts(200, true, true), delta)

	total, err := cart.Total(true, true)
	require.NoError(t, err)
	taxed := 180.0 * 1.08
	assert.InDelta(t, taxed-taxed*0.15, total, delta)

	b, err := cart.Breakdown(true, true)
	require.NoError(t, err)
	assert.InDelta(t, taxed*0.15, b.CouponDiscount, delta)
	assert.InDelta(t, 180.0*0.08, b.Tax, delta)
}

func TestCart_PolicyPerInstance(t *testing.T) {
	taxFree := DefaultPolicy()
	taxFree.TaxRate = 0

	a := NewCartWithPolicy(taxFree)
	b := NewCart()
	for _, c := range []*Cart{a, b} {
		c.AddItem(NewLineItem("Book", 50, 1))
	}

	totalA, err := a.Total(false, false)
	require.NoError(t, err)
	totalB, err := b.Total(false, false)
	require.NoError(t, err)

	assert.Equal(t, 50.0, totalA)
	assert.InDelta(t, 54.0, totalB, delta)
	assert.Equal(t, 0.08, b.Policy().TaxRate)
}

func TestPolicy_Validate(t *testing.T) {
	require.NoError(t, DefaultPolicy().Validate())

	bad := DefaultPolicy()
	bad.CouponDiscountRate = -0.1
	assert.Error(t, bad.Validate())

	bad = DefaultPolicy()
	bad.BigSpenderFlatDiscount = -5
	assert.Error(t, bad.Validate())

	bad = DefaultPolicy()
	bad.CouponStage = "sometime"
	assert.Error(t, bad.Validate())
}
