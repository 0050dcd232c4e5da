// models/cart.go
package models

// DefaultCategory is assigned to every new line item
const DefaultCategory = "general"

// discountedLineFactor is the fraction of the line total kept by DiscountedTotal
const discountedLineFactor = 0.6

// LineItem represents one product entry in a cart
type LineItem struct {
	Name             string  `json:"name"`
	UnitPrice        float64 `json:"unitPrice"`
	Quantity         int     `json:"quantity"`
	Category         string  `json:"category"`
	EnvironmentalFee float64 `json:"environmentalFee"`
}

// NewLineItem creates a new LineItem in the default category
func NewLineItem(name string, unitPrice float64, quantity int) LineItem {
	return LineItem{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Category:  DefaultCategory,
	}
}

// SetCategory changes the item's category
func (i *LineItem) SetCategory(category string) {
	i.Category = category
}

// Total returns unit price times quantity
func (i LineItem) Total() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// DiscountedTotal returns the line total at 40% off.
// The cart pipeline never reads it.
func (i LineItem) DiscountedTotal() float64 {
	return i.UnitPrice * float64(i.Quantity) * discountedLineFactor
}

// Cart holds line items in insertion order together with the pricing policy used to total them
type Cart struct {
	items  []LineItem
	policy Policy
}

// NewCart creates an empty cart priced with the default policy
func NewCart() *Cart {
	return NewCartWithPolicy(DefaultPolicy())
}

// NewCartWithPolicy creates an empty cart priced with the given policy
func NewCartWithPolicy(policy Policy) *Cart {
	return &Cart{policy: policy}
}

// Policy returns the pricing policy of the cart
func (c *Cart) Policy() Policy {
	return c.policy
}

// AddItem appends an item to the cart
func (c *Cart) AddItem(item LineItem) {
	c.items = append(c.items, item)
}

// Items returns a copy of the cart's items in insertion order
func (c *Cart) Items() []LineItem {
	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Subtotal returns the sum of all line totals
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.Total()
	}
	return subtotal
}

// ApplyDiscounts runs the subtotal through the member, big spender and coupon stages.
// Each stage works on the output of the previous one. With CouponAfterTax the coupon
// stage is skipped here and applied by Total instead.
func (c *Cart) ApplyDiscounts(subtotal float64, isMember, hasCoupon bool) float64 {
	return c.discount(subtotal, isMember, hasCoupon).DiscountedSubtotal
}

// Total computes subtotal, discounts and tax. A negative result is reported as a
// CalculationError instead of a value.
func (c *Cart) Total(isMember, hasCoupon bool) (float64, error) {
	breakdown, err := c.Breakdown(isMember, hasCoupon)
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}

// Breakdown runs the full pipeline and reports the amount of every stage
func (c *Cart) Breakdown(isMember, hasCoupon bool) (Breakdown, error) {
	b := c.discount(c.Subtotal(), isMember, hasCoupon)

	b.Tax = b.DiscountedSubtotal * c.policy.TaxRate
	b.Total = b.DiscountedSubtotal + b.Tax

	if hasCoupon && c.policy.CouponStage == CouponAfterTax {
		b.CouponDiscount = b.Total * c.policy.CouponDiscountRate
		b.Total -= b.CouponDiscount
	}

	if b.Total < 0 {
		return b, &CalculationError{Total: b.Total}
	}
	return b, nil
}

func (c *Cart) discount(subtotal float64, isMember, hasCoupon bool) Breakdown {
	b := Breakdown{Subtotal: subtotal}
	result := subtotal

	if isMember {
		b.MemberDiscount = result * c.policy.MemberDiscountRate
		result -= b.MemberDiscount
	}

	if result > c.policy.BigSpenderThreshold {
		b.BigSpenderDiscount = c.policy.BigSpenderFlatDiscount
		result -= b.BigSpenderDiscount
	}

	if hasCoupon && c.policy.CouponStage == CouponBeforeTax {
		b.CouponDiscount = result * c.policy.CouponDiscountRate
		result -= b.CouponDiscount
	}

	b.DiscountedSubtotal = result
	return b
}

// Breakdown reports every stage of a cart total
type Breakdown struct {
	Subtotal           float64
	MemberDiscount     float64
	BigSpenderDiscount float64
	CouponDiscount     float64
	DiscountedSubtotal float64
	Tax                float64
	Total              float64
}

// TotalDiscount returns the sum of all discounts applied
func (b Breakdown) TotalDiscount() float64 {
	return b.MemberDiscount + b.BigSpenderDiscount + b.CouponDiscount
}
