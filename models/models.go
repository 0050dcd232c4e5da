// models/models.go
package models

import (
	"github.com/shopspring/decimal"
)

// CartItemRequest is one line of a calculation request
type CartItemRequest struct {
	Name             string  `json:"name" binding:"required"`
	UnitPrice        float64 `json:"unitPrice" binding:"min=0"`
	Quantity         int     `json:"quantity" binding:"min=0"`
	Category         string  `json:"category"`
	EnvironmentalFee float64 `json:"environmentalFee" binding:"min=0"`
}

// CalculateCartRequest request model
type CalculateCartRequest struct {
	Items     []CartItemRequest `json:"items" binding:"required,min=1,dive"`
	IsMember  bool              `json:"isMember"`
	HasCoupon bool              `json:"hasCoupon"`
}

// LineSummary is the priced view of one line item
type LineSummary struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Quantity         int             `json:"quantity"`
	LineTotal        decimal.Decimal `json:"lineTotal"`
	DiscountedTotal  decimal.Decimal `json:"discountedTotal"`
	EnvironmentalFee decimal.Decimal `json:"environmentalFee"`
}

// CartCalculation represents the result of totalling a cart
type CartCalculation struct {
	ID                 string          `json:"id"`
	CreationTime       int64           `json:"_creationTime"`
	Currency           string          `json:"currency"`
	IsMember           bool            `json:"isMember"`
	HasCoupon          bool            `json:"hasCoupon"`
	CouponStage        CouponStage     `json:"couponStage"`
	Lines              []LineSummary   `json:"lines"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	MemberDiscount     decimal.Decimal `json:"memberDiscount"`
	BigSpenderDiscount decimal.Decimal `json:"bigSpenderDiscount"`
	CouponDiscount     decimal.Decimal `json:"couponDiscount"`
	TotalDiscount      decimal.Decimal `json:"totalDiscount"`
	DiscountedSubtotal decimal.Decimal `json:"discountedSubtotal"`
	Tax                decimal.Decimal `json:"tax"`
	Total              decimal.Decimal `json:"total"`
	Display            string          `json:"display"`
}

// HealthResponse response model
type HealthResponse struct {
	Status string `json:"status"`
}
