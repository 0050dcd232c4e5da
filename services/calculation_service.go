package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/fadhlanhapp/sharetab-checkout/logger"
	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/fadhlanhapp/sharetab-checkout/utils"
)

// CalculationService handles cart total calculation logic
type CalculationService struct {
	policy models.Policy
	log    *logger.Logger
}

// NewCalculationService creates a new calculation service pricing every cart with the given policy
func NewCalculationService(policy models.Policy, log *logger.Logger) *CalculationService {
	if log == nil {
		log = logger.Nop()
	}
	return &CalculationService{
		policy: policy,
		log:    log,
	}
}

// Policy returns the pricing policy applied to new carts
func (s *CalculationService) Policy() models.Policy {
	return s.policy
}

// CalculateCart builds a cart from the request and totals it
func (s *CalculationService) CalculateCart(ctx context.Context, request *models.CalculateCartRequest) (*models.CartCalculation, error) {
	// Validate request
	if err := s.validateCalculationRequest(request); err != nil {
		return nil, err
	}

	cart := s.BuildCart(request.Items)

	id := utils.GenerateID()
	ctx = s.log.WithCalculationID(ctx, id)

	breakdown, err := cart.Breakdown(request.IsMember, request.HasCoupon)
	if err != nil {
		var calcErr *models.CalculationError
		if errors.As(err, &calcErr) {
			s.log.Warn(ctx, calcErr.Error())
			return nil, utils.NewCalculationError(calcErr.Error())
		}
		return nil, err
	}
	if !isFinite(breakdown.Subtotal) || !isFinite(breakdown.Total) {
		s.log.Warn(ctx, "cart total out of range")
		return nil, utils.NewCalculationError("cart total is out of range")
	}

	result := s.buildCalculation(id, cart, breakdown, request.IsMember, request.HasCoupon)

	ctx = s.log.WithFields(ctx, map[string]any{
		"items":      len(request.Items),
		"is_member":  request.IsMember,
		"has_coupon": request.HasCoupon,
		"total":      result.Total.String(),
	})
	s.log.Info(ctx, "cart calculated")

	return result, nil
}

// BuildCart converts request items into a cart priced with the service policy
func (s *CalculationService) BuildCart(items []models.CartItemRequest) *models.Cart {
	cart := models.NewCartWithPolicy(s.policy)
	for _, item := range items {
		lineItem := models.NewLineItem(item.Name, item.UnitPrice, item.Quantity)
		lineItem.SetCategory(utils.NormalizeCategory(item.Category, models.DefaultCategory))
		lineItem.EnvironmentalFee = item.EnvironmentalFee
		cart.AddItem(lineItem)
	}
	return cart
}

// validateCalculationRequest validates the calculation request
func (s *CalculationService) validateCalculationRequest(request *models.CalculateCartRequest) error {
	if err := utils.ValidateNotEmpty(request.Items, "items"); err != nil {
		return err
	}

	// Validate each item
	for i, item := range request.Items {
		if err := utils.ValidateItemData(item.UnitPrice, item.Quantity, item.Name); err != nil {
			return utils.NewValidationError(fmt.Sprintf("Item %d: %s", i+1, err.Error()))
		}
		if err := utils.ValidateNonNegative(item.EnvironmentalFee, "environmental fee"); err != nil {
			return utils.NewValidationError(fmt.Sprintf("Item %d: %s", i+1, err.Error()))
		}
	}

	return nil
}

// buildCalculation converts a breakdown into the cent-rounded response model
func (s *CalculationService) buildCalculation(id string, cart *models.Cart, b models.Breakdown, isMember, hasCoupon bool) *models.CartCalculation {
	items := cart.Items()
	lines := make([]models.LineSummary, len(items))
	for i, item := range items {
		lines[i] = models.LineSummary{
			Name:             item.Name,
			Category:         item.Category,
			UnitPrice:        utils.Money(item.UnitPrice),
			Quantity:         item.Quantity,
			LineTotal:        utils.Money(item.Total()),
			DiscountedTotal:  utils.Money(item.DiscountedTotal()),
			EnvironmentalFee: utils.Money(item.EnvironmentalFee),
		}
	}

	policy := cart.Policy()
	return &models.CartCalculation{
		ID:                 id,
		CreationTime:       time.Now().UnixMilli(),
		Currency:           policy.CurrencySymbol,
		IsMember:           isMember,
		HasCoupon:          hasCoupon,
		CouponStage:        policy.CouponStage,
		Lines:              lines,
		Subtotal:           utils.Money(b.Subtotal),
		MemberDiscount:     utils.Money(b.MemberDiscount),
		BigSpenderDiscount: utils.Money(b.BigSpenderDiscount),
		CouponDiscount:     utils.Money(b.CouponDiscount),
		TotalDiscount:      utils.Money(b.TotalDiscount()),
		DiscountedSubtotal: utils.Money(b.DiscountedSubtotal),
		Tax:                utils.Money(b.Tax),
		Total:              utils.Money(b.Total),
		Display:            utils.FormatTotal(policy.CurrencySymbol, b.Total),
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
