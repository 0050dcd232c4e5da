package utils

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidateItemData validates basic item data
func ValidateItemData(unitPrice float64, quantity int, name string) error {
	if err := ValidateRequired(name, "item name"); err != nil {
		return err
	}
	if err := ValidateNonNegative(unitPrice, "item price"); err != nil {
		return err
	}
	if quantity < 0 {
		return NewValidationError("item quantity cannot be negative")
	}
	return nil
}
