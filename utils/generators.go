package utils

import (
	"github.com/google/uuid"
)

// GenerateID generates a random ID for calculations
func GenerateID() string {
	return uuid.NewString()
}
