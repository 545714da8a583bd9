package models

import (
	"fmt"
	"math"
)

// Price is a value object representing a non-negative item price.
type Price float64

// NewPrice constructs a valid Price or returns an error if constraints are violated.
func NewPrice(v float64) (Price, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price must be a finite number")
	}
	if v < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}
	return Price(v), nil
}

// Float64 returns the underlying float value.
func (p Price) Float64() float64 {
	return float64(p)
}
