package services

import (
	"math"

	"logistics/internal/core/domain/model/shipment"
)

const (
	// BasePrice covers the first unit of weight.
	BasePrice = 1.0

	// IncludedWeight is the weight covered by BasePrice.
	IncludedWeight = 1.0
)

// PricingEngine derives a shipment price from its weight:
//
//	price = BasePrice + max(0, weight - IncludedWeight)
//
// It is a pure function with no configuration. Callers must price on the
// server for every creation; a client-supplied price is never trusted.
//
//	price, err := services.NewPricingEngine().Price(2.5) // 2.5, nil
type PricingEngine struct{}

func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Price returns the price for weight, or shipment.ErrInvalidWeight when weight
// is NaN, infinite, or not greater than zero.
func (PricingEngine) Price(weight float64) (float64, error) {
	if err := shipment.ValidateWeight(weight); err != nil {
		return 0, err
	}
	return BasePrice + math.Max(0, weight-IncludedWeight), nil
}
