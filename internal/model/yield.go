package model

import "math"

// YieldEstimate holds the results of a per-die cost and yield calculation
// for a finished layout.
type YieldEstimate struct {
	GrossDies     int     `json:"gross_dies"`      // dies placed on one wafer
	GoodDies      int     `json:"good_dies"`       // expected working dies after yield loss
	YieldPercent  float64 `json:"yield_percent"`   // yield factor applied (e.g. 92 for 92%)
	WafersNeeded  int     `json:"wafers_needed"`   // wafers required for the target quantity
	TargetDies    int     `json:"target_dies"`     // requested number of good dies
	EstimatedCost float64 `json:"estimated_cost"`  // total cost if pricing available
	PricePerWafer float64 `json:"price_per_wafer"` // price used for estimation
	CostPerDie    float64 `json:"cost_per_die"`    // wafer price spread over expected good dies
}

// CalculateYieldEstimate computes how many wafers to start for a target
// quantity of good dies, given the gross die count of a layout and an
// expected line yield.
func CalculateYieldEstimate(grossDies, targetDies int, yieldPercent, pricePerWafer float64) YieldEstimate {
	est := YieldEstimate{
		GrossDies:     grossDies,
		YieldPercent:  yieldPercent,
		TargetDies:    targetDies,
		PricePerWafer: pricePerWafer,
	}
	if grossDies <= 0 {
		return est
	}

	good := float64(grossDies) * yieldPercent / 100.0
	est.GoodDies = int(math.Floor(good))

	if good > 0 {
		est.CostPerDie = pricePerWafer / good
		if targetDies > 0 {
			est.WafersNeeded = int(math.Ceil(float64(targetDies) / good))
			est.EstimatedCost = float64(est.WafersNeeded) * pricePerWafer
		}
	}
	return est
}
