package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateYieldEstimate(t *testing.T) {
	est := CalculateYieldEstimate(100, 500, 92.0, 1200.0)

	assert.Equal(t, 100, est.GrossDies)
	assert.Equal(t, 92, est.GoodDies)
	// 500 good dies at 92 per wafer -> 6 wafers.
	assert.Equal(t, 6, est.WafersNeeded)
	assert.InDelta(t, 7200.0, est.EstimatedCost, 1e-9)
	assert.InDelta(t, 1200.0/92.0, est.CostPerDie, 1e-9)
}

func TestCalculateYieldEstimate_FractionalGood(t *testing.T) {
	est := CalculateYieldEstimate(21, 0, 85.0, 0)

	// 21 * 0.85 = 17.85 -> 17 whole good dies.
	assert.Equal(t, 17, est.GoodDies)
	assert.Zero(t, est.WafersNeeded)
	assert.Zero(t, est.EstimatedCost)
}

func TestCalculateYieldEstimate_EmptyLayout(t *testing.T) {
	est := CalculateYieldEstimate(0, 100, 90.0, 1000.0)

	assert.Zero(t, est.GoodDies)
	assert.Zero(t, est.WafersNeeded)
	assert.Zero(t, est.CostPerDie)
}
