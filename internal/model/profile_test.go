package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltInProfiles(t *testing.T) {
	profiles := BuiltInProfiles()
	require.NotEmpty(t, profiles)

	for _, p := range profiles {
		assert.True(t, p.IsBuiltIn, "profile %q must be marked built-in", p.Name)
		assert.NotEmpty(t, p.Description, "profile %q needs a description", p.Name)
	}
}

func TestProcessProfileApplyToPlan(t *testing.T) {
	p, ok := FindProfile(nil, "Wide Exclusion")
	require.True(t, ok)

	plan := NewPlan("line conventions")
	p.ApplyToPlan(&plan)

	assert.Equal(t, 1.10, plan.Wafer.ExclusionFactor)
	assert.Equal(t, p.Wafer, plan.Wafer)
	assert.Equal(t, p.Settings, plan.Settings)
}
