package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default layout settings applied to new plans
	DefaultScribeWidth     float64      `json:"default_scribe_width"`
	DefaultEdgeExclusion   float64      `json:"default_edge_exclusion"`
	DefaultExclusionFactor float64      `json:"default_exclusion_factor"`
	DefaultSpacingMode     SpacingMode  `json:"default_spacing_mode"`
	DefaultBoundaryTest    BoundaryTest `json:"default_boundary_test"`
	DefaultOffsetSteps     int          `json:"default_offset_steps"`
	DefaultNotch           bool         `json:"default_notch"`

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	wafer := NewWaferSpec(3.0)
	return AppConfig{
		DefaultScribeWidth:     defaults.ScribeWidth,
		DefaultEdgeExclusion:   wafer.EdgeExclusion,
		DefaultExclusionFactor: wafer.ExclusionFactor,
		DefaultSpacingMode:     defaults.SpacingMode,
		DefaultBoundaryTest:    defaults.BoundaryTest,
		DefaultOffsetSteps:     defaults.OffsetSteps,
		DefaultNotch:           false,
		RecentPlans:            []string{},
	}
}

// ApplyToPlan copies the saved defaults into a plan's wafer spec and layout
// settings. This is used when creating a new plan so it inherits the user's
// preferences.
func (c AppConfig) ApplyToPlan(p *Plan) {
	p.Settings.ScribeWidth = c.DefaultScribeWidth
	p.Settings.SpacingMode = c.DefaultSpacingMode
	p.Settings.BoundaryTest = c.DefaultBoundaryTest
	p.Settings.OffsetSteps = c.DefaultOffsetSteps
	p.Wafer.EdgeExclusion = c.DefaultEdgeExclusion
	p.Wafer.ExclusionFactor = c.DefaultExclusionFactor
	p.Wafer.Notch = c.DefaultNotch
}
