package model

// ProcessProfile bundles a wafer spec and layout settings under a name, so
// the conventions of a fab or process line can be applied in one step.
type ProcessProfile struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	IsBuiltIn   bool           `json:"is_built_in"`
	Wafer       WaferSpec      `json:"wafer"`
	Settings    LayoutSettings `json:"settings"`
}

// BuiltInProfiles returns the profiles shipped with the application. They
// cover the conventions that differ between tools in the field.
func BuiltInProfiles() []ProcessProfile {
	standard := NewWaferSpec(3.0)

	widened := standard
	widened.ExclusionFactor = 1.10

	notched := standard
	notched.Notch = true

	halfScribe := DefaultSettings()
	halfScribe.SpacingMode = SpacingHalf

	return []ProcessProfile{
		{
			Name:        "Standard 3mm",
			Description: "3 mm edge exclusion, full scribe spacing, corner boundary test",
			IsBuiltIn:   true,
			Wafer:       standard,
			Settings:    DefaultSettings(),
		},
		{
			Name:        "Wide Exclusion",
			Description: "3 mm edge exclusion widened by factor 1.10",
			IsBuiltIn:   true,
			Wafer:       widened,
			Settings:    DefaultSettings(),
		},
		{
			Name:        "Notched Wafer",
			Description: "Standard exclusion with the bottom notch zone blocked",
			IsBuiltIn:   true,
			Wafer:       notched,
			Settings:    DefaultSettings(),
		},
		{
			Name:        "Half-Scribe",
			Description: "Half the scribe width charged to each die",
			IsBuiltIn:   true,
			Wafer:       standard,
			Settings:    halfScribe,
		},
	}
}

// FindProfile returns the profile with the given name from the combined
// built-in and custom lists. Custom profiles shadow built-ins of the same
// name.
func FindProfile(custom []ProcessProfile, name string) (ProcessProfile, bool) {
	for _, p := range custom {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range BuiltInProfiles() {
		if p.Name == name {
			return p, true
		}
	}
	return ProcessProfile{}, false
}

// ApplyToPlan copies the profile's wafer spec and settings into a plan.
func (p ProcessProfile) ApplyToPlan(plan *Plan) {
	plan.Wafer = p.Wafer
	plan.Settings = p.Settings
}
