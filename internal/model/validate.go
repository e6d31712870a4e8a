package model

import (
	"errors"
	"fmt"
)

// Validation errors reported before any placement search runs. Everything
// else (zero valid positions, a degenerate symmetric best) is a valid
// outcome, not an error.
var (
	// ErrExclusionTooLarge means the edge exclusion consumes the entire
	// wafer radius or more.
	ErrExclusionTooLarge = errors.New("edge exclusion exceeds wafer radius")

	// ErrDieTooLarge means the die cannot fit inside the effective radius
	// even when centered, so every layout would be empty.
	ErrDieTooLarge = errors.New("die too large for effective area")
)

// ValidatePlan checks a (die, wafer, settings) triple and fails fast on
// configurations that cannot produce any layout.
func ValidatePlan(die Die, wafer WaferSpec, settings LayoutSettings) error {
	if die.Width <= 0 || die.Height <= 0 {
		return fmt.Errorf("die dimensions must be positive, got %.3g x %.3g", die.Width, die.Height)
	}
	if settings.ScribeWidth <= 0 {
		return fmt.Errorf("scribe width must be positive, got %.3g", settings.ScribeWidth)
	}
	if wafer.EdgeExclusion < 0 {
		return fmt.Errorf("edge exclusion must not be negative, got %.3g", wafer.EdgeExclusion)
	}

	effR := wafer.EffectiveRadius()
	if effR <= 0 {
		return fmt.Errorf("%w: effective radius %.2f mm (exclusion %.2f mm x factor %.2f on a %.0f mm wafer)",
			ErrExclusionTooLarge, effR, wafer.EdgeExclusion, wafer.ExclusionFactor, wafer.Radius)
	}

	// Half-diagonal check: the most forgiving placement is dead center.
	halfW := die.Width / 2
	halfH := die.Height / 2
	if halfW*halfW+halfH*halfH > effR*effR {
		return fmt.Errorf("%w: %.1f x %.1f mm die against an effective radius of %.2f mm",
			ErrDieTooLarge, die.Width, die.Height, effR)
	}
	return nil
}
