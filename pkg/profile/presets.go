// Package profile provides named animation configurations: the built-in
// presets widgets conventionally use for fades, toggles and slides, and an
// optional profile file (YAML or TOML) that lets applications retune motion
// without recompiling.
package profile

import (
	"time"

	"github.com/go-motion/motion/pkg/easing"
	"github.com/go-motion/motion/pkg/motion"
)

// Style selects the motion character of a state-change preset.
type Style string

const (
	// StyleDefault is the standard ease-out-cubic motion.
	StyleDefault Style = ""
	// StyleBounce settles with decaying bounces.
	StyleBounce Style = "bounce"
	// StyleElastic overshoots like a released spring.
	StyleElastic Style = "elastic"
)

func preset(d time.Duration, k easing.Kind) motion.Config {
	cfg := motion.DefaultConfig()
	cfg.Duration = d
	cfg.Easing = k
	return cfg
}

// styled maps a Style onto its easing curve, keeping the given duration.
func styled(style Style, d time.Duration) motion.Config {
	switch style {
	case StyleBounce:
		return preset(d, easing.BounceOut)
	case StyleElastic:
		return preset(d, easing.ElasticOut)
	default:
		return preset(d, easing.CubicOut)
	}
}

// Fade is the standard opacity transition.
func Fade() motion.Config {
	return preset(300*time.Millisecond, easing.QuadOut)
}

// Scale is the quick emphasis scale used on press feedback.
func Scale() motion.Config {
	return preset(200*time.Millisecond, easing.BounceOut)
}

// Slide moves an element between resting positions.
func Slide() motion.Config {
	return preset(400*time.Millisecond, easing.CubicOut)
}

// Bounce is a long settling bounce for playful attention cues.
func Bounce() motion.Config {
	return preset(600*time.Millisecond, easing.BounceOut)
}

// Elastic is a springy overshoot for oversized emphasis.
func Elastic() motion.Config {
	return preset(800*time.Millisecond, easing.ElasticOut)
}

// TextInputFocus is the focus ring transition for text inputs.
func TextInputFocus() motion.Config {
	return preset(250*time.Millisecond, easing.CubicOut)
}

// Checkbox is the check-mark state change, tunable by style.
func Checkbox(style Style) motion.Config {
	return styled(style, 300*time.Millisecond)
}

// Switch is the toggle-knob travel, tunable by style.
func Switch(style Style) motion.Config {
	return styled(style, 300*time.Millisecond)
}

// Slider is the thumb snap used when a slider value is set directly.
func Slider() motion.Config {
	return preset(300*time.Millisecond, easing.BackOut)
}

// ValidationShake drives the error shake on rejected input.
func ValidationShake() motion.Config {
	return preset(500*time.Millisecond, easing.CubicOut)
}

// Builtin returns the built-in presets keyed by their profile-file names.
// The returned map is freshly allocated; callers may modify it.
func Builtin() Profile {
	return Profile{
		"fade":             Fade(),
		"scale":            Scale(),
		"slide":            Slide(),
		"bounce":           Bounce(),
		"elastic":          Elastic(),
		"text-input-focus": TextInputFocus(),
		"checkbox":         Checkbox(StyleDefault),
		"switch":           Switch(StyleDefault),
		"slider":           Slider(),
		"validation-shake": ValidationShake(),
	}
}
