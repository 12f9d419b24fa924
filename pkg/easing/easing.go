// Package easing provides the closed set of easing curves used by the motion
// engine.
//
// An easing curve reparameterizes linear time progress into perceptually
// weighted progress: a pure function from t in [0, 1] to eased progress.
// The back and elastic curves intentionally overshoot outside [0, 1]; every
// curve still maps 0 to 0 and 1 to 1 exactly.
//
// Curves are selected by [Kind] and resolved to a function once, at animation
// start, via [Kind.Func].
package easing

import (
	"fmt"
	"math"
)

// Kind identifies one easing curve from the closed set supported by the engine.
type Kind int

const (
	// Linear returns progress unchanged.
	Linear Kind = iota
	// QuadIn accelerates quadratically from rest.
	QuadIn
	// QuadOut decelerates quadratically to rest.
	QuadOut
	// QuadInOut accelerates then decelerates quadratically.
	QuadInOut
	// CubicIn accelerates cubically from rest.
	CubicIn
	// CubicOut decelerates cubically to rest.
	CubicOut
	// CubicInOut accelerates then decelerates cubically.
	CubicInOut
	// BackIn pulls slightly backward before accelerating.
	BackIn
	// BackOut overshoots the target before settling.
	BackOut
	// BackInOut combines BackIn and BackOut around the midpoint.
	BackInOut
	// CircIn accelerates along a quarter-circle arc.
	CircIn
	// CircOut decelerates along a quarter-circle arc.
	CircOut
	// CircInOut combines CircIn and CircOut around the midpoint.
	CircInOut
	// BounceOut settles with a sequence of decaying bounces.
	BounceOut
	// ElasticOut overshoots and oscillates like a released spring.
	ElasticOut
)

// String returns the curve's stable text name, as used in profile files.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case QuadIn:
		return "ease-in-quad"
	case QuadOut:
		return "ease-out-quad"
	case QuadInOut:
		return "ease-in-out-quad"
	case CubicIn:
		return "ease-in-cubic"
	case CubicOut:
		return "ease-out-cubic"
	case CubicInOut:
		return "ease-in-out-cubic"
	case BackIn:
		return "ease-in-back"
	case BackOut:
		return "ease-out-back"
	case BackInOut:
		return "ease-in-out-back"
	case CircIn:
		return "ease-in-circ"
	case CircOut:
		return "ease-out-circ"
	case CircInOut:
		return "ease-in-out-circ"
	case BounceOut:
		return "bounce-out"
	case ElasticOut:
		return "elastic-out"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsValid reports whether k names a curve in the supported set.
func (k Kind) IsValid() bool {
	return k >= Linear && k <= ElasticOut
}

// Func resolves the kind to its curve function. Unknown kinds resolve to
// linear; callers that need rejection instead should check IsValid first.
func (k Kind) Func() func(float64) float64 {
	switch k {
	case QuadIn:
		return quadIn
	case QuadOut:
		return quadOut
	case QuadInOut:
		return quadInOut
	case CubicIn:
		return cubicIn
	case CubicOut:
		return cubicOut
	case CubicInOut:
		return cubicInOut
	case BackIn:
		return backIn
	case BackOut:
		return backOut
	case BackInOut:
		return backInOut
	case CircIn:
		return circIn
	case CircOut:
		return circOut
	case CircInOut:
		return circInOut
	case BounceOut:
		return bounceOut
	case ElasticOut:
		return elasticOut
	default:
		return linear
	}
}

// ParseKind returns the Kind named by s, matching the String form.
func ParseKind(s string) (Kind, error) {
	for k := Linear; k <= ElasticOut; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return Linear, fmt.Errorf("unknown easing curve %q", s)
}

// MarshalText implements encoding.TextMarshaler for profile files.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("unknown easing curve Kind(%d)", int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for profile files.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func linear(t float64) float64 {
	return t
}

func quadIn(t float64) float64 {
	return t * t
}

func quadOut(t float64) float64 {
	return t * (2 - t)
}

func quadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func cubicIn(t float64) float64 {
	return t * t * t
}

func cubicOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

func cubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Back overshoot constants, shared by the three back curves.
const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

func backIn(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

func backOut(t float64) float64 {
	return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
}

func backInOut(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backC2+1)*(2*t-2)+backC2) + 2) / 2
}

func circIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func circOut(t float64) float64 {
	return math.Sqrt(1 - math.Pow(t-1, 2))
}

func circInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// bounceOut is a four-segment piecewise parabola. The coefficients are the
// conventional ones (7.5625 with breakpoints at n/2.75) and existing widget
// motion depends on these exact values.
func bounceOut(t float64) float64 {
	const n = 7.5625
	switch {
	case t < 1/2.75:
		return n * t * t
	case t < 2/2.75:
		t -= 1.5 / 2.75
		return n*t*t + 0.75
	case t < 2.5/2.75:
		t -= 2.25 / 2.75
		return n*t*t + 0.9375
	default:
		t -= 2.625 / 2.75
		return n*t*t + 0.984375
	}
}

// elasticOut handles the endpoints explicitly: the general formula does not
// evaluate to exactly 0 and 1 there.
func elasticOut(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*(2*math.Pi)/3) + 1
}
