package motion

// Tween maps interpolated animation progress onto values of any type.
//
// The scheduler itself interpolates float64 trajectories; a Tween sits on top
// of one, converting the 0-1 progress range into a Begin..End range of T.
// Use [TweenFloat64] for plain numeric tweens or build a custom Tween with
// your own Lerp function.
type Tween[T any] struct {
	// Begin is the value at progress 0.
	Begin T
	// End is the value at progress 1.
	End T
	// Lerp interpolates between Begin and End. Receives the begin value,
	// end value, and progress t. Values of t outside [0, 1] occur when the
	// easing curve overshoots and should extrapolate.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Run starts an animation on s that drives progress from 0 to 1 under cfg
// and applies the tween's interpolated value each frame. onComplete may be
// nil.
func (tw *Tween[T]) Run(s *Scheduler, owner OwnerKey, id string, cfg Config, apply func(T), onComplete func()) (Handle, error) {
	return s.Start(owner, id, 0, 1, cfg, func(t float64) {
		apply(tw.Evaluate(t))
	}, onComplete)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}
