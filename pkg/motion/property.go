package motion

// PropertyTarget is implemented by owners that expose named numeric fields
// for the convenience layer to animate. SetProperty stores the field's new
// value; AppearanceChanged is invoked after every write so the owner can
// refresh whatever derives from its fields. Both run on the animation's
// goroutine.
type PropertyTarget interface {
	SetProperty(name string, value float64)
	AppearanceChanged()
}

// Span is the start and end of one property's trajectory.
type Span struct {
	From float64
	To   float64
}

// AnimateProperty animates a single named field on target from one value to
// another, writing the field and firing AppearanceChanged on every tick.
//
// The property name doubles as the animation ID, so starting a second
// animation on the same field for the same owner replaces the first.
func AnimateProperty(s *Scheduler, owner OwnerKey, target PropertyTarget, property string, from, to float64, cfg Config) (Handle, error) {
	return s.Start(owner, property, from, to, cfg, func(value float64) {
		target.SetProperty(property, value)
		target.AppearanceChanged()
	}, nil)
}

// AnimateProperties starts one animation per entry in spans, all under the
// same configuration. Each property is keyed independently, so individual
// fields can still be stopped or replaced on their own. Returns the first
// validation error encountered; animations started before the error keep
// running.
func AnimateProperties(s *Scheduler, owner OwnerKey, target PropertyTarget, spans map[string]Span, cfg Config) error {
	for property, span := range spans {
		if _, err := AnimateProperty(s, owner, target, property, span.From, span.To, cfg); err != nil {
			return err
		}
	}
	return nil
}
