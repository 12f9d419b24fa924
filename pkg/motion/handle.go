package motion

import "github.com/google/uuid"

// OwnerKey identifies the widget or effect an animation runs on behalf of.
// Keys are opaque to the engine; any stable string works. Widgets typically
// mint one key at construction time and use it for all of their animations.
type OwnerKey string

// NewOwnerKey returns a fresh, unique owner key for callers without a
// natural identity of their own.
func NewOwnerKey() OwnerKey {
	return OwnerKey(uuid.NewString())
}

// Handle identifies one running animation instance. At most one animation is
// live per handle at any time; starting another with the same handle replaces
// the running one.
type Handle struct {
	// Owner is the owner key the animation was started under.
	Owner OwnerKey
	// ID is the animation's name, unique within the owner.
	ID string
}

func (h Handle) String() string {
	return string(h.Owner) + "/" + h.ID
}
