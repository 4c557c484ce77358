package swipe

import "errors"

// Gesture geometry. A release beyond CommitThreshold pixels of horizontal
// displacement commits a decision; anything inside it springs back.
const (
	CommitThreshold = 100.0
	MaxDisplacement = 200.0
	MaxRotationDeg  = 25.0
)

// Direction is the discrete outcome of a committed swipe.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// Rotation maps horizontal displacement to card rotation in degrees,
// linear over [-MaxDisplacement, MaxDisplacement] -> [-25, 25] and clamped
// outside that range.
func Rotation(d float64) float64 {
	if d <= -MaxDisplacement {
		return -MaxRotationDeg
	}
	if d >= MaxDisplacement {
		return MaxRotationDeg
	}
	return d / MaxDisplacement * MaxRotationDeg
}

// Opacity maps horizontal displacement to card opacity, piecewise-linear
// over the control points {-200, -100, 0, 100, 200} -> {0, 1, 1, 1, 0}.
// The card stays fully opaque inside the commit band and fades to zero as
// it approaches full displacement.
func Opacity(d float64) float64 {
	if d < 0 {
		d = -d
	}
	switch {
	case d <= CommitThreshold:
		return 1
	case d >= MaxDisplacement:
		return 0
	default:
		return 1 - (d-CommitThreshold)/(MaxDisplacement-CommitThreshold)
	}
}

// State is the lifecycle state of a single card.
type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitted
)

var (
	// ErrCardCommitted is returned when a gesture targets a card whose
	// decision is already terminal.
	ErrCardCommitted = errors.New("card already committed")
	// ErrNotDragging is returned for drag/release events without a press.
	ErrNotDragging = errors.New("card is not being dragged")
)

// Card is the per-card gesture state machine:
// Idle -> Dragging -> {Committed(left) | Committed(right) | Idle}.
// Committed is terminal; a committed card accepts no further gestures.
type Card struct {
	state        State
	displacement float64
	decision     Direction
}

// NewCard returns a card in the Idle state.
func NewCard() *Card {
	return &Card{state: StateIdle}
}

// State returns the current lifecycle state.
func (c *Card) State() State {
	return c.state
}

// Displacement returns the current horizontal drag offset.
func (c *Card) Displacement() float64 {
	return c.displacement
}

// Press begins a drag. Pressing a committed card is rejected.
func (c *Card) Press() error {
	if c.state == StateCommitted {
		return ErrCardCommitted
	}
	c.state = StateDragging
	c.displacement = 0
	return nil
}

// Drag updates the horizontal displacement of an active drag.
func (c *Card) Drag(d float64) error {
	if c.state != StateDragging {
		return ErrNotDragging
	}
	c.displacement = d
	return nil
}

// Release ends the drag. Beyond the commit threshold it returns the decided
// direction and the card becomes terminal; otherwise the card springs back
// to Idle and no decision is reported.
func (c *Card) Release() (Direction, bool, error) {
	if c.state != StateDragging {
		return "", false, ErrNotDragging
	}
	d := c.displacement
	c.displacement = 0

	if d > CommitThreshold {
		c.state = StateCommitted
		c.decision = DirectionRight
		return DirectionRight, true, nil
	}
	if d < -CommitThreshold {
		c.state = StateCommitted
		c.decision = DirectionLeft
		return DirectionLeft, true, nil
	}
	c.state = StateIdle
	return "", false, nil
}

// Decision returns the committed direction, valid only in StateCommitted.
func (c *Card) Decision() (Direction, bool) {
	if c.state != StateCommitted {
		return "", false
	}
	return c.decision, true
}

// Resolve runs a full press-drag-release cycle at the given release
// displacement and reports the outcome. This is what a release event from
// the interaction surface reduces to on the server.
func Resolve(d float64) (Direction, bool) {
	c := NewCard()
	_ = c.Press()
	_ = c.Drag(d)
	dir, committed, _ := c.Release()
	return dir, committed
}
