package wizard

// Direction indicates which way the wizard last moved, for transition hints.
type Direction int

const (
	DirectionForward Direction = iota
	DirectionBackward
)

// Sequencer tracks linear progress through a fixed number of wizard steps.
// Positions are 1-based. There are no validation gates: any step can be
// left in any state, forward and backward alike.
type Sequencer struct {
	pos       int
	count     int
	direction Direction
}

// NewSequencer creates a sequencer over count steps, positioned at step 1.
func NewSequencer(count int) *Sequencer {
	if count < 1 {
		count = 1
	}
	return &Sequencer{pos: 1, count: count}
}

// Pos returns the current 1-based step position.
func (s *Sequencer) Pos() int { return s.pos }

// Count returns the total number of steps.
func (s *Sequencer) Count() int { return s.count }

// Direction returns which way the sequencer last moved.
func (s *Sequencer) Direction() Direction { return s.direction }

// IsFirst reports whether the sequencer is on the first step.
func (s *Sequencer) IsFirst() bool { return s.pos == 1 }

// IsLast reports whether the sequencer is on the last step.
func (s *Sequencer) IsLast() bool { return s.pos == s.count }

// Advance moves one step forward. On the last step it does not move and
// instead reports completion: the caller decides what completion means.
func (s *Sequencer) Advance() (completed bool) {
	s.direction = DirectionForward
	if s.pos == s.count {
		return true
	}
	s.pos++
	return false
}

// Retreat moves one step backward. On the first step it is a no-op.
func (s *Sequencer) Retreat() (moved bool) {
	s.direction = DirectionBackward
	if s.pos == 1 {
		return false
	}
	s.pos--
	return true
}
