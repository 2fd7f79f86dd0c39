package tracking

import "context"

// Scripted advances through a fixed sequence of object sets, one per Update.
// The last set stays current once the script runs out.
type Scripted struct {
	frames  [][]Object
	pos     int
	current []Object

	// Polls counts Update calls
	Polls int
	// Err, when set, is returned from the next Update and then cleared
	Err error
}

// NewScripted creates a scripted tracker; a nil entry reports no objects for that poll
func NewScripted(frames ...[]Object) *Scripted {
	return &Scripted{frames: frames}
}

// Update advances to the next scripted set
func (s *Scripted) Update(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Polls++
	if s.Err != nil {
		err := s.Err
		s.Err = nil
		return err
	}
	if s.pos < len(s.frames) {
		s.current = s.frames[s.pos]
		s.pos++
	}
	return nil
}

// Objects returns a copy of the current set
func (s *Scripted) Objects() []Object {
	out := make([]Object, len(s.current))
	copy(out, s.current)
	return out
}
