package gamepad

import "sync"

// Actuation is the most recently derived actuation demand. Valid turns false
// only on an unrecoverable device read error and stays false afterwards.
type Actuation struct {
	Acceleration float32
	Steering     float32
	Valid        bool
}

// State shares the current Actuation between the sampler (writer) and the
// publish loop (reader). Both critical sections are short, a single exclusive
// lock is all that is needed.
type State struct {
	mu  sync.Mutex
	cur Actuation
}

func NewState() *State {
	return &State{cur: Actuation{Valid: true}}
}

// Update runs fn with exclusive access to the shared record. The sampler uses
// it to apply a whole drain cycle under one lock acquisition.
func (s *State) Update(fn func(*Actuation)) {
	s.mu.Lock()
	fn(&s.cur)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current record.
func (s *State) Snapshot() Actuation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Invalidate latches the error flag.
func (s *State) Invalidate() {
	s.Update(func(a *Actuation) {
		a.Valid = false
	})
}
