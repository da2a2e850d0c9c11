package weather

import "sync"

// StateKind tags the variant held by a State
type StateKind int

const (
	StateLoading StateKind = iota
	StateSuccess
	StateError
)

// String returns the string representation of the state kind
func (k StateKind) String() string {
	switch k {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the tri-state weather model. Snapshot is set only for StateSuccess,
// Message only for StateError.
type State struct {
	Kind     StateKind
	Snapshot *Snapshot
	Message  string
}

// Loading returns the in-progress state
func Loading() State {
	return State{Kind: StateLoading}
}

// Success returns a state holding a fetched snapshot
func Success(snapshot *Snapshot) State {
	return State{Kind: StateSuccess, Snapshot: snapshot}
}

// Failure returns an error state with a human-readable message
func Failure(message string) State {
	return State{Kind: StateError, Message: message}
}

// IsTerminal reports whether the state ends a load
func (s State) IsTerminal() bool {
	return s.Kind == StateSuccess || s.Kind == StateError
}

// StateStream holds the current state and fans every publication out to subscribers.
// Each subscriber channel has room for one state; a slow reader only ever misses
// intermediate states, never the latest one.
type StateStream struct {
	mu      sync.Mutex
	current State
	subs    map[uint64]chan State
	nextID  uint64
	closed  bool
	observe func(State)
}

// NewStateStream creates a stream whose current value is initial
func NewStateStream(initial State) *StateStream {
	return &StateStream{
		current: initial,
		subs:    make(map[uint64]chan State),
	}
}

// Current returns the latest published state
func (s *StateStream) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Publish replaces the current state and delivers it to every subscriber
func (s *StateStream) Publish(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.current = state
	if s.observe != nil {
		s.observe(state)
	}
	for _, ch := range s.subs {
		offerLatest(ch, state)
	}
}

// Subscribe returns a channel that immediately receives the current state and then
// every later publication, plus a func that detaches it
func (s *StateStream) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- s.current

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// Close stops publication and closes every subscriber channel
func (s *StateStream) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// offerLatest must be called with the stream lock held; it is then the only sender.
func offerLatest(ch chan State, state State) {
	select {
	case ch <- state:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- state
}
