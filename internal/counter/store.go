// Package counter provides a small counter state container shared by
// passing the *Store to its consumers.
package counter

// Store holds a single integer count. Transitions are expected to be
// serialized by the caller's event loop, so Store carries no lock.
type Store struct {
	count     int
	nextID    int
	listeners map[int]func(count int)
	order     []int
}

// New creates a Store with a count of zero.
func New() *Store {
	return &Store{
		listeners: make(map[int]func(int)),
	}
}

// Count returns the current count.
func (s *Store) Count() int {
	return s.count
}

// Increment adds one to the count.
func (s *Store) Increment() {
	s.set(s.count + 1)
}

// Decrement subtracts one from the count. The count may go negative.
func (s *Store) Decrement() {
	s.set(s.count - 1)
}

// Reset sets the count back to zero.
func (s *Store) Reset() {
	s.set(0)
}

// Subscribe registers fn to be called with the new count after every
// transition, including a Reset that leaves the count unchanged. Listeners
// run in subscription order. The returned function removes the listener.
func (s *Store) Subscribe(fn func(count int)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	return func() {
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) set(count int) {
	s.count = count
	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.listeners[id]; ok {
			fn(count)
		}
	}
}
