package application

import "sync"

// eventLocks serializes read-modify-write sequences per event id. Two
// concurrent registrations against the same almost-full event must not both
// observe a free slot, so Register/Unregister hold the event's lock for the
// whole load-decide-persist sequence. Assumes a single service instance owns
// the write path.
type eventLocks struct {
	locks sync.Map // uint -> *sync.Mutex
}

// lock acquires the mutex for eventID and returns its unlock func.
func (l *eventLocks) lock(eventID uint) func() {
	v, _ := l.locks.LoadOrStore(eventID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
