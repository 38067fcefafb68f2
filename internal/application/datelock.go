package application

import "sync"

// dateLocks serializes booking writes per calendar date so two overlapping
// requests for the same day cannot both pass the conflict check.
type dateLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDateLocks() *dateLocks {
	return &dateLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for the given date, creating it on first use. The
// caller must Unlock the returned mutex.
func (d *dateLocks) acquire(date string) *sync.Mutex {
	d.mu.Lock()
	m, ok := d.locks[date]
	if !ok {
		m = &sync.Mutex{}
		d.locks[date] = m
	}
	d.mu.Unlock()

	m.Lock()
	return m
}
