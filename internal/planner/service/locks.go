package service

import "sync"

// KeyedLocks serializes check-then-act sequences per logical resource: one
// mutex per room for the overlap check, one per reservation and per member
// for the capacity and schedule checks. sqlite gives each write transaction
// atomicity, but two transactions could still both pass a read check before
// either writes; the lock closes that window.
//
// Locks are never released from the map. The key space (rooms, members,
// reservations of one association) is small enough that this does not matter.
type KeyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedLocks() *KeyedLocks {
	return &KeyedLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedLocks) get(key string) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	return l
}

// Lock acquires the mutex for key and returns its unlock function.
func (k *KeyedLocks) Lock(key string) func() {
	l := k.get(key)
	l.Lock()
	return l.Unlock
}
