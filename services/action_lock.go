package services

import (
	"errors"
	"fmt"
	"sync"
)

// ErrActionInFlight means another mutation on the same row has not finished
// yet. Mutations on unrelated rows proceed concurrently.
var ErrActionInFlight = errors.New("another action on this item is still in progress")

// actionLocks is a keyed try-lock guarding per-row mutations (cancel order,
// delete address) against concurrent duplicates.
type actionLocks struct {
	inFlight sync.Map
}

func newActionLocks() *actionLocks {
	return &actionLocks{}
}

func (l *actionLocks) key(resource string, id uint) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

// TryLock reserves the row, returning ErrActionInFlight when it is already
// held. Callers must defer Unlock on success.
func (l *actionLocks) TryLock(resource string, id uint) error {
	if _, loaded := l.inFlight.LoadOrStore(l.key(resource, id), struct{}{}); loaded {
		return ErrActionInFlight
	}
	return nil
}

func (l *actionLocks) Unlock(resource string, id uint) {
	l.inFlight.Delete(l.key(resource, id))
}
