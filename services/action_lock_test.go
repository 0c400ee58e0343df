package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionLocks_PerRowIsolation(t *testing.T) {
	locks := newActionLocks()

	assert.NoError(t, locks.TryLock("order", 1))
	assert.ErrorIs(t, locks.TryLock("order", 1), ErrActionInFlight)

	// Other rows and other resources are unaffected.
	assert.NoError(t, locks.TryLock("order", 2))
	assert.NoError(t, locks.TryLock("address", 1))

	locks.Unlock("order", 1)
	assert.NoError(t, locks.TryLock("order", 1))
}
