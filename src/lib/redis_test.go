package lib

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcquireTripLockSerializesSameTrip(t *testing.T) {
	release, err := AcquireTripLock(context.Background(), 1)
	assert.NoError(t, err)

	entered := make(chan struct{})
	go func() {
		r2, err := AcquireTripLock(context.Background(), 1)
		assert.NoError(t, err)
		close(entered)
		r2()
	}()

	select {
	case <-entered:
		t.Fatal("second caller acquired the lock while it was held")
	case <-time.After(50 * time.Millisecond):
	}

	release()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("second caller never acquired the lock after release")
	}
}

func TestAcquireTripLockIndependentTrips(t *testing.T) {
	r1, err := AcquireTripLock(context.Background(), 10)
	assert.NoError(t, err)
	defer r1()

	done := make(chan struct{})
	go func() {
		r2, err := AcquireTripLock(context.Background(), 11)
		assert.NoError(t, err)
		r2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different trip should not block")
	}
}
