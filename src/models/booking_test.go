package models

import (
	"testing"
	"time"

	"boatsafari/src/types"

	"github.com/stretchr/testify/assert"
)

func TestHoldExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.True(t, Booking{HoldExpiresAt: &past}.HoldExpired(now))
	assert.False(t, Booking{HoldExpiresAt: &future}.HoldExpired(now))
	assert.False(t, Booking{}.HoldExpired(now))
}

func TestCountsTowardCapacity(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	cases := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"confirmed always counts", Booking{Status: types.BOOKING_CONFIRMED}, true},
		{"confirmed counts even with lapsed hold", Booking{Status: types.BOOKING_CONFIRMED, HoldExpiresAt: &past}, true},
		{"live provisional counts", Booking{Status: types.BOOKING_PROVISIONAL, HoldExpiresAt: &future}, true},
		{"lapsed provisional releases seats", Booking{Status: types.BOOKING_PROVISIONAL, HoldExpiresAt: &past}, false},
		{"expired releases seats", Booking{Status: types.BOOKING_EXPIRED, HoldExpiresAt: &past}, false},
		{"cancelled releases seats", Booking{Status: types.BOOKING_CANCELED}, false},
		{"status matching is case-insensitive", Booking{Status: "confirmed"}, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.booking.CountsTowardCapacity(now), c.name)
	}
}
