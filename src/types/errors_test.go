package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientError(t *testing.T) {
	assert.True(t, ClientError(InvalidArgument("Name is required")))
	assert.True(t, ClientError(InvalidState("Booking has expired")))
	assert.True(t, ClientError(NotFound("Trip not found")))
	assert.True(t, ClientError(UnsupportedRole("WIZARD")))
	assert.True(t, ClientError(ErrInvalidIdentity))
	assert.False(t, ClientError(errors.New("pq: connection refused")))
}

func TestClientMessageStripsTaxonomyPrefix(t *testing.T) {
	assert.Equal(t, "Name is required", ClientMessage(InvalidArgument("Name is required")))
	assert.Equal(t, "Booking is not in PROVISIONAL state", ClientMessage(InvalidState("Booking is not in PROVISIONAL state")))
	assert.Equal(t, "Booking not found", ClientMessage(NotFound("Booking not found")))
	assert.Equal(t, "Unsupported role: WIZARD", ClientMessage(UnsupportedRole("WIZARD")))
	assert.Equal(t, "Authentication required", ClientMessage(ErrInvalidIdentity))
}
