package helpers

import (
	"testing"

	"frontdash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionForward(t *testing.T) {
	steps := []string{
		StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusOutForDelivery, StatusDelivered,
	}
	for i := 0; i < len(steps)-1; i++ {
		assert.True(t, CanTransition(steps[i], steps[i+1]), "%s -> %s", steps[i], steps[i+1])
	}

	// no skipping, no going back
	assert.False(t, CanTransition(StatusPending, StatusPreparing))
	assert.False(t, CanTransition(StatusConfirmed, StatusPending))
	assert.False(t, CanTransition(StatusDelivered, StatusPreparing))
	assert.False(t, CanTransition(StatusOutForDelivery, StatusReady))
}

func TestCanTransitionCancellation(t *testing.T) {
	for _, from := range []string{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery} {
		assert.True(t, CanTransition(from, StatusCancelled), "cancel from %s", from)
	}
	assert.False(t, CanTransition(StatusDelivered, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusCancelled))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("queued", StatusConfirmed))
	assert.False(t, CanTransition(StatusPending, "Assigned"))
}

func TestApplyTransition(t *testing.T) {
	order := &models.Order{Status: StatusPending}
	require.NoError(t, ApplyTransition(order, StatusConfirmed))
	assert.Equal(t, StatusConfirmed, order.Status)
	assert.False(t, order.Updated_at.IsZero())
}

func TestApplyTransitionRejectsAndLeavesOrderUnchanged(t *testing.T) {
	order := &models.Order{Status: StatusDelivered}
	before := *order

	err := ApplyTransition(order, StatusPreparing)
	require.Error(t, err)
	assert.Equal(t, before, *order, "failed transition must not mutate the order")

	var transitionErr *TransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "cannot move from delivered to preparing", err.Error())
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(StatusDelivered))
	assert.True(t, IsTerminalStatus(StatusCancelled))
	assert.False(t, IsTerminalStatus(StatusPending))
	assert.False(t, IsTerminalStatus(StatusOutForDelivery))
}
