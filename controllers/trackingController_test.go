package controllers

import (
	"testing"

	"frontdash/helpers"

	"github.com/stretchr/testify/assert"
)

func TestNextActor(t *testing.T) {
	assert.Equal(t, "STAFF", nextActor(helpers.StatusPending))
	assert.Equal(t, "STAFF", nextActor(helpers.StatusReady))
	assert.Equal(t, "STAFF", nextActor(helpers.StatusOutForDelivery))
	assert.Equal(t, "RESTAURANT", nextActor(helpers.StatusConfirmed))
	assert.Equal(t, "RESTAURANT", nextActor(helpers.StatusPreparing))

	// terminal states have no portal actor, so no notification is recorded
	// for them
	assert.Equal(t, "", nextActor(helpers.StatusDelivered))
	assert.Equal(t, "", nextActor(helpers.StatusCancelled))
}
