package controllers

import (
	"testing"

	"frontdash/helpers"

	"github.com/stretchr/testify/assert"
)

func TestTransitionAllowedForRole(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		from    string
		to      string
		allowed bool
	}{
		{"admin may do anything", "ADMIN", helpers.StatusDelivered, helpers.StatusPending, true},
		{"staff confirms only through driver assignment", "STAFF", helpers.StatusPending, helpers.StatusConfirmed, false},
		{"staff dispatches ready orders", "STAFF", helpers.StatusReady, helpers.StatusOutForDelivery, true},
		{"staff completes deliveries", "STAFF", helpers.StatusOutForDelivery, helpers.StatusDelivered, true},
		{"staff does not run the kitchen", "STAFF", helpers.StatusConfirmed, helpers.StatusPreparing, false},
		{"restaurant starts preparing", "RESTAURANT", helpers.StatusConfirmed, helpers.StatusPreparing, true},
		{"restaurant marks ready", "RESTAURANT", helpers.StatusPreparing, helpers.StatusReady, true},
		{"restaurant does not dispatch", "RESTAURANT", helpers.StatusReady, helpers.StatusOutForDelivery, false},
		{"any portal role may cancel", "RESTAURANT", helpers.StatusPending, helpers.StatusCancelled, true},
		{"unknown role gets nothing", "COURIER", helpers.StatusReady, helpers.StatusOutForDelivery, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, transitionAllowedForRole(tt.role, tt.from, tt.to))
		})
	}
}

func TestDriverReserveFilterRequiresAvailability(t *testing.T) {
	filter := driverReserveFilter("driver-1")

	assert.Equal(t, "driver-1", filter["driver_id"])
	assert.Equal(t, "active", filter["status"])
	assert.Equal(t, true, filter["is_available"])
}

func TestStaffQueueLabel(t *testing.T) {
	assert.Equal(t, "Queued", staffQueueLabel(helpers.StatusPending))
	assert.Equal(t, "Assigned", staffQueueLabel(helpers.StatusConfirmed))
	assert.Equal(t, helpers.StatusPreparing, staffQueueLabel(helpers.StatusPreparing))
}
