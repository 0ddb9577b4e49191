package helpers

import (
	"fmt"
	"time"

	"frontdash/models"
)

// Canonical order statuses. Portal screens may label these differently
// (the dispatch queue shows pending orders as "Queued") but only these values
// are ever stored.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusReady          = "ready"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

// forward transitions; cancellation is handled separately since it is legal
// from every non-terminal state.
var nextStatus = map[string]string{
	StatusPending:        StatusConfirmed,
	StatusConfirmed:      StatusPreparing,
	StatusPreparing:      StatusReady,
	StatusReady:          StatusOutForDelivery,
	StatusOutForDelivery: StatusDelivered,
}

type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s", e.From, e.To)
}

func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func IsTerminalStatus(status string) bool {
	return status == StatusDelivered || status == StatusCancelled
}

// CanTransition reports whether an order in state from may move to state to.
// Transitions are one directional; no backward move is ever allowed.
func CanTransition(from, to string) bool {
	if !IsValidStatus(from) || !IsValidStatus(to) {
		return false
	}
	if to == StatusCancelled {
		return !IsTerminalStatus(from)
	}
	return nextStatus[from] == to
}

// ApplyTransition advances the order to the requested status or returns a
// TransitionError without touching the order.
func ApplyTransition(order *models.Order, to string) error {
	if !CanTransition(order.Status, to) {
		return &TransitionError{From: order.Status, To: to}
	}
	order.Status = to
	order.Updated_at = time.Now()
	return nil
}
