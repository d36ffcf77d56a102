package cli

import "errors"

// ConfirmState models a single confirm dialog as an explicit state
// machine instead of ad hoc booleans, so cancellation and double-submit
// guarding are testable.
type ConfirmState int

const (
	ConfirmIdle ConfirmState = iota
	ConfirmPending
	ConfirmCommitted
	ConfirmCancelled
)

var ErrConfirmInProgress = errors.New("confirmation already in progress")

// Confirm tracks one idle → pending → committed/cancelled transition.
// A finished Confirm is not reusable; callers create a fresh one per
// destructive action.
type Confirm struct {
	state ConfirmState
}

func (c *Confirm) State() ConfirmState { return c.state }

// Begin moves idle → pending. Beginning twice is a double submit and
// is rejected.
func (c *Confirm) Begin() error {
	if c.state != ConfirmIdle {
		return ErrConfirmInProgress
	}
	c.state = ConfirmPending
	return nil
}

// Commit finishes a pending confirmation. Committing from any other
// state is a no-op and reports false.
func (c *Confirm) Commit() bool {
	if c.state != ConfirmPending {
		return false
	}
	c.state = ConfirmCommitted
	return true
}

// Cancel abandons a pending confirmation. Cancelling from any other
// state is a no-op and reports false.
func (c *Confirm) Cancel() bool {
	if c.state != ConfirmPending {
		return false
	}
	c.state = ConfirmCancelled
	return true
}
