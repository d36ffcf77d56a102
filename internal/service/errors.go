package service

import "errors"

var (
	// ErrSessionInvalid is returned when a stored token fails the startup
	// auth check. The clearing side effect is the same as a user logout,
	// but the two are kept distinguishable.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrInvalidItem is a local rejection: the item fields never reached
	// the network.
	ErrInvalidItem = errors.New("item name and a positive shelf life are required")
)
