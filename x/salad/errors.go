package salad

import (
	"github.com/iov-one/weave/errors"
)

// Error codes
// x/salad reserves 1200 ~ 1209.

var (
	// ErrLockedBalance is returned when withdrawing a balance that is
	// still inside the deposit lock window.
	ErrLockedBalance = errors.Register(1200, "balance locked")

	// ErrDealNotExecutable is returned when operating on a deal that
	// does not exist or was cancelled.
	ErrDealNotExecutable = errors.Register(1201, "deal not executable")

	// ErrDealFinalized is returned when distributing a deal that was
	// already executed. Executed deals are terminal.
	ErrDealFinalized = errors.Register(1202, "deal already finalized")

	// ErrRecipientCount is returned when the recipient list length does
	// not match the deal participant count.
	ErrRecipientCount = errors.Register(1203, "recipient count mismatch")

	// ErrThreshold is returned when a deal has fewer participants than
	// the configured participation threshold.
	ErrThreshold = errors.Register(1204, "not enough participants")

	// ErrDealInterval is returned when distributing before the
	// configured number of blocks since deal creation has passed.
	ErrDealInterval = errors.Register(1205, "deal interval not elapsed")
)
