package salad

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &DepositMsg{}, migration.NoModification)
	migration.MustRegister(1, &WithdrawMsg{}, migration.NoModification)
	migration.MustRegister(1, &CreateDealMsg{}, migration.NoModification)
	migration.MustRegister(1, &CancelDealMsg{}, migration.NoModification)
	migration.MustRegister(1, &DistributeMsg{}, migration.NoModification)
}

var _ weave.Msg = (*DepositMsg)(nil)

// Path returns the routing path for this message.
func (DepositMsg) Path() string {
	return "salad/deposit"
}

// Validate ensures the deposit message is valid.
func (msg *DepositMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(msg.Participant) != 0 {
		if err := msg.Participant.Validate(); err != nil {
			return errors.Wrap(err, "participant")
		}
	}
	if msg.Amount == nil {
		return errors.Wrap(errors.ErrAmount, "amount missing")
	}
	if err := msg.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !msg.Amount.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "amount must be positive")
	}
	return nil
}

var _ weave.Msg = (*WithdrawMsg)(nil)

// Path returns the routing path for this message.
func (WithdrawMsg) Path() string {
	return "salad/withdraw"
}

// Validate ensures the withdraw message is valid.
func (msg *WithdrawMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if len(msg.Participant) != 0 {
		if err := msg.Participant.Validate(); err != nil {
			return errors.Wrap(err, "participant")
		}
	}
	return nil
}

var _ weave.Msg = (*CreateDealMsg)(nil)

// Path returns the routing path for this message.
func (CreateDealMsg) Path() string {
	return "salad/create_deal"
}

// Validate ensures the create deal message is valid.
func (msg *CreateDealMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if msg.Deposit == nil {
		return errors.Wrap(errors.ErrAmount, "deposit missing")
	}
	if err := msg.Deposit.Validate(); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if !msg.Deposit.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	return validateParticipants(msg.Participants, errors.ErrMsg)
}

var _ weave.Msg = (*CancelDealMsg)(nil)

// Path returns the routing path for this message.
func (CancelDealMsg) Path() string {
	return "salad/cancel_deal"
}

// Validate ensures the cancel deal message is valid.
func (msg *CancelDealMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	return errors.Wrap(validDealID(msg.DealID), "deal id")
}

var _ weave.Msg = (*DistributeMsg)(nil)

// Path returns the routing path for this message.
func (DistributeMsg) Path() string {
	return "salad/distribute"
}

// Validate ensures the distribute message is valid.
//
// Recipients may repeat, nothing stops participants from asking for the
// payout on a shared destination address. Order is meaningful and is
// preserved all the way to the payout.
func (msg *DistributeMsg) Validate() error {
	if err := msg.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := validDealID(msg.DealID); err != nil {
		return errors.Wrap(err, "deal id")
	}
	switch n := len(msg.Recipients); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "recipients")
	case n > maxParticipants:
		return errors.Wrap(errors.ErrMsg, "too many recipients")
	}
	for i, r := range msg.Recipients {
		if err := r.Validate(); err != nil {
			return errors.Wrapf(err, "recipient #%d", i)
		}
	}
	return nil
}
