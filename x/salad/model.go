package salad

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Balance{}, migration.NoModification)
	migration.MustRegister(1, &Deal{}, migration.NoModification)
	migration.MustRegister(1, &DealIndex{}, migration.NoModification)
}

// maxParticipants is the maximum number of participants allowed within a
// single deal. This is a high number that should not be an issue in real
// life scenarios. But having a sane limit prevents abuse.
const maxParticipants = 200

var _ orm.Model = (*Balance)(nil)

// Validate ensures the balance is valid.
func (b *Balance) Validate() error {
	if err := b.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if b.Amount == nil {
		return errors.Wrap(errors.ErrEmpty, "amount")
	}
	if err := b.Amount.Validate(); err != nil {
		return errors.Wrap(err, "amount")
	}
	if !b.Amount.IsNonNegative() {
		return errors.Wrap(errors.ErrAmount, "amount cannot be negative")
	}
	if b.LastDepositHeight < 0 {
		return errors.Wrap(errors.ErrModel, "last deposit height cannot be negative")
	}
	return nil
}

var _ orm.Model = (*Deal)(nil)

// Validate ensures the deal is valid.
func (d *Deal) Validate() error {
	if err := d.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := d.Organizer.Validate(); err != nil {
		return errors.Wrap(err, "organizer")
	}
	if d.Deposit == nil {
		return errors.Wrap(errors.ErrEmpty, "deposit")
	}
	if err := d.Deposit.Validate(); err != nil {
		return errors.Wrap(err, "deposit")
	}
	if !d.Deposit.IsPositive() {
		return errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	if err := validateParticipants(d.Participants, errors.ErrModel); err != nil {
		return err
	}
	if d.NumParticipants != int64(len(d.Participants)) {
		return errors.Wrap(errors.ErrModel, "participant count out of sync")
	}
	if d.StartHeight < 1 {
		return errors.Wrap(errors.ErrModel, "start height missing")
	}
	switch d.State {
	case DealStateExecutable, DealStateCancelled:
		if len(d.Recipients) != 0 {
			return errors.Wrapf(errors.ErrModel, "%s deal cannot have recipients", d.State)
		}
	case DealStateExecuted:
		if int64(len(d.Recipients)) != d.NumParticipants {
			return errors.Wrap(errors.ErrModel, "executed deal must have one recipient per participant")
		}
		for i, r := range d.Recipients {
			if err := r.Validate(); err != nil {
				return errors.Wrapf(err, "recipient #%d", i)
			}
		}
	default:
		return errors.Wrapf(errors.ErrState, "invalid deal state %d", d.State)
	}
	return nil
}

// validateParticipants returns an error if given participant set is not
// valid. Participants must be unique, every account backs its slot with
// its own ledger balance.
func validateParticipants(ps []weave.Address, baseErr *errors.Error) error {
	switch n := len(ps); {
	case n == 0:
		return errors.Wrap(baseErr, "participants must not be empty")
	case n > maxParticipants:
		return errors.Wrap(baseErr, "too many participants")
	}
	seen := make(map[string]struct{}, len(ps))
	for i, p := range ps {
		if err := p.Validate(); err != nil {
			return errors.Wrapf(err, "participant #%d", i)
		}
		if _, ok := seen[string(p)]; ok {
			return errors.Wrapf(baseErr, "participant #%d is duplicated", i)
		}
		seen[string(p)] = struct{}{}
	}
	return nil
}

var _ orm.Model = (*DealIndex)(nil)

// Validate ensures the deal index is valid.
func (di *DealIndex) Validate() error {
	if err := di.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	for i, id := range di.DealIDs {
		if err := validDealID(id); err != nil {
			return errors.Wrapf(err, "deal id #%d", i)
		}
	}
	return nil
}

// NewBalanceBucket returns a bucket for keeping escrow ledger balances,
// keyed by the account address.
func NewBalanceBucket() orm.ModelBucket {
	b := orm.NewModelBucket("balance", &Balance{})
	return migration.NewModelBucket("salad", b)
}

// NewDealBucket returns a bucket for keeping deals, keyed by the deal
// identifier.
func NewDealBucket() orm.ModelBucket {
	b := orm.NewModelBucket("deal", &Deal{},
		orm.WithIndex("organizer", idxOrganizer, false),
	)
	return migration.NewModelBucket("salad", b)
}

func idxOrganizer(obj orm.Object) ([]byte, error) {
	if obj == nil || obj.Value() == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	d, ok := obj.Value().(*Deal)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Deal")
	}
	return d.Organizer, nil
}

// dealIndexKey is the fixed key the singleton deal catalog is kept under.
var dealIndexKey = []byte("all")

// NewDealIndexBucket returns a bucket keeping the catalog of all deal
// identifiers in creation order. The catalog is a single record stored
// under a fixed key and is never pruned.
func NewDealIndexBucket() orm.ModelBucket {
	b := orm.NewModelBucket("dealidx", &DealIndex{})
	return migration.NewModelBucket("salad", b)
}

// PoolAccount returns the address of the module account holding all
// deposited funds.
func PoolAccount() weave.Address {
	return weave.NewCondition("salad", "pool", []byte("escrow")).Address()
}
