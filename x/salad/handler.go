package salad

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	depositCost    int64 = 100
	withdrawCost   int64 = 100
	createDealCost int64 = 300
	cancelDealCost int64 = 50
	// distribution is charged for every payout issued
	distributePerRecipientCost int64 = 100
)

// CashController allows to manage coins stored by the accounts without the
// need to directly access the bucket.
// Required functionality is implemented by the x/cash extension.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes will instantiate and register
// all handlers in this package.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("salad", r)
	balances := NewBalanceBucket()
	deals := NewDealBucket()
	index := NewDealIndexBucket()

	r.Handle(&DepositMsg{}, &depositHandler{auth: auth, balances: balances, ctrl: ctrl})
	r.Handle(&WithdrawMsg{}, &withdrawHandler{auth: auth, balances: balances, ctrl: ctrl})
	r.Handle(&CreateDealMsg{}, &createDealHandler{auth: auth, deals: deals, index: index, balances: balances})
	r.Handle(&CancelDealMsg{}, &cancelDealHandler{auth: auth, deals: deals})
	r.Handle(&DistributeMsg{}, &distributeHandler{auth: auth, deals: deals, ctrl: ctrl})
}

// RegisterQuery will register salad buckets under
// "/balances", "/deals" and "/dealindex".
func RegisterQuery(qr weave.QueryRouter) {
	NewBalanceBucket().Register("balances", qr)
	NewDealBucket().Register("deals", qr)
	NewDealIndexBucket().Register("dealindex", qr)
}

type depositHandler struct {
	auth     x.Authenticator
	balances orm.ModelBucket
	ctrl     CashController
}

var _ weave.Handler = (*depositHandler)(nil)

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h *depositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: depositCost}, nil
}

// Deliver credits the participant ledger balance, re-arms the withdrawal
// lock and moves the coins into the pool account.
func (h *depositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	participant := msg.Participant
	if participant == nil {
		participant = x.AnySigner(ctx, h.auth).Address()
	}

	var balance Balance
	switch err := h.balances.One(db, participant, &balance); {
	case err == nil:
		// Subsequent deposit on an existing record.
	case errors.ErrNotFound.Is(err):
		balance = Balance{
			Metadata: &weave.Metadata{},
			Amount:   &coin.Coin{Ticker: msg.Amount.Ticker},
		}
	default:
		return nil, errors.Wrap(err, "cannot load balance")
	}

	total, err := balance.Amount.Add(*msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "cannot add to balance")
	}
	height, _ := weave.GetHeight(ctx)
	balance.Amount = &total
	balance.LastDepositHeight = height
	if _, err := h.balances.Put(db, participant, &balance); err != nil {
		return nil, errors.Wrap(err, "cannot store balance")
	}

	if err := h.ctrl.MoveCoins(db, participant, PoolAccount(), *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot collect deposit")
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *depositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DepositMsg, error) {
	var msg DepositMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	// Participant must authorize this (if not set, defaults to AnySigner).
	if msg.Participant != nil {
		if !h.auth.HasAddress(ctx, msg.Participant) {
			return nil, errors.ErrUnauthorized
		}
	} else if x.AnySigner(ctx, h.auth) == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}

	return &msg, nil
}

type withdrawHandler struct {
	auth     x.Authenticator
	balances orm.ModelBucket
	ctrl     CashController
}

var _ weave.Handler = (*withdrawHandler)(nil)

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h *withdrawHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: withdrawCost}, nil
}

// Deliver zeroes the ledger balance and only then pays the whole previous
// amount out of the pool. The lock marker is left untouched, only a new
// deposit re-arms it.
func (h *withdrawHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	participant, balance, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	amount := *balance.Amount
	zero := coin.Coin{Ticker: amount.Ticker}
	balance.Amount = &zero
	if _, err := h.balances.Put(db, participant, balance); err != nil {
		return nil, errors.Wrap(err, "cannot store balance")
	}

	if err := h.ctrl.MoveCoins(db, PoolAccount(), participant, amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out")
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *withdrawHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (weave.Address, *Balance, error) {
	var msg WithdrawMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	participant := msg.Participant
	if participant != nil {
		if !h.auth.HasAddress(ctx, participant) {
			return nil, nil, errors.ErrUnauthorized
		}
	} else {
		signer := x.AnySigner(ctx, h.auth)
		if signer == nil {
			return nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
		}
		participant = signer.Address()
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}

	var balance Balance
	if err := h.balances.One(db, participant, &balance); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load balance")
	}

	height, _ := weave.GetHeight(ctx)
	if locked := balance.LastDepositHeight + conf.DepositLockBlocks; height <= locked {
		return nil, nil, errors.Wrapf(ErrLockedBalance, "until height %d", locked)
	}
	if !balance.Amount.IsPositive() {
		return nil, nil, errors.Wrap(errors.ErrEmpty, "nothing to withdraw")
	}

	return participant, &balance, nil
}

type createDealHandler struct {
	auth     x.Authenticator
	deals    orm.ModelBucket
	index    orm.ModelBucket
	balances orm.ModelBucket
}

var _ weave.Handler = (*createDealHandler)(nil)

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h *createDealHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createDealCost}, nil
}

// Deliver stores an executable deal and registers its identifier in the
// catalog. No funds are moved, the ledger is only required to back every
// participant slot at this moment.
func (h *createDealHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, organizer, dealID, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	height, _ := weave.GetHeight(ctx)
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "block time")
	}

	deal := &Deal{
		Metadata:        &weave.Metadata{},
		Organizer:       organizer,
		Deposit:         msg.Deposit,
		NumParticipants: int64(len(msg.Participants)),
		Participants:    msg.Participants,
		StartHeight:     height,
		StartTime:       weave.AsUnixTime(blockTime),
		State:           DealStateExecutable,
	}
	if _, err := h.deals.Put(db, dealID, deal); err != nil {
		return nil, errors.Wrap(err, "cannot store deal")
	}

	var index DealIndex
	switch err := h.index.One(db, dealIndexKey, &index); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		index = DealIndex{Metadata: &weave.Metadata{}}
	default:
		return nil, errors.Wrap(err, "cannot load deal index")
	}
	index.DealIDs = append(index.DealIDs, dealID)
	if _, err := h.index.Put(db, dealIndexKey, &index); err != nil {
		return nil, errors.Wrap(err, "cannot store deal index")
	}

	return &weave.DeliverResult{Data: dealID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *createDealHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateDealMsg, weave.Address, []byte, error) {
	var msg CreateDealMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}

	signer := x.AnySigner(ctx, h.auth)
	if signer == nil {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	organizer := signer.Address()

	dealID, err := DealID(*msg.Deposit, msg.Participants, organizer, msg.Nonce)
	if err != nil {
		return nil, nil, nil, err
	}

	switch err := h.deals.Has(db, dealID); {
	case err == nil:
		return nil, nil, nil, errors.Wrap(errors.ErrDuplicate, "deal exists")
	case errors.ErrNotFound.Is(err):
		// Deal does not exist and can be created.
	default:
		return nil, nil, nil, errors.Wrap(err, "cannot check deal existence")
	}

	// Every participant must back its slot with enough pooled funds. The
	// ledger is only inspected, never debited here. Balances stay
	// withdrawable until the lock expires and are spent only by a
	// distribution.
	for i, p := range msg.Participants {
		var balance Balance
		switch err := h.balances.One(db, p, &balance); {
		case err == nil:
		case errors.ErrNotFound.Is(err):
			return nil, nil, nil, errors.Wrapf(errors.ErrAmount, "participant #%d holds no balance", i)
		default:
			return nil, nil, nil, errors.Wrapf(err, "participant #%d balance", i)
		}
		if !balance.Amount.IsGTE(*msg.Deposit) {
			return nil, nil, nil, errors.Wrapf(errors.ErrAmount, "participant #%d balance below deposit", i)
		}
	}

	return &msg, organizer, dealID, nil
}

type cancelDealHandler struct {
	auth  x.Authenticator
	deals orm.ModelBucket
}

var _ weave.Handler = (*cancelDealHandler)(nil)

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h *cancelDealHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: cancelDealCost}, nil
}

// Deliver moves an executable deal into the cancelled state. Cancellation
// is terminal and permanently blocks distribution. No funds are moved as
// none were taken at creation.
func (h *cancelDealHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deal, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	deal.State = DealStateCancelled
	if _, err := h.deals.Put(db, msg.DealID, deal); err != nil {
		return nil, errors.Wrap(err, "cannot store deal")
	}
	return &weave.DeliverResult{}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *cancelDealHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CancelDealMsg, *Deal, error) {
	var msg CancelDealMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var deal Deal
	switch err := h.deals.One(db, msg.DealID, &deal); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, errors.Wrap(ErrDealNotExecutable, "no such deal")
	default:
		return nil, nil, errors.Wrap(err, "cannot load deal")
	}

	// Only the organizer can cancel.
	if !h.auth.HasAddress(ctx, deal.Organizer) {
		return nil, nil, errors.ErrUnauthorized
	}

	switch deal.State {
	case DealStateExecutable:
	case DealStateExecuted, DealStateCancelled:
		return nil, nil, errors.Wrapf(ErrDealFinalized, "deal is %s", deal.State)
	default:
		return nil, nil, errors.Wrapf(errors.ErrState, "invalid deal state %d", deal.State)
	}

	return &msg, &deal, nil
}

type distributeHandler struct {
	auth  x.Authenticator
	deals orm.ModelBucket
	ctrl  CashController
}

var _ weave.Handler = (*distributeHandler)(nil)

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h *distributeHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	msg, _, _, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	gas := distributePerRecipientCost * int64(len(msg.Recipients))
	return &weave.CheckResult{GasAllocated: gas}, nil
}

// Deliver settles a deal exactly once. The deal is finalized first,
// recipients written and the state flipped to executed, and only then the
// payouts leave the pool, one per recipient in the order requested,
// followed by a single aggregated fee transfer to the collector. Any
// failed transfer aborts the whole delivery.
func (h *distributeHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, deal, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	deal.Recipients = msg.Recipients
	deal.State = DealStateExecuted
	if _, err := h.deals.Put(db, msg.DealID, deal); err != nil {
		return nil, errors.Wrap(err, "cannot store deal")
	}

	payout := *deal.Deposit
	var fee coin.Coin
	if conf.RelayerFeePercent > 0 {
		cut, err := deal.Deposit.Multiply(int64(conf.RelayerFeePercent))
		if err != nil {
			return nil, errors.Wrap(err, "fee")
		}
		fee, _, err = cut.Divide(100)
		if err != nil {
			return nil, errors.Wrap(err, "fee")
		}
		payout, err = deal.Deposit.Subtract(fee)
		if err != nil {
			return nil, errors.Wrap(err, "payout")
		}
	}

	pool := PoolAccount()
	for i, r := range msg.Recipients {
		if err := h.ctrl.MoveCoins(db, pool, r, payout); err != nil {
			return nil, errors.Wrapf(err, "payout #%d", i)
		}
	}
	if fee.IsPositive() {
		total, err := fee.Multiply(int64(len(msg.Recipients)))
		if err != nil {
			return nil, errors.Wrap(err, "fee total")
		}
		if err := h.ctrl.MoveCoins(db, pool, conf.FeeCollector, total); err != nil {
			return nil, errors.Wrap(err, "cannot collect fee")
		}
	}

	return &weave.DeliverResult{Data: msg.DealID}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h *distributeHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DistributeMsg, *Deal, Configuration, error) {
	var msg DistributeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, Configuration{}, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, conf, err
	}

	// Distribution fails closed. With no executor configured nobody can
	// settle a deal.
	if len(conf.Executor) == 0 {
		return nil, nil, conf, errors.Wrap(errors.ErrUnauthorized, "no executor configured")
	}
	if !h.auth.HasAddress(ctx, conf.Executor) {
		return nil, nil, conf, errors.ErrUnauthorized
	}

	var deal Deal
	switch err := h.deals.One(db, msg.DealID, &deal); {
	case err == nil:
	case errors.ErrNotFound.Is(err):
		return nil, nil, conf, errors.Wrap(ErrDealNotExecutable, "no such deal")
	default:
		return nil, nil, conf, errors.Wrap(err, "cannot load deal")
	}
	switch deal.State {
	case DealStateExecutable:
	case DealStateExecuted:
		return nil, nil, conf, errors.Wrap(ErrDealFinalized, "already distributed")
	case DealStateCancelled:
		return nil, nil, conf, errors.Wrap(ErrDealNotExecutable, "deal cancelled")
	default:
		return nil, nil, conf, errors.Wrapf(errors.ErrState, "invalid deal state %d", deal.State)
	}

	if int64(len(msg.Recipients)) != deal.NumParticipants {
		return nil, nil, conf, errors.Wrapf(ErrRecipientCount, "want %d, got %d", deal.NumParticipants, len(msg.Recipients))
	}
	if deal.NumParticipants < conf.ParticipationThreshold {
		return nil, nil, conf, errors.Wrapf(ErrThreshold, "want at least %d participants", conf.ParticipationThreshold)
	}
	height, _ := weave.GetHeight(ctx)
	if ready := deal.StartHeight + conf.DealIntervalBlocks; height < ready {
		return nil, nil, conf, errors.Wrapf(ErrDealInterval, "until height %d", ready)
	}

	// The pool must cover the complete settlement, one deposit per
	// recipient, before any transfer is issued.
	total, err := deal.Deposit.Multiply(deal.NumParticipants)
	if err != nil {
		return nil, nil, conf, errors.Wrap(err, "total")
	}
	available, err := h.ctrl.Balance(db, PoolAccount())
	if err != nil {
		return nil, nil, conf, errors.Wrap(err, "pool balance")
	}
	if !available.Contains(total) {
		return nil, nil, conf, errors.Wrapf(errors.ErrAmount, "pool cannot cover %s", total)
	}

	return &msg, &deal, conf, nil
}
