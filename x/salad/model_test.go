package salad

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestBalanceValidate(t *testing.T) {
	cases := map[string]struct {
		Balance Balance
		WantErr *errors.Error
	}{
		"correct": {
			Balance: Balance{
				Metadata:          &weave.Metadata{Schema: 1},
				Amount:            coin.NewCoinp(5, 0, "IOV"),
				LastDepositHeight: 100,
			},
			WantErr: nil,
		},
		"zero amount is valid": {
			Balance: Balance{
				Metadata:          &weave.Metadata{Schema: 1},
				Amount:            coin.NewCoinp(0, 0, "IOV"),
				LastDepositHeight: 100,
			},
			WantErr: nil,
		},
		"missing metadata": {
			Balance: Balance{
				Amount: coin.NewCoinp(5, 0, "IOV"),
			},
			WantErr: errors.ErrMetadata,
		},
		"missing amount": {
			Balance: Balance{
				Metadata: &weave.Metadata{Schema: 1},
			},
			WantErr: errors.ErrEmpty,
		},
		"negative amount": {
			Balance: Balance{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(-5, 0, "IOV"),
			},
			WantErr: errors.ErrAmount,
		},
		"negative deposit height": {
			Balance: Balance{
				Metadata:          &weave.Metadata{Schema: 1},
				Amount:            coin.NewCoinp(5, 0, "IOV"),
				LastDepositHeight: -1,
			},
			WantErr: errors.ErrModel,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Balance.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}

func TestDealValidate(t *testing.T) {
	var (
		alice     = weavetest.NewCondition().Address()
		bob       = weavetest.NewCondition().Address()
		organizer = weavetest.NewCondition().Address()
	)

	goodDeal := func() Deal {
		return Deal{
			Metadata:        &weave.Metadata{Schema: 1},
			Organizer:       organizer,
			Deposit:         coin.NewCoinp(5, 0, "IOV"),
			NumParticipants: 2,
			Participants:    []weave.Address{alice, bob},
			StartHeight:     100,
			StartTime:       1572247483,
			State:           DealStateExecutable,
		}
	}

	cases := map[string]struct {
		Mutate  func(*Deal)
		WantErr *errors.Error
	}{
		"correct executable deal": {
			Mutate:  func(*Deal) {},
			WantErr: nil,
		},
		"correct executed deal": {
			Mutate: func(d *Deal) {
				d.State = DealStateExecuted
				d.Recipients = []weave.Address{bob, alice}
			},
			WantErr: nil,
		},
		"correct cancelled deal": {
			Mutate: func(d *Deal) {
				d.State = DealStateCancelled
			},
			WantErr: nil,
		},
		"missing metadata": {
			Mutate: func(d *Deal) {
				d.Metadata = nil
			},
			WantErr: errors.ErrMetadata,
		},
		"missing organizer": {
			Mutate: func(d *Deal) {
				d.Organizer = nil
			},
			WantErr: errors.ErrEmpty,
		},
		"missing deposit": {
			Mutate: func(d *Deal) {
				d.Deposit = nil
			},
			WantErr: errors.ErrEmpty,
		},
		"zero deposit": {
			Mutate: func(d *Deal) {
				d.Deposit = coin.NewCoinp(0, 0, "IOV")
			},
			WantErr: errors.ErrAmount,
		},
		"no participants": {
			Mutate: func(d *Deal) {
				d.Participants = nil
				d.NumParticipants = 0
			},
			WantErr: errors.ErrModel,
		},
		"duplicated participant": {
			Mutate: func(d *Deal) {
				d.Participants = []weave.Address{alice, alice}
			},
			WantErr: errors.ErrModel,
		},
		"participant count out of sync": {
			Mutate: func(d *Deal) {
				d.NumParticipants = 3
			},
			WantErr: errors.ErrModel,
		},
		"missing start height": {
			Mutate: func(d *Deal) {
				d.StartHeight = 0
			},
			WantErr: errors.ErrModel,
		},
		"executable deal cannot hold recipients": {
			Mutate: func(d *Deal) {
				d.Recipients = []weave.Address{alice, bob}
			},
			WantErr: errors.ErrModel,
		},
		"executed deal must hold one recipient per participant": {
			Mutate: func(d *Deal) {
				d.State = DealStateExecuted
				d.Recipients = []weave.Address{alice}
			},
			WantErr: errors.ErrModel,
		},
		"undefined state": {
			Mutate: func(d *Deal) {
				d.State = DealStateUndefined
			},
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			deal := goodDeal()
			tc.Mutate(&deal)
			if err := deal.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}

func TestDealIndexValidate(t *testing.T) {
	cases := map[string]struct {
		Index   DealIndex
		WantErr *errors.Error
	}{
		"correct empty catalog": {
			Index: DealIndex{
				Metadata: &weave.Metadata{Schema: 1},
			},
			WantErr: nil,
		},
		"correct catalog": {
			Index: DealIndex{
				Metadata: &weave.Metadata{Schema: 1},
				DealIDs:  [][]byte{bytes.Repeat([]byte{1}, DealIDSize)},
			},
			WantErr: nil,
		},
		"missing metadata": {
			Index:   DealIndex{},
			WantErr: errors.ErrMetadata,
		},
		"malformed identifier": {
			Index: DealIndex{
				Metadata: &weave.Metadata{Schema: 1},
				DealIDs:  [][]byte{[]byte("too-short")},
			},
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Index.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}

func TestPoolAccountIsDeterministic(t *testing.T) {
	if !PoolAccount().Equals(PoolAccount()) {
		t.Fatal("pool account address must be stable")
	}
	if err := PoolAccount().Validate(); err != nil {
		t.Fatalf("pool account address is invalid: %s", err)
	}
}
