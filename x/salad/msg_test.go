package salad

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestDepositMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &DepositMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Participant: weavetest.NewCondition().Address(),
				Amount:      coin.NewCoinp(5, 0, "IOV"),
			},
			Want: nil,
		},
		"participant is optional": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(5, 0, "IOV"),
			},
			Want: nil,
		},
		"missing metadata": {
			Msg: &DepositMsg{
				Amount: coin.NewCoinp(5, 0, "IOV"),
			},
			Want: errors.ErrMetadata,
		},
		"invalid participant address": {
			Msg: &DepositMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Participant: []byte("x"),
				Amount:      coin.NewCoinp(5, 0, "IOV"),
			},
			Want: errors.ErrInput,
		},
		"missing amount": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Want: errors.ErrAmount,
		},
		"zero amount": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(0, 0, "IOV"),
			},
			Want: errors.ErrAmount,
		},
		"negative amount": {
			Msg: &DepositMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Amount:   coin.NewCoinp(-5, 0, "IOV"),
			},
			Want: errors.ErrAmount,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestWithdrawMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &WithdrawMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Participant: weavetest.NewCondition().Address(),
			},
			Want: nil,
		},
		"participant is optional": {
			Msg: &WithdrawMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Want: nil,
		},
		"missing metadata": {
			Msg:  &WithdrawMsg{},
			Want: errors.ErrMetadata,
		},
		"invalid participant address": {
			Msg: &WithdrawMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Participant: []byte("x"),
			},
			Want: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestCreateDealMsgValidate(t *testing.T) {
	var (
		alice = weavetest.NewCondition().Address()
		bob   = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &CreateDealMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Deposit:      coin.NewCoinp(5, 0, "IOV"),
				Participants: []weave.Address{alice, bob},
				Nonce:        1,
			},
			Want: nil,
		},
		"missing metadata": {
			Msg: &CreateDealMsg{
				Deposit:      coin.NewCoinp(5, 0, "IOV"),
				Participants: []weave.Address{alice, bob},
			},
			Want: errors.ErrMetadata,
		},
		"missing deposit": {
			Msg: &CreateDealMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Participants: []weave.Address{alice, bob},
			},
			Want: errors.ErrAmount,
		},
		"zero deposit": {
			Msg: &CreateDealMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Deposit:      coin.NewCoinp(0, 0, "IOV"),
				Participants: []weave.Address{alice, bob},
			},
			Want: errors.ErrAmount,
		},
		"no participants": {
			Msg: &CreateDealMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Deposit:  coin.NewCoinp(5, 0, "IOV"),
			},
			Want: errors.ErrMsg,
		},
		"duplicated participant": {
			Msg: &CreateDealMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Deposit:      coin.NewCoinp(5, 0, "IOV"),
				Participants: []weave.Address{alice, alice},
			},
			Want: errors.ErrMsg,
		},
		"invalid participant address": {
			Msg: &CreateDealMsg{
				Metadata:     &weave.Metadata{Schema: 1},
				Deposit:      coin.NewCoinp(5, 0, "IOV"),
				Participants: []weave.Address{[]byte("x")},
			},
			Want: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestCancelDealMsgValidate(t *testing.T) {
	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &CancelDealMsg{
				Metadata: &weave.Metadata{Schema: 1},
				DealID:   bytes.Repeat([]byte{1}, DealIDSize),
			},
			Want: nil,
		},
		"missing metadata": {
			Msg: &CancelDealMsg{
				DealID: bytes.Repeat([]byte{1}, DealIDSize),
			},
			Want: errors.ErrMetadata,
		},
		"malformed deal id": {
			Msg: &CancelDealMsg{
				Metadata: &weave.Metadata{Schema: 1},
				DealID:   []byte("too-short"),
			},
			Want: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}

func TestDistributeMsgValidate(t *testing.T) {
	var (
		alice = weavetest.NewCondition().Address()
		bob   = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Msg  weave.Msg
		Want *errors.Error
	}{
		"valid message": {
			Msg: &DistributeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				DealID:     bytes.Repeat([]byte{1}, DealIDSize),
				Recipients: []weave.Address{alice, bob},
			},
			Want: nil,
		},
		"repeated recipients are allowed": {
			Msg: &DistributeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				DealID:     bytes.Repeat([]byte{1}, DealIDSize),
				Recipients: []weave.Address{alice, alice},
			},
			Want: nil,
		},
		"missing metadata": {
			Msg: &DistributeMsg{
				DealID:     bytes.Repeat([]byte{1}, DealIDSize),
				Recipients: []weave.Address{alice},
			},
			Want: errors.ErrMetadata,
		},
		"malformed deal id": {
			Msg: &DistributeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				DealID:     []byte("too-short"),
				Recipients: []weave.Address{alice},
			},
			Want: errors.ErrInput,
		},
		"no recipients": {
			Msg: &DistributeMsg{
				Metadata: &weave.Metadata{Schema: 1},
				DealID:   bytes.Repeat([]byte{1}, DealIDSize),
			},
			Want: errors.ErrEmpty,
		},
		"invalid recipient address": {
			Msg: &DistributeMsg{
				Metadata:   &weave.Metadata{Schema: 1},
				DealID:     bytes.Repeat([]byte{1}, DealIDSize),
				Recipients: []weave.Address{[]byte("x")},
			},
			Want: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Msg.Validate(); !tc.Want.Is(err) {
				t.Fatal(err)
			}
		})
	}
}
