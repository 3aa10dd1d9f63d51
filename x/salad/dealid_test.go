package salad

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestDealIDDeterminism(t *testing.T) {
	deposit := coin.NewCoin(5, 0, "IOV")
	participants := []weave.Address{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	organizer := weavetest.NewCondition().Address()

	first, err := DealID(deposit, participants, organizer, 1)
	if err != nil {
		t.Fatalf("cannot derive deal id: %s", err)
	}
	if len(first) != DealIDSize {
		t.Fatalf("want a %d byte identifier, got %d", DealIDSize, len(first))
	}
	second, err := DealID(deposit, participants, organizer, 1)
	if err != nil {
		t.Fatalf("cannot derive deal id: %s", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("the same input must always derive the same deal id")
	}
}

func TestDealIDSensitivity(t *testing.T) {
	var (
		alice     = weavetest.NewCondition().Address()
		bob       = weavetest.NewCondition().Address()
		organizer = weavetest.NewCondition().Address()
		other     = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		deposit      coin.Coin
		participants []weave.Address
		organizer    weave.Address
		nonce        uint64
	}{
		"base": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice, bob},
			organizer:    organizer,
			nonce:        1,
		},
		"different whole amount": {
			deposit:      coin.NewCoin(6, 0, "IOV"),
			participants: []weave.Address{alice, bob},
			organizer:    organizer,
			nonce:        1,
		},
		"different fractional amount": {
			deposit:      coin.NewCoin(5, 1, "IOV"),
			participants: []weave.Address{alice, bob},
			organizer:    organizer,
			nonce:        1,
		},
		"different ticker": {
			deposit:      coin.NewCoin(5, 0, "BTC"),
			participants: []weave.Address{alice, bob},
			organizer:    organizer,
			nonce:        1,
		},
		"different participant order": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{bob, alice},
			organizer:    organizer,
			nonce:        1,
		},
		"different participant set": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice, other},
			organizer:    organizer,
			nonce:        1,
		},
		"fewer participants": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice},
			organizer:    organizer,
			nonce:        1,
		},
		"different organizer": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice, bob},
			organizer:    other,
			nonce:        1,
		},
		"different nonce": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice, bob},
			organizer:    organizer,
			nonce:        2,
		},
	}

	seen := make(map[string]string, len(cases))
	for testName, tc := range cases {
		id, err := DealID(tc.deposit, tc.participants, tc.organizer, tc.nonce)
		if err != nil {
			t.Fatalf("%s: cannot derive deal id: %s", testName, err)
		}
		key := hex.EncodeToString(id)
		if clash, ok := seen[key]; ok {
			t.Fatalf("%q and %q derive the same deal id", testName, clash)
		}
		seen[key] = testName
	}
}

func TestDealIDValidation(t *testing.T) {
	var (
		alice     = weavetest.NewCondition().Address()
		organizer = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		deposit      coin.Coin
		participants []weave.Address
		organizer    weave.Address
		nonce        uint64
		wantErr      *errors.Error
	}{
		"valid input": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice},
			organizer:    organizer,
			wantErr:      nil,
		},
		"zero deposit": {
			deposit:      coin.NewCoin(0, 0, "IOV"),
			participants: []weave.Address{alice},
			organizer:    organizer,
			wantErr:      errors.ErrAmount,
		},
		"negative deposit": {
			deposit:      coin.NewCoin(-5, 0, "IOV"),
			participants: []weave.Address{alice},
			organizer:    organizer,
			wantErr:      errors.ErrAmount,
		},
		"invalid ticker": {
			deposit:      coin.NewCoin(5, 0, "this-is-not-a-ticker"),
			participants: []weave.Address{alice},
			organizer:    organizer,
			wantErr:      errors.ErrCurrency,
		},
		"no participants": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: nil,
			organizer:    organizer,
			wantErr:      errors.ErrEmpty,
		},
		"invalid participant address": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{[]byte("too-short")},
			organizer:    organizer,
			wantErr:      errors.ErrInput,
		},
		"missing organizer": {
			deposit:      coin.NewCoin(5, 0, "IOV"),
			participants: []weave.Address{alice},
			organizer:    nil,
			wantErr:      errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if _, err := DealID(tc.deposit, tc.participants, tc.organizer, tc.nonce); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}
