package app

import (
	"bytes"
	"testing"

	"github.com/iov-one/salad/x/salad"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxGetMsg(t *testing.T) {
	var (
		alice  = weavetest.NewCondition().Address()
		bob    = weavetest.NewCondition().Address()
		dealID = bytes.Repeat([]byte{1}, salad.DealIDSize)
	)

	send := &cash.SendMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      alice,
		Destination: bob,
		Amount:      coin.NewCoinp(1, 0, "IOV"),
	}
	deposit := &salad.DepositMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Participant: alice,
		Amount:      coin.NewCoinp(5, 0, "IOV"),
	}
	withdraw := &salad.WithdrawMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Participant: alice,
	}
	createDeal := &salad.CreateDealMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Deposit:      coin.NewCoinp(2, 0, "IOV"),
		Participants: []weave.Address{alice, bob},
		Nonce:        1,
	}
	cancelDeal := &salad.CancelDealMsg{
		Metadata: &weave.Metadata{Schema: 1},
		DealID:   dealID,
	}
	distribute := &salad.DistributeMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		DealID:     dealID,
		Recipients: []weave.Address{alice, bob},
	}
	applyDiff := &validators.ApplyDiffMsg{
		Metadata: &weave.Metadata{Schema: 1},
	}

	cases := []struct {
		sum  isTx_Sum
		want weave.Msg
	}{
		{&Tx_SendMsg{send}, send},
		{&Tx_DepositMsg{deposit}, deposit},
		{&Tx_WithdrawMsg{withdraw}, withdraw},
		{&Tx_CreateDealMsg{createDeal}, createDeal},
		{&Tx_CancelDealMsg{cancelDeal}, cancelDeal},
		{&Tx_DistributeMsg{distribute}, distribute},
		{&Tx_ApplyDiffMsg{applyDiff}, applyDiff},
	}

	for i, tc := range cases {
		tx := &Tx{Sum: tc.sum}
		got, err := tx.GetMsg()
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.want, got, "case %d", i)
	}
}

func TestTxGetMsgRequiresContent(t *testing.T) {
	var tx Tx
	msg, err := tx.GetMsg()
	assert.Nil(t, msg)
	assert.True(t, errors.ErrInput.Is(err), "%+v", err)
}

func TestTxSignBytesIgnoreSignatures(t *testing.T) {
	var (
		alice = weavetest.NewCondition().Address()
		bob   = weavetest.NewCondition().Address()
	)

	send := &cash.SendMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Source:      alice,
		Destination: bob,
		Amount:      coin.NewCoinp(1, 0, "IOV"),
		Memo:        "tip",
	}
	tx := &Tx{Sum: &Tx_SendMsg{send}}
	signed := &Tx{
		Sum:        &Tx_SendMsg{send},
		Signatures: []*sigs.StdSignature{{Sequence: 17}},
	}

	raw, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	// The sign bytes must come from the transaction content alone,
	// otherwise every signature would invalidate all previous ones.
	signedRaw, err := signed.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, raw, signedRaw)

	// Computing the sign bytes must not modify the transaction.
	require.Len(t, signed.Signatures, 1)
	assert.Equal(t, int64(17), signed.Signatures[0].Sequence)

	other := &Tx{Sum: &Tx_DepositMsg{&salad.DepositMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Amount:   coin.NewCoinp(1, 0, "IOV"),
	}}}
	otherRaw, err := other.GetSignBytes()
	require.NoError(t, err)
	assert.NotEqual(t, raw, otherRaw)
}
