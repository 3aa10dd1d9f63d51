package app

import (
	"github.com/iov-one/salad/x/salad"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	wallet := &cash.Set{
		Metadata: &weave.Metadata{Schema: 1},
		Coins: []*coin.Coin{
			{Whole: 150, Ticker: "IOV"},
		},
	}

	priv := crypto.GenPrivKeyEd25519()
	pub := priv.PublicKey()
	user := &sigs.UserData{
		Metadata: &weave.Metadata{Schema: 1},
		Pubkey:   pub,
		Sequence: 17,
	}

	organizer := pub.Address()
	participants := []weave.Address{
		organizer,
		crypto.GenPrivKeyEd25519().PublicKey().Address(),
		crypto.GenPrivKeyEd25519().PublicKey().Address(),
	}

	deposit := &salad.DepositMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Amount:   coin.NewCoinp(10, 0, "IOV"),
	}
	createDeal := &salad.CreateDealMsg{
		Metadata:     &weave.Metadata{Schema: 1},
		Deposit:      coin.NewCoinp(2, 0, "IOV"),
		Participants: participants,
		Nonce:        1,
	}
	dealID, err := salad.DealID(*createDeal.Deposit, participants, organizer, createDeal.Nonce)
	if err != nil {
		panic(err)
	}
	distribute := &salad.DistributeMsg{
		Metadata:   &weave.Metadata{Schema: 1},
		DealID:     dealID,
		Recipients: participants,
	}

	unsigned := Tx{
		Sum: &Tx_CreateDealMsg{createDeal},
	}
	tx := unsigned
	sig, err := sigs.SignTx(priv, &tx, "test-123", 17)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "wallet", Obj: wallet},
		{Filename: "priv_key", Obj: priv},
		{Filename: "pub_key", Obj: pub},
		{Filename: "user", Obj: user},
		{Filename: "deposit_msg", Obj: deposit},
		{Filename: "create_deal_msg", Obj: createDeal},
		{Filename: "distribute_msg", Obj: distribute},
		{Filename: "unsigned_tx", Obj: &unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
