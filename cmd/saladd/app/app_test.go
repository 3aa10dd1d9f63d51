package app_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/iov-one/weave"
	weaveApp "github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/salad/cmd/saladd/app"
	"github.com/iov-one/salad/x/salad"
)

func TestApp(t *testing.T) {
	const chainID = "test-net-22"

	alice := crypto.GenPrivKeyEd25519()
	aliceAddr := alice.PublicKey().Address()
	bob := crypto.GenPrivKeyEd25519()
	bobAddr := bob.PublicKey().Address()
	executor := crypto.GenPrivKeyEd25519()
	executorAddr := executor.PublicKey().Address()
	collector := crypto.GenPrivKeyEd25519().PublicKey().Address()

	myApp := newTestApp(t, chainID, aliceAddr, bobAddr, executorAddr, collector)

	// the genesis accounts must be funded
	queryWallet(t, myApp, aliceAddr, coin.Coins{coin.NewCoinp(50, 0, "IOV")})
	queryWallet(t, myApp, bobAddr, coin.Coins{coin.NewCoinp(50, 0, "IOV")})

	// both participants move a stake into the pool
	signAndCommit(t, myApp, 2, &app.Tx{
		Sum: &app.Tx_DepositMsg{DepositMsg: &salad.DepositMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Amount:   coin.NewCoinp(5, 0, "IOV"),
		}},
	}, alice, 0, chainID)
	signAndCommit(t, myApp, 3, &app.Tx{
		Sum: &app.Tx_DepositMsg{DepositMsg: &salad.DepositMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Amount:   coin.NewCoinp(5, 0, "IOV"),
		}},
	}, bob, 0, chainID)

	queryWallet(t, myApp, aliceAddr, coin.Coins{coin.NewCoinp(45, 0, "IOV")})
	queryWallet(t, myApp, salad.PoolAccount(), coin.Coins{coin.NewCoinp(10, 0, "IOV")})

	var balance salad.Balance
	queryOne(t, myApp, "/balances", aliceAddr, &balance)
	assert.Equal(t, coin.NewCoinp(5, 0, "IOV"), balance.Amount)
	assert.Equal(t, int64(2), balance.LastDepositHeight)

	// the organizer registers a deal backed by both balances
	dres := signAndCommit(t, myApp, 4, &app.Tx{
		Sum: &app.Tx_CreateDealMsg{CreateDealMsg: &salad.CreateDealMsg{
			Metadata:     &weave.Metadata{Schema: 1},
			Deposit:      coin.NewCoinp(2, 0, "IOV"),
			Participants: []weave.Address{aliceAddr, bobAddr},
			Nonce:        1,
		}},
	}, alice, 1, chainID)

	dealID, err := salad.DealID(coin.NewCoin(2, 0, "IOV"), []weave.Address{aliceAddr, bobAddr}, aliceAddr, 1)
	assert.Nil(t, err)
	assert.Equal(t, dealID, dres.Data)

	var deal salad.Deal
	queryOne(t, myApp, "/deals", dealID, &deal)
	assert.Equal(t, salad.DealStateExecutable, deal.State)
	assert.Equal(t, int64(4), deal.StartHeight)
	assert.Equal(t, int64(2), deal.NumParticipants)
	assert.Equal(t, aliceAddr, deal.Organizer)

	var index salad.DealIndex
	queryOne(t, myApp, "/dealindex", []byte("all"), &index)
	assert.Equal(t, [][]byte{dealID}, index.DealIDs)

	// the executor settles the deal to two fresh recipients
	rcpt1 := crypto.GenPrivKeyEd25519().PublicKey().Address()
	rcpt2 := crypto.GenPrivKeyEd25519().PublicKey().Address()
	signAndCommit(t, myApp, 5, &app.Tx{
		Sum: &app.Tx_DistributeMsg{DistributeMsg: &salad.DistributeMsg{
			Metadata:   &weave.Metadata{Schema: 1},
			DealID:     dealID,
			Recipients: []weave.Address{rcpt1, rcpt2},
		}},
	}, executor, 0, chainID)

	// every recipient gets the deposit minus the 2% relayer fee
	queryWallet(t, myApp, rcpt1, coin.Coins{coin.NewCoinp(1, 960000000, "IOV")})
	queryWallet(t, myApp, rcpt2, coin.Coins{coin.NewCoinp(1, 960000000, "IOV")})
	queryWallet(t, myApp, collector, coin.Coins{coin.NewCoinp(0, 80000000, "IOV")})

	queryOne(t, myApp, "/deals", dealID, &deal)
	assert.Equal(t, salad.DealStateExecuted, deal.State)
	assert.Equal(t, []weave.Address{rcpt1, rcpt2}, deal.Recipients)

	// the ledger balance is not consumed by the settlement and can be
	// withdrawn once the deposit lock expired
	signAndCommit(t, myApp, 6, &app.Tx{
		Sum: &app.Tx_WithdrawMsg{WithdrawMsg: &salad.WithdrawMsg{
			Metadata: &weave.Metadata{Schema: 1},
		}},
	}, bob, 1, chainID)

	queryWallet(t, myApp, bobAddr, coin.Coins{coin.NewCoinp(50, 0, "IOV")})
	// Unmarshal merges into the previous query result, start clean.
	balance = salad.Balance{}
	queryOne(t, myApp, "/balances", bobAddr, &balance)
	assert.Equal(t, coin.NewCoinp(0, 0, "IOV"), balance.Amount)

	// plain cash transfers are routed as well
	sres := signAndCommit(t, myApp, 7, &app.Tx{
		Sum: &app.Tx_SendMsg{SendMsg: &cash.SendMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      aliceAddr,
			Destination: bobAddr,
			Amount:      coin.NewCoinp(3, 0, "IOV"),
			Memo:        "Have a great trip!",
		}},
	}, alice, 2, chainID)
	queryWallet(t, myApp, bobAddr, coin.Coins{coin.NewCoinp(53, 0, "IOV")})

	// the key tagger reports the two wallets and the signer sequence
	assert.Equal(t, 3, len(sres.Tags))
	hexCash := []byte("636173683A")
	hexSigs := []byte("736967733A")
	keys := [][]byte{
		append(hexCash, []byte(aliceAddr.String())...),
		append(hexCash, []byte(bobAddr.String())...),
		append(hexSigs, []byte(aliceAddr.String())...),
	}
	if bytes.Compare(bobAddr, aliceAddr) < 0 {
		keys[0], keys[1] = keys[1], keys[0]
	}
	for i := range keys {
		assert.Equal(t, keys[i], sres.Tags[i].Key)
		assert.Equal(t, []byte("s"), sres.Tags[i].Value)
	}
}

// newTestApp builds a memory backed application and commits the genesis
// block with two funded accounts and the salad configuration.
func newTestApp(t *testing.T, chainID string, alice, bob, executor, collector weave.Address) weaveApp.BaseApp {
	t.Helper()

	abciApp, err := app.GenerateApp(&server.Options{
		MinFee: coin.Coin{},
		Logger: log.NewNopLogger(),
		Home:   "",
	})
	assert.Nil(t, err)
	myApp := abciApp.(weaveApp.BaseApp)

	appState := fmt.Sprintf(`{
		"cash": [
			{"address": "%s", "coins": [{"whole": 50, "ticker": "IOV"}]},
			{"address": "%s", "coins": [{"whole": 50, "ticker": "IOV"}]}
		],
		"conf": {
			"cash": {
				"collector_address": "3b11c732b8fc1f09beb34031302fe2ab347c5c14",
				"minimal_fee": {}
			},
			"migration": {"admin": "%s"},
			"salad": {
				"executor": "%s",
				"fee_collector": "%s",
				"deposit_lock_blocks": 1,
				"deal_interval_blocks": 1,
				"relayer_fee_percent": 2,
				"participation_threshold": 2
			}
		},
		"initialize_schema": [
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "salad", "ver": 1}
		]
	}`, alice, bob, alice, executor, collector)

	myApp.InitChain(abci.RequestInitChain{AppStateBytes: []byte(appState), ChainId: chainID})
	header := abci.Header{Height: 1, Time: time.Now()}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})
	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return myApp
}

// signAndCommit signs the transaction and submits it in its own block.
// It fails the test unless both check and deliver pass.
func signAndCommit(t *testing.T, myApp weaveApp.BaseApp, height int64, tx *app.Tx, signer *crypto.PrivateKey, nonce int64, chainID string) abci.ResponseDeliverTx {
	t.Helper()

	sig, err := sigs.SignTx(signer, tx, chainID, nonce)
	assert.Nil(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	txBytes, err := tx.Marshal()
	assert.Nil(t, err)
	assert.Equal(t, true, len(txBytes) != 0)

	header := abci.Header{Height: height, Time: time.Now()}
	myApp.BeginBlock(abci.RequestBeginBlock{Header: header})

	chres := myApp.CheckTx(txBytes)
	assert.Equal(t, uint32(0), chres.Code)
	dres := myApp.DeliverTx(txBytes)
	assert.Equal(t, uint32(0), dres.Code)

	myApp.EndBlock(abci.RequestEndBlock{})
	cres := myApp.Commit()
	assert.Equal(t, true, len(cres.Data) != 0)
	return dres
}

// queryWallet loads a cash wallet and compares the held coins.
func queryWallet(t *testing.T, myApp weaveApp.BaseApp, addr weave.Address, want []*coin.Coin) {
	t.Helper()
	var set cash.Set
	queryOne(t, myApp, "/wallets", addr, &set)
	assert.Equal(t, want, set.Coins)
}

// queryOne queries the given path and unpacks a single result into obj.
func queryOne(t *testing.T, myApp weaveApp.BaseApp, path string, data []byte, obj weave.Persistent) {
	t.Helper()
	qres := myApp.Query(abci.RequestQuery{Path: path, Data: data})
	assert.Equal(t, uint32(0), qres.Code)
	assert.Equal(t, true, len(qres.Value) != 0)
	if err := weaveApp.UnmarshalOneResult(qres.Value, obj); err != nil {
		t.Fatalf("cannot unmarshal query result: %s", err)
	}
}
