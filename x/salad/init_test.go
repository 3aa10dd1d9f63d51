package salad

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
)

func TestGenesisInitializer(t *testing.T) {
	const genesis = `
	{
		"conf": {
			"salad": {
				"executor": "E94323317C46BDA2268FA3698BAF4F95B893E8C7",
				"fee_collector": "FE5526DE08337DFEF5CF45EF3ED8C577B854DE34",
				"deposit_lock_blocks": 5,
				"deal_interval_blocks": 10,
				"relayer_fee_percent": 2,
				"participation_threshold": 2
			}
		}
	}
	`
	executor, _ := hex.DecodeString("E94323317C46BDA2268FA3698BAF4F95B893E8C7")
	collector, _ := hex.DecodeString("FE5526DE08337DFEF5CF45EF3ED8C577B854DE34")

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "salad")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %s", err)
	}

	conf, err := loadConf(db)
	if err != nil {
		t.Fatalf("cannot load configuration: %s", err)
	}
	if !conf.Executor.Equals(executor) {
		t.Fatalf("unexpected executor: %q", conf.Executor)
	}
	if !conf.FeeCollector.Equals(collector) {
		t.Fatalf("unexpected fee collector: %q", conf.FeeCollector)
	}
	if conf.DepositLockBlocks != 5 {
		t.Fatalf("unexpected deposit lock: %d", conf.DepositLockBlocks)
	}
	if conf.DealIntervalBlocks != 10 {
		t.Fatalf("unexpected deal interval: %d", conf.DealIntervalBlocks)
	}
	if conf.RelayerFeePercent != 2 {
		t.Fatalf("unexpected relayer fee: %d", conf.RelayerFeePercent)
	}
	if conf.ParticipationThreshold != 2 {
		t.Fatalf("unexpected participation threshold: %d", conf.ParticipationThreshold)
	}
}

func TestGenesisInitializerRequiresConfiguration(t *testing.T) {
	var opts weave.Options
	if err := json.Unmarshal([]byte(`{"conf": {}}`), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "salad")
	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %v", err)
	}
}
