package salad

import (
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Validate ensures the configuration is valid. An unset executor is
// allowed and means no deal can be distributed.
func (c *Configuration) Validate() error {
	if len(c.Executor) != 0 {
		if err := c.Executor.Validate(); err != nil {
			return errors.Wrap(err, "executor address")
		}
	}
	if len(c.FeeCollector) != 0 {
		if err := c.FeeCollector.Validate(); err != nil {
			return errors.Wrap(err, "fee collector address")
		}
	}
	if c.DepositLockBlocks < 0 {
		return errors.Wrap(errors.ErrState, "deposit lock blocks cannot be negative")
	}
	if c.DealIntervalBlocks < 0 {
		return errors.Wrap(errors.ErrState, "deal interval blocks cannot be negative")
	}
	if c.RelayerFeePercent > 99 {
		return errors.Wrap(errors.ErrState, "relayer fee percent must be below 100")
	}
	if c.RelayerFeePercent > 0 && len(c.FeeCollector) == 0 {
		return errors.Wrap(errors.ErrState, "relayer fee requires a fee collector")
	}
	if c.ParticipationThreshold < 0 {
		return errors.Wrap(errors.ErrState, "participation threshold cannot be negative")
	}
	return nil
}

func loadConf(db gconf.Store) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "salad", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
