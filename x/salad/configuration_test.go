package salad

import (
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
)

func TestConfigurationValidate(t *testing.T) {
	var (
		executor  = weavetest.NewCondition().Address()
		collector = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		Conf    Configuration
		WantErr *errors.Error
	}{
		"correct full configuration": {
			Conf: Configuration{
				Metadata:               &weave.Metadata{Schema: 1},
				Executor:               executor,
				FeeCollector:           collector,
				DepositLockBlocks:      5,
				DealIntervalBlocks:     10,
				RelayerFeePercent:      2,
				ParticipationThreshold: 2,
			},
			WantErr: nil,
		},
		"executor is optional": {
			Conf:    Configuration{},
			WantErr: nil,
		},
		"invalid executor address": {
			Conf: Configuration{
				Executor: []byte("x"),
			},
			WantErr: errors.ErrInput,
		},
		"invalid fee collector address": {
			Conf: Configuration{
				FeeCollector: []byte("x"),
			},
			WantErr: errors.ErrInput,
		},
		"negative deposit lock": {
			Conf: Configuration{
				DepositLockBlocks: -1,
			},
			WantErr: errors.ErrState,
		},
		"negative deal interval": {
			Conf: Configuration{
				DealIntervalBlocks: -1,
			},
			WantErr: errors.ErrState,
		},
		"fee percent too high": {
			Conf: Configuration{
				FeeCollector:      collector,
				RelayerFeePercent: 100,
			},
			WantErr: errors.ErrState,
		},
		"fee requires a collector": {
			Conf: Configuration{
				RelayerFeePercent: 2,
			},
			WantErr: errors.ErrState,
		},
		"negative participation threshold": {
			Conf: Configuration{
				ParticipationThreshold: -1,
			},
			WantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.Conf.Validate(); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %s", err)
			}
		})
	}
}
