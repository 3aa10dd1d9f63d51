package app

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenInitOptions(t *testing.T) {
	cases := []struct {
		args []string
		cur  string
		addr string
	}{
		{nil, "IOV", ""},
		{[]string{"ONE"}, "ONE", ""},
		{[]string{"TWO", "1234567890"}, "TWO", "1234567890"},
		{[]string{"THR", "5238975983695F", "FOO"}, "THR", "5238975983695F"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			assert.Nil(t, err)

			cc := fmt.Sprintf(`"ticker":"%s"`, tc.cur)
			assert.Equal(t, true, strings.Contains(string(val), cc))

			ca := fmt.Sprintf(`"address":"%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is an address, not what it is
				ca = ca[:len(ca)-1]
			}
			assert.Equal(t, true, strings.Contains(string(val), ca))

			// the account is wired as the salad executor
			ce := fmt.Sprintf(`"executor":"%s"`, tc.addr)
			if tc.addr == "" {
				ce = ce[:len(ce)-1]
			}
			assert.Equal(t, true, strings.Contains(string(val), ce))
			assert.Equal(t, true, strings.Contains(string(val), `"deposit_lock_blocks":10`))
			assert.Equal(t, true, strings.Contains(string(val), `"deal_interval_blocks":20`))
			assert.Equal(t, true, strings.Contains(string(val), `"relayer_fee_percent":2`))
		})
	}
}

func TestGenInitOptionsRejectsBrokenAddress(t *testing.T) {
	// the address must be hex so it can configure the executor
	if _, err := GenInitOptions([]string{"IOV", "not-an-address"}); err == nil {
		t.Fatal("expected an address decoding error")
	}
}
