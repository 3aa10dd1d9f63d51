package salad

import (
	"encoding/binary"
	"hash"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"golang.org/x/crypto/sha3"
)

// DealIDSize is the length of a deal identifier in bytes.
const DealIDSize = 32

// DealID derives the identifier of a deal from its public parameters. It
// is a pure function of its inputs so any party, on chain or off, can
// compute the identifier independently.
//
// Every field is written with an 8 byte big endian length prefix and the
// result is hashed with Keccak-256, the same convention the secure
// computation network uses when it signs its messages. Distinct input
// combinations therefore never serialize to the same byte string, and
// changing any single input, including the order of participants,
// changes the identifier.
func DealID(deposit coin.Coin, participants []weave.Address, organizer weave.Address, nonce uint64) ([]byte, error) {
	if err := deposit.Validate(); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}
	if !deposit.IsPositive() {
		return nil, errors.Wrap(errors.ErrAmount, "deposit must be positive")
	}
	if len(participants) == 0 {
		return nil, errors.Wrap(errors.ErrEmpty, "participants")
	}

	h := sha3.NewLegacyKeccak256()

	// The amount is 8 bytes whole, 8 bytes fractional, then the ticker.
	amount := make([]byte, 16, 16+len(deposit.Ticker))
	binary.BigEndian.PutUint64(amount, uint64(deposit.Whole))
	binary.BigEndian.PutUint64(amount[8:], uint64(deposit.Fractional))
	amount = append(amount, deposit.Ticker...)
	hashField(h, amount)

	hashUint64(h, uint64(len(participants)))
	for i, p := range participants {
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "participant #%d", i)
		}
		hashField(h, p)
	}

	if err := organizer.Validate(); err != nil {
		return nil, errors.Wrap(err, "organizer")
	}
	hashField(h, organizer)

	hashUint64(h, nonce)

	return h.Sum(nil), nil
}

func hashField(h hash.Hash, raw []byte) {
	hashUint64(h, uint64(len(raw)))
	h.Write(raw)
}

func hashUint64(h hash.Hash, n uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	h.Write(b[:])
}

// validDealID returns an error unless given a well formed deal
// identifier. It does not check for existence.
func validDealID(id []byte) error {
	if len(id) != DealIDSize {
		return errors.Wrapf(errors.ErrInput, "deal id must be %d bytes", DealIDSize)
	}
	return nil
}
