package booking

import (
	"crypto/rand"
	"math/big"
)

const (
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 6
)

// NewReferenceCode returns a fixed-length uppercase alphanumeric code.
// Codes are not unique by themselves; admission regenerates until the
// store reports no existing booking with the same code, and a unique
// index on reference_code backs that loop up.
func NewReferenceCode() string {
	buf := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceAlphabet)))

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken; there is no useful recovery at this level.
			panic(err)
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}

	return string(buf)
}
