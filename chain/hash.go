package chain

import (
	"encoding/hex"
	"errors"

	"github.com/martinlindhe/bubblebabble"
)

const (
	// HashSize of a block hash
	HashSize = 32
)

// Hash identifies a block by its sha256 digest
type Hash [HashSize]byte

// ErrHashFormat is returned when a string cannot be parsed into a Hash
var ErrHashFormat = errors.New("hash must be 64 hexadecimal characters")

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is unset. The genesis block carries a zero
// previous hash, rendered as null at the API boundary.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Slice converts the fixed length hash to a dynamic slice
func (h Hash) Slice() []byte {
	return h[:]
}

// ParseHash decodes the hex representation produced by String
func ParseHash(s string) (Hash, error) {
	h := Hash{}
	if len(s) != hex.EncodedLen(HashSize) {
		return h, ErrHashFormat
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, ErrHashFormat
	}
	copy(h[:], b)
	return h, nil
}

// FromSlice turns a byte slice into a hash
func FromSlice(s []byte) Hash {
	h := Hash{}
	copy(h[:], s)
	return h
}

// Fingerprint renders the hash in the human readable bubblebabble encoding
func (h Hash) Fingerprint() string {
	dst := make([]byte, bubblebabble.EncodedLen(HashSize))
	bubblebabble.Encode(dst, h[:])
	return string(dst)
}

// ParseFingerprint restores a hash from its bubblebabble encoding
func ParseFingerprint(s string) (Hash, error) {
	h := Hash{}
	_, err := bubblebabble.Decode(h[:], []byte(s))
	return h, err
}
