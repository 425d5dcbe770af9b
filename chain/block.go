package chain

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/vmihailenco/msgpack"
)

// GenesisData is the marker payload carried by the first block of every chain
const GenesisData = "Genesis Block"

// Block is a single sealed entry of the chain. Every field is assigned
// exactly once, inside Chain.Append; the Hash field is computed over the
// other fields at that moment and never recomputed in place, so any later
// drift is detectable through Valid.
type Block struct {
	Height   int
	Time     int64
	PrevHash Hash
	Body     []byte
	Hash     Hash
}

type genesisMarker struct {
	Data string `msgpack:"data"`
}

// EncodeBody serializes a payload for storage as an opaque block body
func EncodeBody(v interface{}) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Data decodes the opaque body into v
func (b *Block) Data(v interface{}) error {
	return msgpack.Unmarshal(b.Body, v)
}

// computeHash digests the linking fields and the body in a fixed order.
// The sealed Hash field is never part of the digested representation.
func (b *Block) computeHash() Hash {
	d := sha256.New()
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(b.Height))
	d.Write(buf)
	binary.BigEndian.PutUint64(buf, uint64(b.Time))
	d.Write(buf)
	d.Write(b.PrevHash[:])
	d.Write(b.Body)
	return FromSlice(d.Sum(nil))
}

// Valid recomputes the hash from the current field values and reports
// whether it still matches the one sealed at append time
func (b *Block) Valid() bool {
	return b.Hash == b.computeHash()
}

// Clone returns a copy sharing no memory with the stored block
func (b *Block) Clone() *Block {
	c := *b
	c.Body = append([]byte(nil), b.Body...)
	return &c
}
