package chain

// BlockStore is the interface needed for keeping the block sequence.
// Implementations do not synchronize access; the owning Chain serializes
// every call behind its own lock.
type BlockStore interface {
	Append(*Block)
	ByHash(Hash) *Block
	ByHeight(int) *Block
	Length() int
	Blocks() []*Block
}
