package chain

// MemoryStore keeps the block sequence in process memory only. The ledger is
// deliberately volatile: it lives for the lifetime of the process and is
// discarded with it.
type MemoryStore struct {
	raw []*Block
}

// Append adds a block to the end of the raw sequence
func (m *MemoryStore) Append(b *Block) {
	m.raw = append(m.raw, b)
}

// ByHash retrieves a block by its hash. The sequence is scanned in order and
// the first match wins; a miss returns nil.
func (m *MemoryStore) ByHash(hash Hash) *Block {
	for i := range m.raw {
		if m.raw[i].Hash == hash {
			return m.raw[i]
		}
	}
	return nil
}

// ByHeight retrieves a block by its height, nil when out of range
func (m *MemoryStore) ByHeight(height int) *Block {
	if height < 0 || height >= len(m.raw) {
		return nil
	}
	return m.raw[height]
}

// Length returns the number of stored blocks
func (m *MemoryStore) Length() int {
	return len(m.raw)
}

// Blocks returns the ordered sequence. The slice is a snapshot but the
// elements are the stored blocks themselves.
func (m *MemoryStore) Blocks() []*Block {
	bl := make([]*Block, len(m.raw))
	copy(bl, m.raw)
	return bl
}
