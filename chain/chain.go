package chain

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack"
)

// Chain is the single owner of an append-only block sequence. All mutation
// goes through Append, which holds the write lock from height assignment to
// the post-append audit; two submitters can never claim the same height.
// Bodies are copied on intake and lookups hand out copies, the stored
// blocks are never exposed directly.
type Chain struct {
	mu     sync.RWMutex
	blocks BlockStore
}

// New initializes a chain over the given store and seeds the genesis block
func New(b BlockStore) (*Chain, error) {
	c := &Chain{blocks: b}
	if err := c.Init(); err != nil {
		return nil, err
	}
	return c, nil
}

// Init seeds the genesis block through the regular append path. Calling it
// again on an initialized chain is a no-op; there is never a second genesis
// block.
func (c *Chain) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.blocks.Length() > 0 {
		return nil
	}
	log.Info("Initializing empty chain")
	body, _ := msgpack.Marshal(genesisMarker{Data: GenesisData})
	_, err := c.append(body)
	return err
}

// Height returns the height of the last block, -1 before initialization
func (c *Chain) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks.Length() - 1
}

// Length returns the length of the whole chain
func (c *Chain) Length() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.blocks.Length()
}

// LastHash returns the hash of the last block in the chain
func (c *Chain) LastHash() Hash {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if last := c.blocks.ByHeight(c.blocks.Length() - 1); last != nil {
		return last.Hash
	}
	return Hash{}
}

// Append seals the body into a new block at the end of the sequence and
// audits the extended chain. On audit failure the block stays appended and
// an *IntegrityError is returned instead of the block.
func (c *Chain) Append(body []byte) (*Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.append(body)
}

// append runs the commit sequence under the already held write lock:
// assign height and time, link to the current last block, seal the hash,
// extend the store, audit everything.
func (c *Chain) append(body []byte) (*Block, error) {
	b := &Block{
		Height: c.blocks.Length(),
		Time:   time.Now().Unix(),
		Body:   append([]byte(nil), body...),
	}
	if last := c.blocks.ByHeight(b.Height - 1); last != nil {
		b.PrevHash = last.Hash
	}
	b.Hash = b.computeHash()
	c.blocks.Append(b)
	if rep := audit(c.blocks.Blocks()); !rep.OK() {
		log.WithField("positions", rep.Errors).Error("Chain integrity compromised after append")
		return nil, &IntegrityError{Report: rep}
	}
	log.WithFields(log.Fields{
		"height": b.Height,
		"hash":   b.Hash.String(),
	}).Debug("Appended block")
	return b.Clone(), nil
}

// BlockByHash retrieves the block with the given hash. The sequence is
// scanned in order and the first match wins; a miss returns nil, never an
// error.
func (c *Chain) BlockByHash(h Hash) *Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b := c.blocks.ByHash(h); b != nil {
		return b.Clone()
	}
	return nil
}

// BlockByHeight retrieves the block at the given height, nil on a miss
func (c *Chain) BlockByHeight(height int) *Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b := c.blocks.ByHeight(height); b != nil {
		return b.Clone()
	}
	return nil
}

// Blocks returns copies of the whole ordered chain
func (c *Chain) Blocks() []*Block {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stored := c.blocks.Blocks()
	bl := make([]*Block, len(stored))
	for i, b := range stored {
		bl[i] = b.Clone()
	}
	return bl
}

// Audit checks the stored sequence for integrity and linkage compliance
func (c *Chain) Audit() Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return audit(c.blocks.Blocks())
}

// Valid runs an audit and reports whether the chain is intact
func (c *Chain) Valid() bool {
	return c.Audit().OK()
}
