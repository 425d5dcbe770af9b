package api

import (
	"encoding/hex"

	"github.com/CryptoNari/BDND-01-PrivateBlockchain/chain"
)

type jsonBlock struct {
	Height       int     `json:"height"`
	Time         int64   `json:"time"`
	PrevHash     *string `json:"previousBlockHash"`
	Hash         string  `json:"hash"`
	Body         string  `json:"body"`
	BubbleBabble string  `json:"bubblebabble"`
}

// jsonize converts a block into its REST representation. The genesis block
// renders a null previous hash instead of the zero value.
func jsonize(b *chain.Block) jsonBlock {
	j := jsonBlock{
		Height:       b.Height,
		Time:         b.Time,
		Hash:         b.Hash.String(),
		Body:         hex.EncodeToString(b.Body),
		BubbleBabble: b.Hash.Fingerprint(),
	}
	if !b.PrevHash.IsZero() {
		ph := b.PrevHash.String()
		j.PrevHash = &ph
	}
	return j
}

// decodeHash is a utility function allowing hashes to be passed in hex or
// bubblebabble form
func decodeHash(s string) (chain.Hash, error) {
	h, err := chain.ParseHash(s)
	if err == nil {
		return h, nil
	}
	return chain.ParseFingerprint(s)
}
