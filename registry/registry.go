// Package registry implements the public star registry workflow: ownership
// challenges, verified star submission and lookups over the backing chain.
package registry

import (
	"encoding/json"
	"fmt"

	"github.com/CryptoNari/BDND-01-PrivateBlockchain/chain"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/config"
	"github.com/CryptoNari/BDND-01-PrivateBlockchain/wallet"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
)

// Star is the payload a wallet owner registers. The registry treats it as
// opaque and stores it exactly as submitted.
type Star = json.RawMessage

// Record is the decoded body of a registry block: the claiming wallet
// address and the star it registered
type Record struct {
	Owner string `msgpack:"owner" json:"owner"`
	Star  Star   `msgpack:"star" json:"star"`
}

// Service owns one chain and gates every write through wallet verification
type Service struct {
	chain    *chain.Chain
	verifier *wallet.Verifier
	network  string
}

// Status is used for reporting the registry state
type Status struct {
	Height   int    `json:"height"`
	Length   int    `json:"length"`
	Valid    bool   `json:"valid"`
	LastHash string `json:"last_hash"`
	Network  string `json:"network"`
}

// New constructs a service with a freshly initialized in-memory chain
func New(c config.Configuration) (*Service, error) {
	params, err := networkParams(c.Chain.Network)
	if err != nil {
		return nil, err
	}
	ch, err := chain.New(&chain.MemoryStore{})
	if err != nil {
		return nil, err
	}
	log.WithField("network", c.Chain.Network).Info("Star registry ready")
	return &Service{
		chain:    ch,
		verifier: wallet.New(params),
		network:  c.Chain.Network,
	}, nil
}

func networkParams(name string) (*chaincfg.Params, error) {
	switch name {
	case "", "mainnet":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	}
	return nil, fmt.Errorf("unknown network %q", name)
}

// RequestChallenge issues the message a wallet owner must sign before
// submitting a star. Issuing is free, nothing is recorded until the signed
// message comes back through SubmitStar.
func (s *Service) RequestChallenge(address string) string {
	m := s.verifier.Challenge(address)
	log.WithField("address", address).Debug("Issued ownership challenge")
	return m
}

// SubmitStar verifies the ownership claim and appends the star record to the
// chain. Verification and append failures surface unchanged to the caller.
func (s *Service) SubmitStar(address, message, signature string, star Star) (*chain.Block, error) {
	if err := s.verifier.Verify(address, message, signature); err != nil {
		log.WithField("address", address).Warnf("Rejected star submission: %s", err)
		return nil, err
	}
	body, err := chain.EncodeBody(Record{Owner: address, Star: star})
	if err != nil {
		return nil, err
	}
	b, err := s.chain.Append(body)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"address": address,
		"height":  b.Height,
	}).Info("Registered star")
	return b, nil
}

// StarsByWallet returns the records owned by address in ascending height
// order. The genesis block is never a candidate. A block body that does not
// decode aborts the whole query.
func (s *Service) StarsByWallet(address string) ([]Record, error) {
	records := []Record{}
	for _, b := range s.chain.Blocks() {
		if b.Height == 0 {
			continue
		}
		rec := Record{}
		if err := b.Data(&rec); err != nil {
			return nil, fmt.Errorf("decoding block %d: %w", b.Height, err)
		}
		if rec.Owner == address {
			records = append(records, rec)
		}
	}
	return records, nil
}

// Height returns the height of the last block
func (s *Service) Height() int {
	return s.chain.Height()
}

// BlockByHeight retrieves a block copy by height, nil on a miss
func (s *Service) BlockByHeight(height int) *chain.Block {
	return s.chain.BlockByHeight(height)
}

// BlockByHash retrieves a block copy by hash, nil on a miss
func (s *Service) BlockByHash(h chain.Hash) *chain.Block {
	return s.chain.BlockByHash(h)
}

// Audit checks the chain for integrity and linkage compliance
func (s *Service) Audit() chain.Report {
	return s.chain.Audit()
}

// Status reports the current registry state
func (s *Service) Status() Status {
	return Status{
		Height:   s.chain.Height(),
		Length:   s.chain.Length(),
		Valid:    s.chain.Valid(),
		LastHash: s.chain.LastHash().String(),
		Network:  s.network,
	}
}
