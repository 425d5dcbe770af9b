package wallet

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// messageMagic prefixes every digest so a challenge signature can never
// double as a transaction signature
const messageMagic = "Bitcoin Signed Message:\n"

func messageHash(message string) []byte {
	var buf bytes.Buffer
	_ = wire.WriteVarString(&buf, 0, messageMagic)
	_ = wire.WriteVarString(&buf, 0, message)
	return chainhash.DoubleHashB(buf.Bytes())
}

// SignMessage produces the base64 compact signature a wallet emits for
// message. The registry itself only ever verifies; this is the counterpart
// used by tests and tooling.
func SignMessage(priv *btcec.PrivateKey, message string) string {
	sig := ecdsa.SignCompact(priv, messageHash(message), true)
	return base64.StdEncoding.EncodeToString(sig)
}

// VerifyMessage checks that signature was produced over exactly message by
// the key behind the pay-to-pubkey-hash address. It reports false for a
// well-formed signature made by a different key, and an error for signature
// material that cannot be decoded at all.
func VerifyMessage(message, address, signature string, params *chaincfg.Params) (bool, error) {
	sig, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false, fmt.Errorf("malformed signature: %w", err)
	}
	pk, wasCompressed, err := ecdsa.RecoverCompact(sig, messageHash(message))
	if err != nil {
		return false, fmt.Errorf("signature recovery: %w", err)
	}
	serialized := pk.SerializeUncompressed()
	if wasCompressed {
		serialized = pk.SerializeCompressed()
	}
	derived, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(serialized), params)
	if err != nil {
		return false, err
	}
	return derived.EncodeAddress() == address, nil
}
