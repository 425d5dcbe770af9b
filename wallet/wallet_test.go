package wallet

import (
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWallet(t *testing.T) (*btcec.PrivateKey, string) {
	priv, err := btcec.NewPrivateKey()
	require.Nil(t, err)
	pkHash := btcutil.Hash160(priv.PubKey().SerializeCompressed())
	addr, err := btcutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	require.Nil(t, err)
	return priv, addr.EncodeAddress()
}

func TestChallenge(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()
	v := New(&chaincfg.MainNetParams)
	assert.Equal(t, "1BoatSLRHtKNngkdXEeobR76b53LETtpyT:1700000000:starRegistry", v.Challenge("1BoatSLRHtKNngkdXEeobR76b53LETtpyT"))
}

func TestVerifyMessage(t *testing.T) {
	priv, addr := testWallet(t)
	sig := SignMessage(priv, "hello registry")

	ok, err := VerifyMessage("hello registry", addr, sig, &chaincfg.MainNetParams)
	assert.Nil(t, err)
	assert.True(t, ok)

	ok, err = VerifyMessage("goodbye registry", addr, sig, &chaincfg.MainNetParams)
	assert.Nil(t, err)
	assert.False(t, ok)
}

func TestVerify(t *testing.T) {
	priv, addr := testWallet(t)
	v := New(&chaincfg.MainNetParams)
	message := v.Challenge(addr)
	assert.Nil(t, v.Verify(addr, message, SignMessage(priv, message)))
}

func TestVerifySignerMismatch(t *testing.T) {
	_, addr := testWallet(t)
	other, _ := testWallet(t)
	v := New(&chaincfg.MainNetParams)
	message := v.Challenge(addr)
	assert.Equal(t, ErrSignatureInvalid, v.Verify(addr, message, SignMessage(other, message)))
}

func TestVerifyGarbageSignature(t *testing.T) {
	_, addr := testWallet(t)
	v := New(&chaincfg.MainNetParams)
	message := v.Challenge(addr)
	assert.ErrorIs(t, v.Verify(addr, message, "dGhpcyBpcyBub3QgYSBzaWduYXR1cmU="), ErrSignatureInvalid)
	assert.ErrorIs(t, v.Verify(addr, message, "!!!"), ErrSignatureInvalid)
}

func TestVerifyExpiry(t *testing.T) {
	priv, addr := testWallet(t)
	v := New(&chaincfg.MainNetParams)

	issued := time.Unix(1700000000, 0)
	now = func() time.Time { return issued }
	defer func() { now = time.Now }()

	message := v.Challenge(addr)
	sig := SignMessage(priv, message)

	now = func() time.Time { return issued.Add(299 * time.Second) }
	assert.Nil(t, v.Verify(addr, message, sig))

	now = func() time.Time { return issued.Add(300 * time.Second) }
	assert.Equal(t, ErrChallengeExpired, v.Verify(addr, message, sig))

	now = func() time.Time { return issued.Add(time.Hour) }
	assert.Equal(t, ErrChallengeExpired, v.Verify(addr, message, sig))
}

func TestVerifyMalformedMessage(t *testing.T) {
	priv, addr := testWallet(t)
	v := New(&chaincfg.MainNetParams)
	for _, message := range []string{
		"no delimiters at all",
		addr + ":notanumber:starRegistry",
		addr + ":",
	} {
		err := v.Verify(addr, message, SignMessage(priv, message))
		assert.Equal(t, ErrChallengeMalformed, err, "message %q", message)
	}
}
