// Package wallet gates registry writes. It issues time-windowed challenge
// messages and verifies that the owner of a bitcoin address signed them.
package wallet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
)

// ChallengeWindow is how long an issued challenge stays signable. A message
// aged exactly the full window already counts as expired.
const ChallengeWindow = 300 * time.Second

// challengeSuffix tags every challenge message issued by the registry
const challengeSuffix = "starRegistry"

var (
	// ErrChallengeExpired is returned when the signed challenge is older than the window
	ErrChallengeExpired = errors.New("Ownership challenge expired, request a new one")
	// ErrChallengeMalformed is returned when the message carries no parseable timestamp
	ErrChallengeMalformed = errors.New("Ownership challenge has no parseable timestamp")
	// ErrSignatureInvalid is returned when the signature does not match address and message
	ErrSignatureInvalid = errors.New("Signature does not match address and message")
)

// now is swapped out by tests to pin the challenge clock
var now = time.Now

// Verifier checks ownership claims for one set of network parameters
type Verifier struct {
	params *chaincfg.Params
}

// New returns a Verifier deriving addresses for the given network
func New(params *chaincfg.Params) *Verifier {
	return &Verifier{params: params}
}

// Challenge formats the message a wallet owner must sign to prove control of
// address. Issuing one has no effect on registry state.
func (v *Verifier) Challenge(address string) string {
	return fmt.Sprintf("%s:%d:%s", address, now().Unix(), challengeSuffix)
}

// Verify checks the freshness of a challenge message and the wallet
// signature over it. Freshness is checked first, so an expired message is
// rejected even when its signature would not hold up either.
func (v *Verifier) Verify(address, message, signature string) error {
	issued, err := challengeTime(message)
	if err != nil {
		return err
	}
	if now().Unix()-issued >= int64(ChallengeWindow/time.Second) {
		return ErrChallengeExpired
	}
	ok, err := VerifyMessage(message, address, signature, v.params)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
	if !ok {
		return ErrSignatureInvalid
	}
	return nil
}

// challengeTime extracts the unix timestamp embedded as the second
// colon-delimited field of a challenge message
func challengeTime(message string) (int64, error) {
	parts := strings.Split(message, ":")
	if len(parts) < 2 {
		return 0, ErrChallengeMalformed
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrChallengeMalformed
	}
	return ts, nil
}
