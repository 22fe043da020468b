package otp

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"math/big"
	"strconv"

	"github.com/xlzd/gotp"
)

const (
	// CodeLength is the number of digits in an issued code.
	CodeLength = 6

	secretBytes = 20

	// HOTP truncates to 31 bits: values below 2^31 mod 10^6 have
	// hotpHeavyPreimages preimages, the rest have one fewer.
	hotpHeavyBelow     = 483648
	hotpHeavyPreimages = 2148
)

var hotpHeavyRange = big.NewInt(hotpHeavyPreimages)

// Generator produces one-time codes in the range 100000-999999.
type Generator interface {
	Generate() (string, error)
}

// GOTPGenerator derives each code from an HOTP over a fresh random secret,
// so no generator state is shared between calls.
type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

func (g *GOTPGenerator) Generate() (string, error) {
	for {
		secret, err := randomSecret()
		if err != nil {
			return "", err
		}

		code := gotp.NewDefaultHOTP(secret).At(0)
		// codes with a leading zero fall outside 100000-999999
		if len(code) != CodeLength || code[0] == '0' {
			continue
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			continue
		}

		var coin int64 = 1
		if n < hotpHeavyBelow {
			c, err := rand.Int(rand.Reader, hotpHeavyRange)
			if err != nil {
				return "", fmt.Errorf("read random coin failed: %w", err)
			}
			coin = c.Int64()
		}

		if keep(n, coin) {
			return code, nil
		}
	}
}

// keep drops one in hotpHeavyPreimages of the over-represented codes so that
// every code in range is equally likely. coin is uniform in [0, hotpHeavyPreimages).
func keep(code int, coin int64) bool {
	return code >= hotpHeavyBelow || coin != 0
}

func randomSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random secret failed: %w", err)
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(b), nil
}

// IsWellFormed reports whether code is exactly CodeLength ASCII digits.
func IsWellFormed(code string) bool {
	if len(code) != CodeLength {
		return false
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}

	return true
}
