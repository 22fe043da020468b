package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// CodeHasher provides hashing logic to store one-time codes without keeping them in clear.
type CodeHasher interface {
	Hash(code string) string
}

// HMACHasher uses HMAC-SHA256 keyed with the provided salt.
type HMACHasher struct {
	salt []byte
}

func NewHMACHasher(salt string) *HMACHasher {
	return &HMACHasher{salt: []byte(salt)}
}

// Hash returns the hex encoded HMAC of code. Equal inputs give equal outputs,
// so the result can be used as a lookup key.
func (h *HMACHasher) Hash(code string) string {
	mac := hmac.New(sha256.New, h.salt)
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}
