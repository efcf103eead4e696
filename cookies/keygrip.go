package cookies

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Keygrip signs and verifies short strings against a rotating key list.
// The first key produces new signatures; every key is accepted during
// verification so old keys can be phased out gradually.
type Keygrip struct {
	keys [][]byte
}

// NewKeygrip copies keys into a Keygrip. At least one key is required;
// NewKeygrip returns nil otherwise.
func NewKeygrip(keys [][]byte) *Keygrip {
	if len(keys) == 0 {
		return nil
	}
	kg := &Keygrip{keys: make([][]byte, len(keys))}
	for i, k := range keys {
		kg.keys[i] = append([]byte(nil), k...)
	}
	return kg
}

// Sign returns the base64url HMAC-SHA256 of data under the primary key.
func (kg *Keygrip) Sign(data string) string {
	return kg.sign(data, 0)
}

func (kg *Keygrip) sign(data string, index int) string {
	mac := hmac.New(sha256.New, kg.keys[index])
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Index reports which key produced the given signature, or -1 when none did.
// Comparison is constant-time per key.
func (kg *Keygrip) Index(data, digest string) int {
	for i := range kg.keys {
		if hmac.Equal([]byte(kg.sign(data, i)), []byte(digest)) {
			return i
		}
	}
	return -1
}

// Verify reports whether any key produced the given signature.
func (kg *Keygrip) Verify(data, digest string) bool {
	return kg.Index(data, digest) >= 0
}
