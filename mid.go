package dynamic

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a content identity for v: "dyn1:" followed by the
// lowercase hex sha256 of its rendering.  Independently built values with
// the same contents share a fingerprint.
//
// Doubles hash their shortest rendering: 0.0 and -0.0 differ here although
// they are Equal, and NaN matches itself although it is never Equal.
func (v Value) Fingerprint() (string, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, 0); err != nil {
		return "", err
	}
	return fingerprintPrefix + sha256hex(buf.Bytes()), nil
}

func sha256hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}
