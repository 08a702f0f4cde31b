// Package fingerprint computes short content digests used as translation
// provenance markers. A target entry stores the fingerprint of the source
// text it was translated from; a mismatch with the current source text means
// the translation is stale.
//
// The digest is the first 8 hex characters of an MD5 sum. It is not a
// security hash — it only needs to be deterministic and collision-tolerant
// for change detection, and it must stay byte-compatible with hashes already
// embedded in existing translation files.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
)

// Size is the digest length in hex characters.
const Size = 8

// Sum returns the 8-character fingerprint of a UTF-8 string.
func Sum(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])[:Size]
}
