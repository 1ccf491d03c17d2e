package session

import (
	"crypto/rand"
	"encoding/base64"
)

// newToken mints an unguessable URL-safe token. Possession of the token is
// the only thing that ties a webapp page to its channel, so the entropy
// must come from crypto/rand.
func newToken(length int) string {
	byteLength := (length * 3) / 4
	if byteLength < length {
		byteLength = length
	}

	b := make([]byte, byteLength)
	rand.Read(b)
	encoded := base64.URLEncoding.EncodeToString(b)
	if len(encoded) > length {
		return encoded[:length]
	}
	return encoded
}
