package discount

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// NewCode generates a code of the form DISCOUNT + 8 uppercase hex characters
// from a cryptographically random source. Collisions are treated as
// negligible; no uniqueness re-check is performed against existing codes.
func NewCode() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return CodePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}
