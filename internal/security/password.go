package security

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of plain.
//
// Digests are deterministic and unsalted, which keeps them comparable with
// every digest already stored in the database and in the admin configuration.
// Unsalted hashing is a known weakness of that stored format; changing it
// would invalidate existing records, so it is kept as-is.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
