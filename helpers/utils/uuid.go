package utils

import "github.com/google/uuid"

// GenerateUUID returns a random UUID v4 for request/job identifiers,
// replacing the earlier hand-rolled crypto/rand formatter with the
// ecosystem's UUID generator (also in the earlier go.mod as an
// indirect dependency, promoted here to direct use).
func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateShortID returns the first 8 hex characters of a UUID v4, for
// contexts that want a shorter, still-collision-resistant identifier.
func GenerateShortID() string {
	return uuid.NewString()[:8]
}
