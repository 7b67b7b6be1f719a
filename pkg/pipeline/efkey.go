package pipeline

import (
	"crypto/sha256"
	"encoding/hex"
)

// ComputeEFKey derives the stable EF identity from the classified enums:
// lowercase hex SHA-256 of "THEATER|EVENT_TYPE". Inputs must already be
// normalized vocabulary members; equal pairs always hash equal (and
// collisions across distinct pairs are not a practical concern).
func ComputeEFKey(theater, eventType string) string {
	sum := sha256.Sum256([]byte(theater + "|" + eventType))
	return hex.EncodeToString(sum[:])
}
