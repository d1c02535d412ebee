package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// reportKeyVersion is bumped whenever the report schema or the analysis
// semantics change, invalidating older cached entries without a flush.
const reportKeyVersion = 1

// Hash returns the SHA-256 of data as a 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// ReportKey derives the cache key for an analysis report from the group's
// table fingerprint and the enumeration ceiling. The label is deliberately
// excluded: two differently named copies of the same table share a key.
func ReportKey(tableHash string, maxSubgroups int) string {
	return fmt.Sprintf("report:v%d:%s:%d", reportKeyVersion, tableHash, maxSubgroups)
}
