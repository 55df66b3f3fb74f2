// Package hashchain provides the checksum and canonical serialization that
// link ledger entries together.
//
// The checksum is 32-bit FNV-1a rendered as 8 lowercase hex digits. This is
// an interoperability contract, not an internal detail: independent
// implementations consuming the same ledger must produce bit-identical
// checksums, so neither the algorithm nor the rendering may change.
// A fast non-cryptographic checksum is deliberate — the chain is
// tamper-evident, not tamper-proof.
package hashchain

import (
	"fmt"
	"hash/fnv"
)

// Sum returns the 32-bit FNV-1a checksum of the UTF-8 bytes of text,
// zero-padded to 8 lowercase hex digits.
//
// Reference vectors: Sum("hello") == "4f9f2cab", Sum("") == "811c9dc5".
func Sum(text string) string {
	h := fnv.New32a()
	h.Write([]byte(text))
	return fmt.Sprintf("%08x", h.Sum32())
}

// EntryText builds the canonical hash input for a ledger entry.
//
// The timestamp is rendered with exactly 3 decimal places; any deviation
// breaks chain verification against other implementations. The entry's
// status and break reason are deliberately excluded from the rendering.
func EntryText(entryID, speakerID int, operation, action string, timestamp float64, prevHash string) string {
	return fmt.Sprintf("%d:%d:%s:%s:%.3f:%s", entryID, speakerID, operation, action, timestamp, prevHash)
}
