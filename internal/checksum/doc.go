// Package checksum fingerprints DDL artifacts.
//
// Two fingerprints are computed over the same content:
//
//   - Raw: hash of the exact bytes (detects all changes)
//   - Normalized: hash after lowercasing, removing SQL comments, and
//     collapsing whitespace
//
// When a generated schema and its baseline differ byte-for-byte but share a
// normalized fingerprint, the drift is formatting or comments only, which
// changes how a failed verification should be read: regenerate the baseline
// instead of writing a migration.
package checksum
