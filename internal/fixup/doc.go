// Package fixup applies ordered match/replace rules to the generated schema
// artifact.
//
// A pipeline run reads the artifact into memory once, applies every rule to
// the in-memory buffer in configuration order, and writes the result back in
// a single operation only after all rules have succeeded. Because no bytes
// touch the disk before that point, any failure (invalid pattern, unmet
// modificationRequired flag) leaves the on-disk artifact exactly as it was
// when the run started; there is no partially fixed-up state to clean up.
//
// Rules are strictly sequential: each rule's pattern matches against the text
// produced by the rule before it.
package fixup
