// Package markup implements the wire format that carries note content: a
// tokenizer, a recursive-descent parser producing a typed document tree,
// a pluggable error-recovery layer, and a serializer that renders the tree
// back to canonical markup text.
//
// The pipeline is synchronous and allocation-only; parsing and serializing
// never touch I/O. With the default LenientRecovery handler a malformed or
// unknown-future-tag note degrades to warnings instead of errors, so a
// single corrupt note can never take the hosting application down. Strict
// validation tooling swaps in StrictRecovery to surface every fault.
package markup
