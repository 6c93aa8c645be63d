// Package scs implements incremental, prefix-valid syntactic constraints for
// token-by-token text generation. Given a grammar — structural JSON, a
// schema-constrained JSON dialect, or a fixed set of literal alternatives —
// it answers two questions after every emitted character or sampled token:
// is the accumulated output still the prefix of some string the grammar
// accepts, and which candidate next tokens from a fixed vocabulary would
// preserve that property.
package scs
