// Package pipeline streams FASTA records through the candidate engine and the
// verifier, and hands verified repeats to a visit callback in sequence order.
//
// Detection stays sequential per probe length inside the engine; verification
// fans out per candidate and is re-ordered before visit is called.
package pipeline
