// Package seqalign is an in-memory toolkit for pairwise sequence alignment,
// starting with affine-gap overlap alignment.
//
// 🚀 What is in the box?
//
//	• scoring/ - substitution tables: unordered pair lookup, uniform
//	             match/mismatch builders, coverage validation
//	• overlap/ - optimal overlap alignment with affine gaps (three-matrix
//	             dynamic programming + traceback), plus rescoring helpers
//
// ✨ Why seqalign?
//
//   - Deterministic – documented tie-breaking, identical output on every run
//   - Inspectable – every DP stage is exported; grids print as rows
//   - Pure Go – no cgo, no I/O, no global state; safe to call concurrently
//
// Quick ASCII example:
//
//	TAT
//	 ATA
//
//	the overlap "AT" is aligned; the leading T of x and the trailing A of y
//	are free.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
