// Package lvlogic is an in-memory toolkit for local logic-network
// optimization: bounded windowing over technology-mapped networks and
// compact index-list serializations of small AND/XOR and majority networks.
//
// 🚀 What is lvlogic?
//
//	A small, synchronous library that brings together:
//		• Core primitives: dense nodes, complemented signals, literal encoding
//		• Concrete networks: XAG (AND/XOR), MIG (majority), cell-mapped hosts
//		• Windowing: grow a bounded cell window around a pivot for resynthesis
//		• Index lists: abc / xag / mig wire formats with encode, decode, insert
//		• Simulation: bit-parallel truth tables for equivalence checks in tests
//
// ✨ Why choose lvlogic?
//
//   - Deterministic – insertion-ordered window sets, reproducible tie-breaks
//   - Hot-path aware – traversal-id marking, index-keyed attribute storage
//   - Explicit errors – structural violations are rich errors, never panics
//   - Pure library – no CLI, no I/O, no goroutines; callers own scheduling
//
// Everything is organized under three subpackages:
//
//	core/      — Node, Signal, capability interfaces & concrete networks
//	window/    — bounded cell-window builder over mapped networks
//	indexlist/ — abc/xag/mig index lists and their codecs
//
// Quick ASCII example of a window around pivot p:
//
//	 leaves:  a   b   c
//	           \ / \ /
//	  gates:    g1  g2
//	             \ /
//	  root:       p ──▶ fanout escaping the window
//
// Dive into each package's doc.go for formats, invariants, and pitfalls.
//
//	go get github.com/katalvlaran/lvlogic
package lvlogic
