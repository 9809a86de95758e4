// Package core defines the primitives shared by every lvlogic network:
// dense Node indices, complemented Signal edges, the capability interfaces
// consumed by the window builder and the index-list codecs, and three
// concrete in-memory networks (XAG, MIG, Mapped).
//
// # Nodes, signals, literals
//
// A Node is a dense uint32 index into the network's node table. Index 0 is
// reserved for the constant node; primary inputs occupy 1..NumPIs; gates
// follow in creation order. A Signal packs a Node together with a
// complement bit as node<<1 | c, which makes it identical to the literal
// encoding used by the index-list wire formats: literal 0 is constant
// false, literal 1 is constant true, literal 2·i selects node i, and
// literal 2·i+1 selects its complement.
//
// # Capability interfaces
//
// Algorithms in window/ and indexlist/ accept the narrowest interface that
// covers the operations they need (Network, ANDXORNetwork,
// MajorityNetwork, the builder variants, CellNetwork). A network type opts
// in by implementing the methods; a missing capability is a compile-time
// failure at the call site, mirroring how mapped-network algorithms are
// statically gated in technology-mapping libraries.
//
// # Concrete networks
//
//   - XAG: two-input AND and XOR gates over complemented signals.
//   - MIG: three-input majority gates.
//   - Mapped: k-input gates with a declared cell cover and traversal-id
//     storage; the host type for window construction.
//
// XAG and MIG perform no structural hashing and no constant folding:
// gates are stored exactly in creation order, so index-list round-trips
// are byte-exact. Both keep normalised index order by construction —
// CreatePI is rejected once the first gate exists.
//
// # Simulation
//
// SimulateXAG and SimulateMIG compute one bit-parallel TruthTable per
// primary output, one bit per input assignment. Bounded to MaxSimPIs
// inputs; this is the equivalence oracle the test suites use.
//
// # Concurrency
//
// None. All types are plain in-memory data; callers serialise access.
package core
