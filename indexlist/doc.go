// Package indexlist serializes small logic networks as flat sequences of
// 32-bit literals and rebuilds them by insertion into a host network.
//
// Three list families share one API shape:
//
//   - ABCList — AND/XOR lists in the external tool's convention:
//     {0, 1, (0,0)×PIs, (lit0,lit1)×gates, (lit,lit)×POs}. Gate polarity
//     is positional: lit0 < lit1 encodes AND, lit0 > lit1 encodes XOR;
//     equal literals are reserved for output markers.
//   - XAGList — AND/XOR lists with a packed header word
//     (gates<<16 | POs<<8 | PIs), gate pairs, then single PO literals.
//   - MIGList — majority lists with the same header, gate triples, then
//     single PO literals.
//
// Literals encode (index, complement) as 2·i + c: index 0 is constant
// false (literal 1 is constant true), 1..NumPIs are the primary inputs,
// and gates follow in emission order. Gate entries must reference prior
// positions only, so every well-formed list is topologically ordered.
//
// Example — (x1 ∧ x2) ⊕ (x3 ∧ x4), 4 inputs, 3 gates, 1 output:
//
//	abc: {0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 2, 4, 6, 8, 12, 10, 14, 14}
//	xag: {4 | 1<<8 | 3<<16, 2, 4, 6, 8, 12, 10, 14}
//
// # Codec
//
// EncodeABC/EncodeXAG/EncodeMIG read a network in normalised index order
// (PI k at index k, gate k at index NumPIs+k) into a list.
// InsertABC/InsertXAG/InsertMIG resolve a list's literals against caller
// supplied input signals and create the gates in a host network,
// delivering each output signal through a callback.
// DecodeABC/DecodeXAG/DecodeMIG wrap insertion: fresh PIs in, CreatePO out.
//
// # Errors
//
//	ErrLiteralOrder    - AddAnd/AddXor literal ordering violated.
//	ErrHeaderOverflow  - packed header field limit exceeded.
//	ErrNotNormalized   - encoded network not in normalised index order.
//	ErrNotTopological  - gate entry references a later position.
//	ErrMalformedList   - raw values fail structural validation.
//	ErrInputArity      - insertion input count differs from the list's PIs.
//	ErrUnsupportedGate - encoded network contains a foreign gate type.
//
// Structural violations during encode additionally identify the offending
// node on the package's diagnostic channel (zerolog global logger) before
// the error returns, mirroring the external tool's behavior.
//
// All operations are synchronous; Insert and Decode mutate only the host
// network, Encode writes only to the target list.
package indexlist
