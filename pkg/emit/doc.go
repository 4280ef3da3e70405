// Package emit turns resolved accessors into source text.
//
// Build produces a Program: the command constants and one Method per
// accessor, in table order with each entry's write accessor before its read
// accessor. A Method carries its signature as data and its body as a
// BodyFunc closure that renders through the Primitives vocabulary of
// whichever Backend is active. GoBackend renders a Go package;
// ManifestBackend renders a YAML summary. The data part of a Program
// round-trips through CBOR with EncodeIR and DecodeIR.
package emit
