// Package table parses PMBus command tables.
//
// A command table is a comma-separated list of rows, each row made of five
// pipe-delimited fields in fixed order:
//
//	| byte | identifier | write-kind | read-kind | byte-count |
//
// Field shapes:
//   - byte: integer literal 0..255 (decimal; 0x, 0o and 0b prefixes accepted)
//   - identifier: _ (reserved) or a name, kept with its original casing
//   - write-kind: _ | ! | write: <Type> | send
//   - read-kind: _ | ! | read: <Type> | call: <Type>
//   - byte-count: _ (variable) | ! | integer 0..255
//
// A "!" marks a command that exists in the protocol but is unimplemented or
// manufacturer specific. A trailing comma after the last row is allowed and
// // or /* */ comments may appear between tokens.
//
// # Example
//
//	|   0 | PAGE              | write: u8    | read: u8    | 1 |,
//	|   3 | CLEAR_FAULTS      | send         | _           | 0 |,
//	| 154 | MFR_MODEL         | write: bytes | read: bytes | _ |,
//	| 208 | _                 | !            | !           | ! |,
//
// Parsing is all-or-nothing: the first malformed token aborts with a
// [*SyntaxError] carrying the source position, and no partial table is
// returned.
package table
