// Package resolve maps command table entries onto SMBus accessors.
//
// Each entry is resolved twice, independently: once for the write direction
// and once for the read direction. Each direction is an enumerated,
// first-match decision table keyed by the entry's kind column and its byte
// count:
//
//	W0  reserved / unimplemented   any          no accessor
//	W1  write: T                   1            write_<name> -> WriteByte
//	W2  write: T                   2            write_<name> -> WriteWord
//	W3  write: T                   n (not 1,2)  write_<name> -> BlockWrite
//	W4  write: T                   _            write_<name> -> BlockWrite
//	W5  send                       0            send_<name>  -> SendByte
//
//	R0  reserved / unimplemented   any          no accessor
//	R1  read: T                    1            read_<name>  -> ReadByte
//	R2  read: T                    2            read_<name>  -> ReadWord
//	R3  read: T                    n (not 1,2)  read_<name>  -> BlockRead
//	R4  read: T                    _            read_<name>  -> BlockRead
//	R5  call: T                    n or _       call_<name>  -> BlockProcessCall
//
// Any combination not listed is a violation (RES-W / RES-R) positioned at
// the offending row. [Resolve] collects every violation in the table and
// reports them together instead of stopping at the first one.
//
// Table-wide checks (duplicate codes, duplicate names, block size) run as
// [Rule] values in a [RuleRegistry].
package resolve
