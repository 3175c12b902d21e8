// Package checksum implements the streaming CRC-32 used for zip entry
// integrity fields.
//
// This is the reflected CRC-32 variant with generator polynomial 0xEDB88320
// (the one shared by zip, gzip, and Ethernet). The accumulator starts
// all-ones and the final value is the bitwise complement, so the checksum of
// empty input is 0x00000000.
//
// The Digest type supports incremental use: feeding a byte stream in chunks
// of any size produces the same value as a single Write over the whole
// stream.
package checksum
