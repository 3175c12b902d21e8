// Package djzip builds zip archives incrementally, streaming every record
// to an io.Writer sink instead of assembling the archive in memory.
//
// Building an archive takes three steps:
//
//  1. Create a Writer over a sink with NewWriter.
//  2. Add entries with AddEntry, choosing a compression Level per payload.
//  3. Call Close to emit the central directory and end record.
//
// Entries are written as they are added: each AddEntry call puts a local
// file header and the (optionally deflated) body on the wire immediately,
// and only per-entry metadata is retained for the central directory. The
// checksum always covers the uncompressed payload, and timestamps use the
// legacy MS-DOS encoding (see the dostime package).
//
// If any method returns an error, the bytes already written are an
// incomplete archive and should be discarded. Close must be called on every
// exit path; a writer collected while still open finalizes itself as a last
// resort, but that path can only panic on failure, so prefer an explicit
// deferred Close.
//
// The writer targets the original zip format only: no Zip64, so entries,
// offsets, and the archive itself must stay under 4 GiB and entry names
// under 64 KiB, enforced via ErrSizeLimit.
package djzip
