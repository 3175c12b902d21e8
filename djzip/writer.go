package djzip

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"runtime"

	"github.com/dendrascience/djzip/checksum"
	"github.com/dendrascience/djzip/dostime"
)

type state int

const (
	stateIdle state = iota
	stateBusy
	stateClosed
)

// Writer serializes named payloads into a zip archive, streaming each
// record to a sink as entries arrive. It owns its entry list and running
// offset but not the sink; the sink must outlive the writer.
//
// A Writer is not safe for concurrent use, and its operations must not be
// reentered: the busy state exists to reject exactly that misuse, since the
// offset and entry list are mutated across multiple sink writes.
//
// Call Close on every exit path, typically with defer. A Writer that
// becomes garbage while still open closes itself as a last resort so no
// archive is silently left truncated; a failure on that path has no caller
// to report to and panics instead.
type Writer struct {
	state   state
	out     io.Writer
	entries []entry
	offset  uint32
	clock   func() dostime.DateTime
}

// NewWriter returns a Writer that streams an archive to out.
func NewWriter(out io.Writer) *Writer {
	zw := &Writer{out: out, clock: dostime.Now}
	runtime.SetFinalizer(zw, (*Writer).closeAbandoned)
	return zw
}

// closeAbandoned is the safety net for writers dropped without Close. It
// only fires for a writer still in a consistent idle state; anything else
// is already poisoned or closed and must stay that way.
func (zw *Writer) closeAbandoned() {
	if zw.state != stateIdle {
		return
	}
	if err := zw.Close(); err != nil {
		panic(fmt.Sprintf("djzip: abandoned writer could not be finalized: %v", err))
	}
}

// AddEntry appends one named payload to the archive. The payload is encoded
// according to level, checksummed over its uncompressed bytes, stamped with
// the current time, and written out as a local header followed by the body.
// An empty name is legal.
//
// ErrInvalidState is returned when the writer is closed, mid-operation, or
// a previous write failed. ErrSizeLimit is returned, before anything is
// written, when the name, the sizes, or the resulting offset cannot fit the
// format's fixed-width fields; the writer stays usable. A sink write error
// is returned wrapped and leaves the archive truncated: the writer refuses
// all further operations and the caller must discard the output.
func (zw *Writer) AddEntry(name string, payload []byte, level Level) error {
	if zw.state != stateIdle {
		return ErrInvalidState
	}
	zw.state = stateBusy

	body := payload
	if level != Store {
		b, err := deflate(payload, level.flateLevel())
		if err != nil {
			zw.state = stateIdle
			return fmt.Errorf("deflate %q: %w", name, err)
		}
		body = b
	}

	e := entry{
		method: level.method(),
		stamp:  zw.clock().DOS(),
		crc:    checksum.Sum(payload),
		offset: zw.offset,
		name:   name,
	}
	if err := zw.sizeEntry(&e, len(payload), len(body)); err != nil {
		zw.state = stateIdle
		return err
	}

	if err := zw.emit(e.localHeader()); err != nil {
		return fmt.Errorf("write local header for %q: %w", name, err)
	}
	if err := zw.emit(body); err != nil {
		return fmt.Errorf("write body for %q: %w", name, err)
	}

	zw.entries = append(zw.entries, e)
	zw.state = stateIdle
	return nil
}

// Close emits the central directory, one record per entry in insertion
// order, then the end-of-directory record, and seals the writer. Closing a
// writer twice, or one poisoned by a failed write, returns ErrInvalidState
// and emits nothing.
func (zw *Writer) Close() error {
	if zw.state != stateIdle {
		return ErrInvalidState
	}
	zw.state = stateBusy
	runtime.SetFinalizer(zw, nil)

	if len(zw.entries) > uint16Max {
		return fmt.Errorf("%d entries: %w", len(zw.entries), ErrSizeLimit)
	}
	dirSize := uint64(0)
	for i := range zw.entries {
		dirSize += centralHeaderLen + uint64(len(zw.entries[i].name))
	}
	if uint64(zw.offset)+dirSize+endOfDirectoryLen > uint32Max {
		return fmt.Errorf("central directory past the 4 GiB boundary: %w", ErrSizeLimit)
	}

	start := zw.offset
	for i := range zw.entries {
		if err := zw.emit(zw.entries[i].centralHeader()); err != nil {
			return fmt.Errorf("write central directory: %w", err)
		}
	}
	end := endOfDirectory(uint16(len(zw.entries)), zw.offset-start, start)
	if err := zw.emit(end); err != nil {
		return fmt.Errorf("write end of central directory: %w", err)
	}

	zw.state = stateClosed
	return nil
}

// sizeEntry validates every variable-width quantity against its header
// field and fills in the entry's size fields. Nothing has been written when
// it fails, so the archive is still intact.
func (zw *Writer) sizeEntry(e *entry, uncompressed, compressed int) error {
	if len(e.name) > uint16Max {
		return fmt.Errorf("name of %d bytes: %w", len(e.name), ErrSizeLimit)
	}
	if uint64(uncompressed) > uint32Max || uint64(compressed) > uint32Max {
		return fmt.Errorf("entry of %d bytes (%d encoded): %w", uncompressed, compressed, ErrSizeLimit)
	}
	record := localHeaderLen + uint64(len(e.name)) + uint64(compressed)
	if uint64(zw.offset)+record > uint32Max {
		return fmt.Errorf("entry would start past the 4 GiB boundary: %w", ErrSizeLimit)
	}
	e.uncompressedSize = uint32(uncompressed)
	e.compressedSize = uint32(compressed)
	return nil
}

// emit writes buf to the sink, advancing the running offset only once the
// whole buffer made it out. Callers have already proven the advance cannot
// overflow.
func (zw *Writer) emit(buf []byte) error {
	if _, err := zw.out.Write(buf); err != nil {
		return err
	}
	zw.offset += uint32(len(buf))
	return nil
}

// deflate runs payload through the compressor at the given intensity and
// returns the raw deflate stream.
func deflate(payload []byte, level int) ([]byte, error) {
	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(payload); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
