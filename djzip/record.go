package djzip

import "encoding/binary"

// Record signatures and fixed sizes from the zip application note.
// All integers in the format are little-endian.
const (
	localHeaderSignature    = 0x04034b50
	centralHeaderSignature  = 0x02014b50
	endOfDirectorySignature = 0x06054b50

	localHeaderLen    = 30 // + name
	centralHeaderLen  = 46 // + name
	endOfDirectoryLen = 22

	zipVersion20 = 20     // zip 2.0: deflate, no zip64
	flagUTF8Name = 0x0800 // general-purpose bit 11: name is UTF-8

	methodStored   = 0
	methodDeflated = 8

	// Limits imposed by the format's 16- and 32-bit fields.
	uint16Max = 1<<16 - 1
	uint32Max = 1<<32 - 1
)

// entry is the metadata retained for one archived payload between its local
// header write and the central directory emission at Close. Entries are
// immutable once appended to the writer's list.
type entry struct {
	method           uint16
	stamp            uint32
	crc              uint32
	compressedSize   uint32
	uncompressedSize uint32
	offset           uint32
	name             string
}

// localHeader encodes the entry's local file header, name included. The
// entry body follows it immediately in the archive.
func (e *entry) localHeader() []byte {
	buf := make([]byte, localHeaderLen+len(e.name))
	binary.LittleEndian.PutUint32(buf[0:4], localHeaderSignature)
	binary.LittleEndian.PutUint16(buf[4:6], zipVersion20)
	binary.LittleEndian.PutUint16(buf[6:8], flagUTF8Name)
	binary.LittleEndian.PutUint16(buf[8:10], e.method)
	binary.LittleEndian.PutUint32(buf[10:14], e.stamp)
	binary.LittleEndian.PutUint32(buf[14:18], e.crc)
	binary.LittleEndian.PutUint32(buf[18:22], e.compressedSize)
	binary.LittleEndian.PutUint32(buf[22:26], e.uncompressedSize)
	binary.LittleEndian.PutUint16(buf[26:28], uint16(len(e.name)))
	binary.LittleEndian.PutUint16(buf[28:30], 0) // extra field length
	copy(buf[localHeaderLen:], e.name)
	return buf
}

// centralHeader encodes the entry's central directory record. The extra
// field, comment, disk, and attribute fields are always zero in this
// archive layout and stay zero from allocation.
func (e *entry) centralHeader() []byte {
	buf := make([]byte, centralHeaderLen+len(e.name))
	binary.LittleEndian.PutUint32(buf[0:4], centralHeaderSignature)
	binary.LittleEndian.PutUint16(buf[4:6], zipVersion20) // version made by
	binary.LittleEndian.PutUint16(buf[6:8], zipVersion20) // version needed
	binary.LittleEndian.PutUint16(buf[8:10], flagUTF8Name)
	binary.LittleEndian.PutUint16(buf[10:12], e.method)
	binary.LittleEndian.PutUint32(buf[12:16], e.stamp)
	binary.LittleEndian.PutUint32(buf[16:20], e.crc)
	binary.LittleEndian.PutUint32(buf[20:24], e.compressedSize)
	binary.LittleEndian.PutUint32(buf[24:28], e.uncompressedSize)
	binary.LittleEndian.PutUint16(buf[28:30], uint16(len(e.name)))
	binary.LittleEndian.PutUint32(buf[42:46], e.offset)
	copy(buf[centralHeaderLen:], e.name)
	return buf
}

// endOfDirectory encodes the terminal record for an archive whose central
// directory holds count entries in size bytes starting at start. The entry
// count appears twice because archives are never split across volumes; the
// disk number and comment fields likewise stay zero.
func endOfDirectory(count uint16, size, start uint32) []byte {
	buf := make([]byte, endOfDirectoryLen)
	binary.LittleEndian.PutUint32(buf[0:4], endOfDirectorySignature)
	binary.LittleEndian.PutUint16(buf[8:10], count)
	binary.LittleEndian.PutUint16(buf[10:12], count)
	binary.LittleEndian.PutUint32(buf[12:16], size)
	binary.LittleEndian.PutUint32(buf[16:20], start)
	return buf
}
