package checksum

// table holds the 256-entry lookup table for the reflected CRC-32
// polynomial used by the zip format. It is built once at package init and
// never mutated, so concurrent readers are safe.
var table = makeTable()

const poly = 0xEDB88320

func makeTable() [256]uint32 {
	var t [256]uint32
	for n := range 256 {
		c := uint32(n)
		for range 8 {
			if c&1 == 1 {
				c = poly ^ (c >> 1)
			} else {
				c >>= 1
			}
		}
		t[n] = c
	}
	return t
}

// Digest is a running CRC-32 accumulator. The zero value is not usable;
// create one with New. Write may be called any number of times, and
// splitting the input across calls never changes the result.
type Digest struct {
	crc uint32
}

// New returns a Digest seeded for a fresh checksum.
func New() *Digest {
	return &Digest{crc: 0xFFFFFFFF}
}

// Write folds p into the running checksum. It implements io.Writer and
// never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	crc := d.crc
	for _, b := range p {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}
	d.crc = crc
	return len(p), nil
}

// Sum32 returns the checksum of everything written so far. It does not
// alter the accumulator, so writing more data afterwards is fine.
func (d *Digest) Sum32() uint32 {
	return ^d.crc
}

// Sum computes the CRC-32 of data in one shot.
func Sum(data []byte) uint32 {
	d := New()
	d.Write(data)
	return d.Sum32()
}
