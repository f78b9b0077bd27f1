package xlsx

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"time"
)

const (
	localHeaderSignature   = 0x04034b50
	centralHeaderSignature = 0x02014b50
	endOfCentralSignature  = 0x06054b50

	zipVersion  = 20
	methodStore = 0
)

var errTooLarge = errors.New("xlsx: archive exceeds 32-bit ZIP limits")

// zipEntry is a file already written to the archive.
type zipEntry struct {
	name   string
	crc    uint32
	size   uint32
	offset uint32
}

// storedZip writes an uncompressed ZIP archive. Entries are written
// immediately; Close appends the central directory.
type storedZip struct {
	w       io.Writer
	offset  int64
	entries []zipEntry
	modTime uint16
	modDate uint16
}

func newStoredZip(w io.Writer, now time.Time) *storedZip {
	t, d := dosTime(now)
	return &storedZip{w: w, modTime: t, modDate: d}
}

// add writes one stored file: local header followed by the raw bytes.
func (z *storedZip) add(name string, data []byte) error {
	if uint64(len(data)) > math.MaxUint32 || z.offset > math.MaxUint32 || len(z.entries) >= math.MaxUint16 {
		return errTooLarge
	}
	e := zipEntry{
		name:   name,
		crc:    crc32.ChecksumIEEE(data),
		size:   uint32(len(data)),
		offset: uint32(z.offset),
	}

	var b builder
	b.u32(localHeaderSignature)
	b.u16(zipVersion)
	b.u16(0) // flags
	b.u16(methodStore)
	b.u16(z.modTime)
	b.u16(z.modDate)
	b.u32(e.crc)
	b.u32(e.size) // compressed
	b.u32(e.size) // uncompressed
	b.u16(uint16(len(name)))
	b.u16(0) // extra length
	b.str(name)

	if err := z.write(b); err != nil {
		return err
	}
	if err := z.write(data); err != nil {
		return err
	}
	z.entries = append(z.entries, e)
	return nil
}

// close writes the central directory and the end-of-central-directory record.
func (z *storedZip) close() error {
	start := z.offset
	for _, e := range z.entries {
		var b builder
		b.u32(centralHeaderSignature)
		b.u16(zipVersion) // made by
		b.u16(zipVersion) // needed
		b.u16(0)          // flags
		b.u16(methodStore)
		b.u16(z.modTime)
		b.u16(z.modDate)
		b.u32(e.crc)
		b.u32(e.size)
		b.u32(e.size)
		b.u16(uint16(len(e.name)))
		b.u16(0) // extra length
		b.u16(0) // comment length
		b.u16(0) // disk number
		b.u16(0) // internal attributes
		b.u32(0) // external attributes
		b.u32(e.offset)
		b.str(e.name)
		if err := z.write(b); err != nil {
			return err
		}
	}
	size := z.offset - start
	if start > math.MaxUint32 || size > math.MaxUint32 {
		return errTooLarge
	}

	var b builder
	b.u32(endOfCentralSignature)
	b.u16(0) // this disk
	b.u16(0) // disk with central directory
	b.u16(uint16(len(z.entries)))
	b.u16(uint16(len(z.entries)))
	b.u32(uint32(size))
	b.u32(uint32(start))
	b.u16(0) // comment length
	return z.write(b)
}

func (z *storedZip) write(p []byte) error {
	n, err := z.w.Write(p)
	z.offset += int64(n)
	if err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// builder accumulates little-endian header fields.
type builder []byte

func (b *builder) u16(v uint16) { *b = binary.LittleEndian.AppendUint16(*b, v) }
func (b *builder) u32(v uint32) { *b = binary.LittleEndian.AppendUint32(*b, v) }
func (b *builder) str(s string) { *b = append(*b, s...) }

// dosTime encodes t in MS-DOS date and time format. Years before 1980
// clamp to the DOS epoch.
func dosTime(t time.Time) (uint16, uint16) {
	if t.Year() < 1980 {
		t = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	tm := uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	dt := uint16((t.Year()-1980)<<9 | int(t.Month())<<5 | t.Day())
	return tm, dt
}
