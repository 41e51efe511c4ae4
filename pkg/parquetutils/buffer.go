package parquetutils

import (
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/xitongsys/parquet-go/source"
)

var (
	_ source.ParquetFile = (*Buffer)(nil)
	_ io.WriterTo        = (*Buffer)(nil)
)

// Buffer is an in-memory parquet file, used to stream an export without touching the disk.
type Buffer struct {
	mu  sync.Mutex
	buf []byte
	off int
}

func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 4<<10)}
}

// NewBufferFrom reads parquet data from data. The slice is used as is.
func NewBufferFrom(data []byte) *Buffer {
	return &Buffer{buf: data}
}

func (b *Buffer) Create(string) (source.ParquetFile, error) {
	return NewBuffer(), nil
}

func (b *Buffer) Open(string) (source.ParquetFile, error) {
	return NewBufferFrom(b.Bytes()), nil
}

func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var off int64
	switch whence {
	case io.SeekStart:
		off = offset
	case io.SeekCurrent:
		off = int64(b.off) + offset
	case io.SeekEnd:
		off = int64(len(b.buf)) + offset
	default:
		return int64(b.off), errors.Newf("seek: invalid whence %d", whence)
	}
	if off < 0 {
		return int64(b.off), errors.Newf("seek: negative offset %d", off)
	}
	b.off = int(min(off, int64(len(b.buf))))
	return int64(b.off), nil
}

func (b *Buffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := copy(p, b.buf[b.off:])
	b.off += n
	if b.off == len(b.buf) {
		return n, io.EOF
	}
	return n, nil
}

// Write writes p at the current offset, overwriting existing data.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := b.off + len(p)
	if end > len(b.buf) {
		if end > cap(b.buf) {
			grown := make([]byte, len(b.buf), max(end, 2*cap(b.buf)))
			copy(grown, b.buf)
			b.buf = grown
		}
		b.buf = b.buf[:end]
	}
	copy(b.buf[b.off:], p)
	b.off = end
	return len(p), nil
}

func (*Buffer) Close() error {
	return nil
}

// Bytes returns the written data. It aliases the buffer.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf
}

// WriteTo copies the whole file to w, regardless of the current offset.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), errors.WithStack(err)
}
