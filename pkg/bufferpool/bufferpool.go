// Package bufferpool pools the byte buffers used to encode coin images.
package bufferpool

import (
	"bytes"
	"sync"
)

const (
	// a rendered coin PNG is a few KiB
	defaultSize = 16 << 10
	// larger buffers are dropped instead of pooled
	maxPooledSize = 1 << 20
)

var pool = &sync.Pool{
	New: func() interface{} {
		return &Buffer{
			Buffer: bytes.NewBuffer(make([]byte, 0, defaultSize)),
		}
	},
}

type Buffer struct {
	*bytes.Buffer
}

// Get returns an empty buffer from the pool.
func Get() *Buffer {
	buf := pool.Get().(*Buffer)
	buf.Reset()
	return buf
}

// Release returns the buffer to the pool. Callers must not use the buffer afterwards.
func (b *Buffer) Release() {
	if b.Cap() > maxPooledSize {
		return
	}
	pool.Put(b)
}

// Clone returns a copy of the buffer contents that outlives Release.
func (b *Buffer) Clone() []byte {
	return bytes.Clone(b.Bytes())
}
