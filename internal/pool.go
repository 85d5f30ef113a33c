package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds buffers used to encode trace lines. Buffers are reset by GetBuffer.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// GetBuffer returns an empty buffer from BufferPool.
func GetBuffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to BufferPool. Buffers that grew very large are dropped instead.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 {
		return
	}
	BufferPool.Put(buf)
}
