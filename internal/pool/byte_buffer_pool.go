package pool

import "sync"

// Default and retention sizes of the shared pools.
const (
	EscapeBufferDefaultSize   = 256             // 256B, a typical quoted identifier or log field
	EscapeBufferMaxThreshold  = 1024 * 64       // 64KiB
	PayloadBufferDefaultSize  = 1024 * 16       // 16KiB
	PayloadBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is a growable byte slice that can be reused through a ByteBufferPool.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Write appends data and always succeeds. It makes ByteBuffer an io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends c and always succeeds.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can take requiredBytes more bytes without reallocating.
//
// Small buffers grow by at least PayloadBufferDefaultSize; buffers above four
// times that grow by 25% of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := PayloadBufferDefaultSize
	if cap(bb.B) > 4*PayloadBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a sync.Pool of ByteBuffers.
//
// Buffers whose capacity grew beyond maxThreshold are dropped on Put rather
// than retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	escapeDefaultPool  = NewByteBufferPool(EscapeBufferDefaultSize, EscapeBufferMaxThreshold)
	payloadDefaultPool = NewByteBufferPool(PayloadBufferDefaultSize, PayloadBufferMaxThreshold)
)

// GetEscapeBuffer retrieves a ByteBuffer sized for escaped strings.
func GetEscapeBuffer() *ByteBuffer {
	return escapeDefaultPool.Get()
}

// PutEscapeBuffer returns a ByteBuffer obtained from GetEscapeBuffer.
func PutEscapeBuffer(bb *ByteBuffer) {
	escapeDefaultPool.Put(bb)
}

// GetPayloadBuffer retrieves a ByteBuffer sized for frame payloads.
func GetPayloadBuffer() *ByteBuffer {
	return payloadDefaultPool.Get()
}

// PutPayloadBuffer returns a ByteBuffer obtained from GetPayloadBuffer.
func PutPayloadBuffer(bb *ByteBuffer) {
	payloadDefaultPool.Put(bb)
}
