package entity

import "github.com/go-gl/mathgl/mgl64"

// HistoricalPosition is a position of an entity that was committed at a certain tick.
type HistoricalPosition struct {
	Position mgl64.Vec3
	OnGround bool
	Tick     int64
}

// RingBuffer is a fixed-size circular buffer of committed positions, oldest overwritten first.
type RingBuffer struct {
	buffer []HistoricalPosition
	head   int // next write position
	size   int
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{buffer: make([]HistoricalPosition, capacity)}
}

// Add inserts a position, overwriting the oldest one if the buffer is full.
func (rb *RingBuffer) Add(pos HistoricalPosition) {
	if len(rb.buffer) == 0 {
		return
	}
	rb.buffer[rb.head] = pos
	rb.head = (rb.head + 1) % len(rb.buffer)
	if rb.size < len(rb.buffer) {
		rb.size++
	}
}

// Get retrieves the position recorded at tick. Positions are expected in ascending tick order.
func (rb *RingBuffer) Get(tick int64) (HistoricalPosition, bool) {
	for i := range rb.size {
		p := rb.at(i)
		if p.Tick == tick {
			return p, true
		}
		// Everything further back is older.
		if p.Tick < tick {
			break
		}
	}
	return HistoricalPosition{}, false
}

// Latest returns the most recently added position.
func (rb *RingBuffer) Latest() (HistoricalPosition, bool) {
	if rb.size == 0 {
		return HistoricalPosition{}, false
	}
	return rb.at(0), true
}

// Size returns the current number of positions in the buffer.
func (rb *RingBuffer) Size() int {
	return rb.size
}

// at returns the i-th most recent position.
func (rb *RingBuffer) at(i int) HistoricalPosition {
	idx := (rb.head - 1 - i + len(rb.buffer)) % len(rb.buffer)
	return rb.buffer[idx]
}
