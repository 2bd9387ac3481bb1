package fir

import "fmt"

// ShiftRegister holds the N most recent samples, newest at logical
// position 0. It is a ring buffer whose head moves backwards on each push,
// so the newest-first view is always buf[head:] followed by buf[:head].
type ShiftRegister struct {
	buf  []int32
	head int
}

// NewShiftRegister returns a zeroed register of length n.
func NewShiftRegister(n int) (*ShiftRegister, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, n)
	}
	return &ShiftRegister{buf: make([]int32, n)}, nil
}

// Push inserts x at position 0. Every older sample moves one position
// towards the end and the oldest is dropped. The whole shift is a single
// head update plus one store.
func (r *ShiftRegister) Push(x int32) {
	r.head--
	if r.head < 0 {
		r.head = len(r.buf) - 1
	}
	r.buf[r.head] = x
}

// Window returns a newest-first copy of the register.
func (r *ShiftRegister) Window() []int32 {
	w := make([]int32, len(r.buf))
	r.WindowTo(w)
	return w
}

// WindowTo writes the newest-first view into dst, which must have length Len.
func (r *ShiftRegister) WindowTo(dst []int32) {
	n := copy(dst, r.buf[r.head:])
	copy(dst[n:], r.buf[:r.head])
}

// Reset sets every position to zero.
func (r *ShiftRegister) Reset() {
	for i := range r.buf {
		r.buf[i] = 0
	}
	r.head = 0
}

// Len returns the register length.
func (r *ShiftRegister) Len() int {
	return len(r.buf)
}

// segments returns the newest-first view as two contiguous slices.
func (r *ShiftRegister) segments() (newer, older []int32) {
	return r.buf[r.head:], r.buf[:r.head]
}
