// Package cursor owns sequential, bounds-checked reads over an immutable
// byte buffer during decoding.
//
// Multi-byte reads use the host's native byte order; the wire contract does
// not normalize primitive endianness, so cross-machine portability of
// primitive payloads is a caller responsibility.
package cursor

import (
	"encoding/binary"
	"errors"
	"math"
)

var ErrInsufficientData = errors.New("cursor: insufficient data")

// Reader tracks a read offset into a borrowed buffer. It does not copy or
// mutate the buffer; callers must not modify it for the duration of a decode.
type Reader struct {
	data []byte
	off  int
}

func New(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// HasMore reports whether any unread bytes remain.
func (r *Reader) HasMore() bool {
	return r.off < len(r.data)
}

// take borrows the next n bytes without copying.
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, ErrInsufficientData
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadBytes copies the next n bytes and advances past them.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(b), nil
}

func (r *Reader) Uint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint64(b), nil
}

func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	return math.Float32frombits(v), err
}

func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	return math.Float64frombits(v), err
}

func (r *Reader) Bool() (bool, error) {
	v, err := r.Uint8()
	return v != 0, err
}
