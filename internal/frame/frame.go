// Package frame owns the link-layer wire contract.
//
// Ownership boundary:
// - frame build/parse with markers, byte stuffing, and CRC validation
// - the byte-at-a-time Receiver state machine
//
// Wire layout between the markers, before stuffing:
//
//	MSG_ID(1) | LENGTH(2, little-endian, payload size) | PAYLOAD | CRC16(2, little-endian)
//
// The CRC-16 covers MSG_ID through PAYLOAD. Stuffing applies uniformly to
// every byte between the markers, so header and CRC bytes that collide with
// a marker value survive the link intact.
package frame

import (
	"encoding/binary"
	"errors"

	"github.com/danmuck/framectl/internal/checksum"
)

const (
	StartByte  byte = 0x7E
	EndByte    byte = 0x7D
	EscapeByte byte = 0x7C

	escapeXOR byte = 0x20

	// Overhead is the unescaped frame size with an empty payload:
	// start + id + length(2) + crc(2) + end.
	Overhead = 7

	// MaxPayload is the largest payload the 16-bit length field can carry.
	MaxPayload = 0xFFFF
)

var (
	ErrPayloadTooLarge  = errors.New("frame: payload too large")
	ErrFrameTooSmall    = errors.New("frame: frame too small")
	ErrInvalidMarkers   = errors.New("frame: invalid frame markers")
	ErrLengthMismatch   = errors.New("frame: length mismatch")
	ErrChecksumMismatch = errors.New("frame: checksum mismatch")
	ErrDanglingEscape   = errors.New("frame: dangling escape byte")
	ErrBufferOverflow   = errors.New("frame: receive buffer overflow")
)

// Result is the outcome of one parse attempt. It is created fresh per call;
// MessageID and Payload are only meaningful when Valid is set.
type Result struct {
	Valid     bool
	MessageID byte
	Payload   []byte
	Err       error
}

// Build frames payload under id. The payload is copied, never aliased.
func Build(id byte, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, ErrPayloadTooLarge
	}

	body := make([]byte, 0, len(payload)+Overhead-2)
	body = append(body, id)
	body = binary.LittleEndian.AppendUint16(body, uint16(len(payload)))
	body = append(body, payload...)
	body = binary.LittleEndian.AppendUint16(body, checksum.Sum16(body))

	wire := make([]byte, 0, len(body)+2)
	wire = append(wire, StartByte)
	wire = appendStuffed(wire, body)
	wire = append(wire, EndByte)
	return wire, nil
}

// Parse validates one complete wire frame and strips it back to message id
// and payload. The returned payload is a copy of the unescaped bytes.
func Parse(wire []byte) Result {
	if len(wire) < Overhead {
		return Result{Err: ErrFrameTooSmall}
	}
	if wire[0] != StartByte || wire[len(wire)-1] != EndByte {
		return Result{Err: ErrInvalidMarkers}
	}

	body, err := unstuff(wire[1 : len(wire)-1])
	if err != nil {
		return Result{Err: err}
	}
	if len(body) < Overhead-2 {
		return Result{Err: ErrFrameTooSmall}
	}

	id := body[0]
	length := binary.LittleEndian.Uint16(body[1:3])
	if len(body) != int(length)+Overhead-2 {
		return Result{MessageID: id, Err: ErrLengthMismatch}
	}

	crcPos := len(body) - 2
	want := binary.LittleEndian.Uint16(body[crcPos:])
	if !checksum.Verify16(body[:crcPos], want) {
		return Result{MessageID: id, Err: ErrChecksumMismatch}
	}

	payload := make([]byte, length)
	copy(payload, body[3:crcPos])
	return Result{Valid: true, MessageID: id, Payload: payload}
}

// appendStuffed escapes reserved byte values so they cannot be mistaken for
// markers on the wire.
func appendStuffed(dst, in []byte) []byte {
	for _, b := range in {
		if b == StartByte || b == EndByte || b == EscapeByte {
			dst = append(dst, EscapeByte, b^escapeXOR)
		} else {
			dst = append(dst, b)
		}
	}
	return dst
}

func unstuff(in []byte) ([]byte, error) {
	out := make([]byte, 0, len(in))
	esc := false
	for _, b := range in {
		if esc {
			out = append(out, b^escapeXOR)
			esc = false
			continue
		}
		if b == EscapeByte {
			esc = true
			continue
		}
		out = append(out, b)
	}
	if esc {
		return nil, ErrDanglingEscape
	}
	return out, nil
}
