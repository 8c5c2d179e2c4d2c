// Package packet composes the codec and frame layers into single-call
// send/receive operations.
package packet

import (
	"github.com/danmuck/framectl/internal/codec"
	"github.com/danmuck/framectl/internal/frame"
)

// Create serializes v and frames the result under id.
func Create(id byte, v any) ([]byte, error) {
	payload, err := codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	return frame.Build(id, payload)
}

// Parse validates wire and decodes its payload into out. Every failure,
// framing or decoding, collapses to false; a malformed but checksum-valid
// payload never escalates past this boundary.
func Parse(wire []byte, out any) bool {
	_, ok := ParseID(wire, out)
	return ok
}

// ParseID is Parse surfacing the message id for callers that route on it.
// The id is meaningful whenever the frame header survived validation.
func ParseID(wire []byte, out any) (byte, bool) {
	res := frame.Parse(wire)
	if !res.Valid {
		return res.MessageID, false
	}
	if err := codec.Unmarshal(res.Payload, out); err != nil {
		return res.MessageID, false
	}
	return res.MessageID, true
}
