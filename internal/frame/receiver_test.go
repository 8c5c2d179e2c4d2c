package frame

import (
	"bytes"
	"errors"
	"testing"

	"github.com/danmuck/framectl/internal/testutil/testlog"
)

// feedAll pushes every byte of wire through rv and returns the completed
// results.
func feedAll(t *testing.T, rv *Receiver, wire []byte) []Result {
	t.Helper()
	return rv.Feed(wire)
}

func TestByteAtATimeMatchesWholeBufferParse(t *testing.T) {
	testlog.Start(t)
	payloads := [][]byte{
		[]byte("plain payload"),
		{StartByte, EndByte, EscapeByte, 0x00, 0xFF},
		nil,
	}
	for _, payload := range payloads {
		wire, err := Build(0x33, payload)
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		want := Parse(wire)

		rv := NewReceiver()
		var got Result
		completions := 0
		for _, b := range wire {
			if res, done := rv.ProcessByte(b); done {
				got = res
				completions++
			}
		}
		if completions != 1 {
			t.Fatalf("payload %x: %d completions", payload, completions)
		}
		if got.Valid != want.Valid || got.MessageID != want.MessageID || !bytes.Equal(got.Payload, want.Payload) {
			t.Fatalf("payload %x: receiver=%+v parse=%+v", payload, got, want)
		}
	}
}

func TestReceiverResynchronizesOnStartMarker(t *testing.T) {
	wire, _ := Build(0x10, []byte{1, 2, 3})
	noise := []byte{0x00, 0xFF, EndByte, EscapeByte ^ escapeXOR, 0x55}

	rv := NewReceiver()
	for _, b := range noise {
		if _, done := rv.ProcessByte(b); done {
			t.Fatalf("noise byte 0x%02X completed a frame", b)
		}
	}
	results := feedAll(t, rv, wire)
	if len(results) != 1 || !results[0].Valid {
		t.Fatalf("frame after noise not received: %+v", results)
	}
}

func TestReceiverHandlesBackToBackFrames(t *testing.T) {
	first, _ := Build(0x01, []byte("first"))
	second, _ := Build(0x02, []byte{EscapeByte, EndByte})

	rv := NewReceiver()
	results := rv.Feed(append(append([]byte(nil), first...), second...))
	if len(results) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(results))
	}
	if !results[0].Valid || results[0].MessageID != 0x01 || string(results[0].Payload) != "first" {
		t.Fatalf("first frame: %+v", results[0])
	}
	if !results[1].Valid || results[1].MessageID != 0x02 || !bytes.Equal(results[1].Payload, []byte{EscapeByte, EndByte}) {
		t.Fatalf("second frame: %+v", results[1])
	}
}

func TestReceiverOverflowGuardResetsToIdle(t *testing.T) {
	rv := NewReceiver()
	if _, done := rv.ProcessByte(StartByte); done {
		t.Fatalf("start marker completed a frame")
	}

	var overflow *Result
	for i := 0; i < DefaultMaxFrameBytes+8; i++ {
		res, done := rv.ProcessByte(0x11)
		if done {
			overflow = &res
			break
		}
	}
	if overflow == nil {
		t.Fatalf("overflow guard never tripped")
	}
	if overflow.Valid || !errors.Is(overflow.Err, ErrBufferOverflow) {
		t.Fatalf("expected ErrBufferOverflow, got %+v", overflow)
	}

	// The guard must return the receiver to idle, ready for the next frame.
	wire, _ := Build(0x09, []byte("after overflow"))
	results := feedAll(t, rv, wire)
	if len(results) != 1 || !results[0].Valid || results[0].MessageID != 0x09 {
		t.Fatalf("receiver unusable after overflow: %+v", results)
	}
}

func TestReceiverCustomLimit(t *testing.T) {
	rv := NewReceiverLimit(16)
	rv.ProcessByte(StartByte)
	var tripped bool
	for i := 0; i < 32; i++ {
		if res, done := rv.ProcessByte(0x01); done {
			if !errors.Is(res.Err, ErrBufferOverflow) {
				t.Fatalf("expected ErrBufferOverflow, got %+v", res)
			}
			if i > 16 {
				t.Fatalf("limit of 16 tripped after %d bytes", i+1)
			}
			tripped = true
			break
		}
	}
	if !tripped {
		t.Fatalf("custom limit never tripped")
	}
}

func TestReceiverIgnoresBytesWhileIdle(t *testing.T) {
	rv := NewReceiver()
	for _, b := range []byte{0x00, 0x42, EndByte, EscapeByte} {
		if res, done := rv.ProcessByte(b); done {
			t.Fatalf("idle byte 0x%02X produced %+v", b, res)
		}
	}
}

func TestReceiverResetAbandonsPartialFrame(t *testing.T) {
	wire, _ := Build(0x07, []byte("abandoned"))
	rv := NewReceiver()
	rv.Feed(wire[:len(wire)/2])
	rv.Reset()

	// The rest of the abandoned frame is noise; a fresh frame must parse.
	if results := rv.Feed(wire[len(wire)/2:]); len(results) != 0 {
		t.Fatalf("stale tail completed a frame: %+v", results)
	}
	results := rv.Feed(wire)
	if len(results) != 1 || !results[0].Valid {
		t.Fatalf("fresh frame after reset: %+v", results)
	}
}

func TestReceiverCorruptFrameReportsFailure(t *testing.T) {
	wire, _ := Build(0x04, []byte("payload"))
	bad := append([]byte(nil), wire...)
	bad[5] ^= 0xFF

	rv := NewReceiver()
	results := rv.Feed(bad)
	if len(results) != 1 {
		t.Fatalf("expected one completion, got %d", len(results))
	}
	if results[0].Valid || results[0].Err == nil {
		t.Fatalf("corrupt frame accepted: %+v", results[0])
	}
}
