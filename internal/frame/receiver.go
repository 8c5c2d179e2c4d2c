package frame

type receiverState uint8

const (
	stateIdle receiverState = iota
	stateInFrame
	stateEscape
)

// DefaultMaxFrameBytes caps the receive accumulator. A frame whose wire
// image exceeds this is abandoned with ErrBufferOverflow.
const DefaultMaxFrameBytes = 1024

// Receiver reconstructs frames from bytes delivered one at a time, e.g. off
// a serial link. It resynchronizes on start markers: bytes arriving while
// idle are discarded until a start marker is seen.
//
// A Receiver is owned by a single logical channel. Calls are synchronous and
// must not overlap; there is no internal locking and no timeout — a frame
// that never sees its end marker stays pending until the size guard trips.
type Receiver struct {
	state receiverState
	buf   []byte
	max   int
}

func NewReceiver() *Receiver {
	return NewReceiverLimit(DefaultMaxFrameBytes)
}

// NewReceiverLimit returns a Receiver with a custom accumulator cap. Values
// below the minimum frame size fall back to the default.
func NewReceiverLimit(max int) *Receiver {
	if max < Overhead {
		max = DefaultMaxFrameBytes
	}
	return &Receiver{state: stateIdle, max: max}
}

// ProcessByte consumes one wire byte. done is true only when a frame
// completed or was abandoned; the Result is meaningful only then.
func (rv *Receiver) ProcessByte(b byte) (res Result, done bool) {
	switch rv.state {
	case stateIdle:
		if b != StartByte {
			return Result{}, false
		}
		rv.buf = append(rv.buf[:0], b)
		rv.state = stateInFrame
		return Result{}, false

	case stateEscape:
		// The escaped byte is accumulated verbatim; Parse unstuffs the
		// whole frame, so an escaped end marker must not terminate here.
		rv.buf = append(rv.buf, b)
		rv.state = stateInFrame

	case stateInFrame:
		switch b {
		case EscapeByte:
			rv.buf = append(rv.buf, b)
			rv.state = stateEscape
		case EndByte:
			rv.buf = append(rv.buf, b)
			rv.state = stateIdle
			return Parse(rv.buf), true
		default:
			rv.buf = append(rv.buf, b)
		}
	}

	if len(rv.buf) > rv.max {
		rv.state = stateIdle
		return Result{Err: ErrBufferOverflow}, true
	}
	return Result{}, false
}

// Feed processes a run of wire bytes and collects every completed Result in
// order. Partial trailing frames stay pending in the Receiver.
func (rv *Receiver) Feed(p []byte) []Result {
	var out []Result
	for _, b := range p {
		if res, done := rv.ProcessByte(b); done {
			out = append(out, res)
		}
	}
	return out
}

// Reset abandons any partial frame and returns to idle.
func (rv *Receiver) Reset() {
	rv.state = stateIdle
	rv.buf = rv.buf[:0]
}
