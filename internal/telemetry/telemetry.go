// Package telemetry defines the message types carried over the link.
//
// Each type implements the codec's Marshaler/Unmarshaler pair: fixed-width
// fields are written as raw native-endian images, variable fields recurse
// through the codec's container rules.
package telemetry

import (
	"encoding/binary"
	"math"

	"github.com/danmuck/framectl/internal/codec"
	"github.com/danmuck/framectl/internal/cursor"
)

// Message ids for the frame header.
const (
	MsgSensorReading byte = 0x01
	MsgCommand       byte = 0x02
)

// SensorReading is one sample batch from a sensor node.
type SensorReading struct {
	Temperature float32
	Humidity    float32
	Timestamp   uint32
	SensorID    string
	Samples     []uint16
}

func (s SensorReading) MarshalWire() []byte {
	b := make([]byte, 0, 12+4+len(s.SensorID)+4+2*len(s.Samples))
	b = binary.NativeEndian.AppendUint32(b, math.Float32bits(s.Temperature))
	b = binary.NativeEndian.AppendUint32(b, math.Float32bits(s.Humidity))
	b = binary.NativeEndian.AppendUint32(b, s.Timestamp)
	b, _ = codec.Append(b, s.SensorID)
	b, _ = codec.Append(b, s.Samples)
	return b
}

func (s *SensorReading) UnmarshalWire(r *cursor.Reader) error {
	var err error
	if s.Temperature, err = r.Float32(); err != nil {
		return err
	}
	if s.Humidity, err = r.Float32(); err != nil {
		return err
	}
	if s.Timestamp, err = r.Uint32(); err != nil {
		return err
	}
	if err := codec.DecodeFrom(r, &s.SensorID); err != nil {
		return err
	}
	return codec.DecodeFrom(r, &s.Samples)
}

// CommandType discriminates command semantics on the receiving node.
type CommandType uint8

const (
	CommandGet    CommandType = 1
	CommandSet    CommandType = 2
	CommandReset  CommandType = 3
	CommandUpdate CommandType = 4
)

// Param is one tuning parameter attached to a command.
type Param struct {
	ID    uint16
	Value float32
}

func (p Param) MarshalWire() []byte {
	b := binary.NativeEndian.AppendUint16(nil, p.ID)
	return binary.NativeEndian.AppendUint32(b, math.Float32bits(p.Value))
}

func (p *Param) UnmarshalWire(r *cursor.Reader) error {
	var err error
	if p.ID, err = r.Uint16(); err != nil {
		return err
	}
	p.Value, err = r.Float32()
	return err
}

// Command targets a named unit on a device with an opaque payload and a
// parameter list.
type Command struct {
	Type     CommandType
	DeviceID uint16
	Target   string
	Payload  []byte
	Params   []Param
}

func (c Command) MarshalWire() []byte {
	b := []byte{byte(c.Type)}
	b = binary.NativeEndian.AppendUint16(b, c.DeviceID)
	b, _ = codec.Append(b, c.Target)
	b, _ = codec.Append(b, c.Payload)
	b, _ = codec.Append(b, c.Params)
	return b
}

func (c *Command) UnmarshalWire(r *cursor.Reader) error {
	t, err := r.Uint8()
	if err != nil {
		return err
	}
	c.Type = CommandType(t)
	if c.DeviceID, err = r.Uint16(); err != nil {
		return err
	}
	if err := codec.DecodeFrom(r, &c.Target); err != nil {
		return err
	}
	if err := codec.DecodeFrom(r, &c.Payload); err != nil {
		return err
	}
	return codec.DecodeFrom(r, &c.Params)
}
