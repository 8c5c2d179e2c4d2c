package codec

import (
	"reflect"

	"github.com/danmuck/framectl/internal/cursor"
)

var (
	marshalerType   = reflect.TypeOf((*Marshaler)(nil)).Elem()
	unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()
)

// customStrategy delegates entirely to the type's own Marshaler/Unmarshaler
// pair. A type qualifies only with both halves present, so every custom type
// that can be written can also be read back.
type customStrategy struct{}

func (customStrategy) Match(t reflect.Type) bool {
	if !reflect.PointerTo(t).Implements(unmarshalerType) {
		return false
	}
	return t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)
}

func (customStrategy) Append(dst []byte, v reflect.Value) ([]byte, error) {
	m, ok := v.Interface().(Marshaler)
	if !ok {
		// MarshalWire is on the pointer receiver.
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		m = p.Interface().(Marshaler)
	}
	return append(dst, m.MarshalWire()...), nil
}

func (customStrategy) Read(r *cursor.Reader, v reflect.Value) error {
	return v.Addr().Interface().(Unmarshaler).UnmarshalWire(r)
}
