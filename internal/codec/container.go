package codec

import (
	"encoding/binary"
	"reflect"

	"github.com/danmuck/framectl/internal/cursor"
)

// containerStrategy writes a 4-byte element count followed by each element in
// iteration order. Strings and byte slices take a bulk path; the wire image
// is identical to the element-wise form.
type containerStrategy struct {
	reg *Registry
}

func (*containerStrategy) Match(t reflect.Type) bool {
	return t.Kind() == reflect.String || t.Kind() == reflect.Slice
}

func (c *containerStrategy) Append(dst []byte, v reflect.Value) ([]byte, error) {
	if v.Kind() == reflect.String {
		s := v.String()
		dst = binary.NativeEndian.AppendUint32(dst, uint32(len(s)))
		return append(dst, s...), nil
	}

	n := v.Len()
	dst = binary.NativeEndian.AppendUint32(dst, uint32(n))
	if v.Type().Elem().Kind() == reflect.Uint8 {
		return append(dst, v.Bytes()...), nil
	}

	elem, err := c.reg.strategyFor(v.Type().Elem())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if dst, err = elem.Append(dst, v.Index(i)); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c *containerStrategy) Read(r *cursor.Reader, v reflect.Value) error {
	n32, err := r.Uint32()
	if err != nil {
		return err
	}
	n := int(n32)

	if v.Kind() == reflect.String {
		b, err := r.ReadBytes(n)
		if err != nil {
			return err
		}
		v.SetString(string(b))
		return nil
	}

	t := v.Type()
	if t.Elem().Kind() == reflect.Uint8 {
		b, err := r.ReadBytes(n)
		if err != nil {
			return err
		}
		v.SetBytes(b)
		return nil
	}

	// The count is validated element by element against the cursor bounds;
	// the capacity hint is capped at what the buffer could possibly hold.
	hint := n
	if hint > r.Remaining() {
		hint = r.Remaining()
	}
	elem, err := c.reg.strategyFor(t.Elem())
	if err != nil {
		return err
	}
	sl := reflect.MakeSlice(t, 0, hint)
	for i := 0; i < n; i++ {
		ev := reflect.New(t.Elem()).Elem()
		if err := elem.Read(r, ev); err != nil {
			return err
		}
		sl = reflect.Append(sl, ev)
	}
	v.Set(sl)
	return nil
}
