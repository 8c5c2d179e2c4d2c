package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/danmuck/framectl/internal/cursor"
)

// primitiveStrategy copies the raw in-memory image of fixed-width values.
// Platform-width int/uint and uintptr are excluded: their image size varies
// by machine, which the wire contract cannot represent.
type primitiveStrategy struct{}

func (primitiveStrategy) Match(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func (primitiveStrategy) Append(dst []byte, v reflect.Value) ([]byte, error) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1), nil
		}
		return append(dst, 0), nil
	case reflect.Int8:
		return append(dst, byte(v.Int())), nil
	case reflect.Int16:
		return binary.NativeEndian.AppendUint16(dst, uint16(v.Int())), nil
	case reflect.Int32:
		return binary.NativeEndian.AppendUint32(dst, uint32(v.Int())), nil
	case reflect.Int64:
		return binary.NativeEndian.AppendUint64(dst, uint64(v.Int())), nil
	case reflect.Uint8:
		return append(dst, byte(v.Uint())), nil
	case reflect.Uint16:
		return binary.NativeEndian.AppendUint16(dst, uint16(v.Uint())), nil
	case reflect.Uint32:
		return binary.NativeEndian.AppendUint32(dst, uint32(v.Uint())), nil
	case reflect.Uint64:
		return binary.NativeEndian.AppendUint64(dst, v.Uint()), nil
	case reflect.Float32:
		return binary.NativeEndian.AppendUint32(dst, math.Float32bits(float32(v.Float()))), nil
	case reflect.Float64:
		return binary.NativeEndian.AppendUint64(dst, math.Float64bits(v.Float())), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
}

func (primitiveStrategy) Read(r *cursor.Reader, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := r.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int8:
		n, err := r.Int8()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case reflect.Int16:
		n, err := r.Int16()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case reflect.Int32:
		n, err := r.Int32()
		if err != nil {
			return err
		}
		v.SetInt(int64(n))
	case reflect.Int64:
		n, err := r.Int64()
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint8:
		n, err := r.Uint8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
	case reflect.Uint16:
		n, err := r.Uint16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
	case reflect.Uint32:
		n, err := r.Uint32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(n))
	case reflect.Uint64:
		n, err := r.Uint64()
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32:
		f, err := r.Float32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(f))
	case reflect.Float64:
		f, err := r.Float64()
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, v.Type())
	}
	return nil
}
