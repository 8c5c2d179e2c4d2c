package codec

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/danmuck/framectl/internal/cursor"
)

var (
	ErrUnsupportedType = errors.New("codec: unsupported type")
	ErrNotPointer      = errors.New("codec: decode target must be a non-nil pointer")
)

// Marshaler is the self-serialize half of the custom classification. The
// returned buffer is an opaque contract between the type and its decoder;
// the codec never inspects it.
type Marshaler interface {
	MarshalWire() []byte
}

// Unmarshaler reconstructs a value from the shared cursor. It may consume
// any number of bytes and may recurse through the codec for its own fields.
type Unmarshaler interface {
	UnmarshalWire(r *cursor.Reader) error
}

// Strategy serializes one classification of types. Strategies are consulted
// in precedence order; the first Match wins and is cached for the type.
type Strategy interface {
	Match(t reflect.Type) bool
	Append(dst []byte, v reflect.Value) ([]byte, error)
	Read(r *cursor.Reader, v reflect.Value) error
}

// Registry holds the strategy list and the per-type classification cache.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	mu         sync.RWMutex
	strategies []Strategy
	cache      map[reflect.Type]Strategy
}

// NewRegistry returns a registry with the built-in strategies in precedence
// order: primitive, container, custom.
func NewRegistry() *Registry {
	reg := &Registry{cache: make(map[reflect.Type]Strategy)}
	reg.strategies = []Strategy{
		primitiveStrategy{},
		&containerStrategy{reg: reg},
		customStrategy{},
	}
	return reg
}

// Register appends a strategy after the built-ins. Additional classifications
// slot in without touching the recursion core.
func (reg *Registry) Register(s Strategy) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.strategies = append(reg.strategies, s)
	clear(reg.cache)
}

func (reg *Registry) strategyFor(t reflect.Type) (Strategy, error) {
	reg.mu.RLock()
	s, ok := reg.cache[t]
	reg.mu.RUnlock()
	if ok {
		return s, nil
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if s, ok := reg.cache[t]; ok {
		return s, nil
	}
	for _, cand := range reg.strategies {
		if cand.Match(t) {
			reg.cache[t] = cand
			return cand, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
}

// Marshal serializes v into a fresh buffer.
func (reg *Registry) Marshal(v any) ([]byte, error) {
	return reg.Append(nil, v)
}

// Append serializes v onto dst.
func (reg *Registry) Append(dst []byte, v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: untyped nil", ErrUnsupportedType)
	}
	s, err := reg.strategyFor(rv.Type())
	if err != nil {
		return nil, err
	}
	return s.Append(dst, rv)
}

// Unmarshal decodes data into out, which must be a non-nil pointer.
func (reg *Registry) Unmarshal(data []byte, out any) error {
	return reg.DecodeFrom(cursor.New(data), out)
}

// DecodeFrom decodes the next value from r into out. Failures from nested
// decodes propagate unchanged.
func (reg *Registry) DecodeFrom(r *cursor.Reader, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotPointer
	}
	elem := rv.Elem()
	s, err := reg.strategyFor(elem.Type())
	if err != nil {
		return err
	}
	return s.Read(r, elem)
}

var defaultRegistry = NewRegistry()

func Marshal(v any) ([]byte, error) {
	return defaultRegistry.Marshal(v)
}

func Append(dst []byte, v any) ([]byte, error) {
	return defaultRegistry.Append(dst, v)
}

func Unmarshal(data []byte, out any) error {
	return defaultRegistry.Unmarshal(data, out)
}

func DecodeFrom(r *cursor.Reader, out any) error {
	return defaultRegistry.DecodeFrom(r, out)
}

// Register adds a strategy to the default registry.
func Register(s Strategy) {
	defaultRegistry.Register(s)
}
