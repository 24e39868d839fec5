package lens

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/contractkit/pkg/message"
)

// Spec binds a Locator to a BiDiMapper and produces lenses over target T
// with domain values of type V. RAW is the representation stored in the slot.
type Spec[T, RAW, V any] struct {
	locator   Locator[T, RAW]
	mapper    BiDiMapper[RAW, V]
	paramType ParamType
}

// NewSpec creates a Spec from a locator and a mapper.
func NewSpec[T, RAW, V any](locator Locator[T, RAW], mapper BiDiMapper[RAW, V]) Spec[T, RAW, V] {
	return Spec[T, RAW, V]{locator: locator, mapper: mapper, paramType: ParamString}
}

// Common specs over HTTP messages.
var (
	Header = NewSpec[message.Message, string, string](headerLocator{}, Identity[string]())
	Query  = NewSpec[message.Message, string, string](queryLocator{}, Identity[string]())
	Path   = NewSpec[message.Message, string, string](pathLocator{}, Identity[string]())
)

func (s Spec[T, RAW, V]) Location() Location   { return s.locator.Location() }
func (s Spec[T, RAW, V]) ParamType() ParamType { return s.paramType }

// Typed returns a copy of s documented with the given parameter type.
func (s Spec[T, RAW, V]) Typed(p ParamType) Spec[T, RAW, V] {
	s.paramType = p
	return s
}

// Map derives a Spec over a new domain type. The locator is left untouched.
func Map[T, RAW, V, N any](s Spec[T, RAW, V], in func(V) (N, error), out func(N) V) Spec[T, RAW, N] {
	return Spec[T, RAW, N]{
		locator:   s.locator,
		mapper:    Compose(s.mapper, in, out),
		paramType: s.paramType,
	}
}

// MapIn derives a one-way Spec. Lenses built from it can extract but panic
// with ErrReadOnly when asked to inject.
func MapIn[T, RAW, V, N any](s Spec[T, RAW, V], in func(V) (N, error)) Spec[T, RAW, N] {
	return Map(s, in, nil)
}

// MapWith derives a Spec by chaining another mapper.
func MapWith[T, RAW, V, N any](s Spec[T, RAW, V], m BiDiMapper[V, N]) Spec[T, RAW, N] {
	return Spec[T, RAW, N]{
		locator:   s.locator,
		mapper:    Chain(s.mapper, m),
		paramType: s.paramType,
	}
}

func Int[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, int] {
	return MapWith(s, IntMapper).Typed(ParamInteger)
}

func Int64[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, int64] {
	return MapWith(s, Int64Mapper).Typed(ParamInteger)
}

func Float64[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, float64] {
	return MapWith(s, Float64Mapper).Typed(ParamNumber)
}

func Bool[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, bool] {
	return MapWith(s, BoolMapper).Typed(ParamBoolean)
}

func UUID[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, uuid.UUID] {
	return MapWith(s, UUIDMapper).Typed(ParamUUID)
}

func Duration[T, RAW any](s Spec[T, RAW, string]) Spec[T, RAW, time.Duration] {
	return MapWith(s, DurationMapper).Typed(ParamDuration)
}

// Time parses values with the given layout, e.g. time.RFC3339.
func Time[T, RAW any](s Spec[T, RAW, string], layout string) Spec[T, RAW, time.Time] {
	return MapWith(s, TimeMapper(layout)).Typed(ParamDateTime)
}

// Required returns a lens that fails when the slot is absent.
func (s Spec[T, RAW, V]) Required(name string, opts ...Option) RequiredLens[T, V] {
	meta := s.meta(name, true, false, opts)
	return RequiredLens[T, V]{
		meta: meta,
		get: func(target T) (V, error) {
			v, ok, err := s.first(target, meta)
			if err != nil {
				return v, err
			}
			if !ok {
				return v, missing(meta)
			}
			return v, nil
		},
		set: func(target T, values []V) T { return s.inject(target, meta, values) },
	}
}

// Optional returns a lens that reports an absent slot as nil.
func (s Spec[T, RAW, V]) Optional(name string, opts ...Option) OptionalLens[T, V] {
	meta := s.meta(name, false, false, opts)
	return OptionalLens[T, V]{
		meta: meta,
		get: func(target T) (*V, error) {
			v, ok, err := s.first(target, meta)
			if err != nil || !ok {
				return nil, err
			}
			return &v, nil
		},
		set: func(target T, values []V) T { return s.inject(target, meta, values) },
	}
}

// Multi returns a lens over every value of the slot.
func (s Spec[T, RAW, V]) Multi(name string, opts ...Option) MultiLens[T, V] {
	meta := s.meta(name, false, true, opts)
	return MultiLens[T, V]{
		meta: meta,
		get:  func(target T) ([]V, error) { return s.all(target, meta) },
		set:  func(target T, values []V) T { return s.inject(target, meta, values) },
		add: func(target T, value V) T {
			s.mustMapOut(meta)
			// A locate failure means the slot holds nothing usable yet.
			raws, _ := s.locator.Get(target, meta.Name)
			raws = append(raws, s.mapper.MapOut(value))
			return s.locator.Set(target, meta.Name, raws)
		},
	}
}

func (s Spec[T, RAW, V]) meta(name string, required, multi bool, opts []Option) Meta {
	m := Meta{
		Name:      name,
		Location:  s.locator.Location(),
		Required:  required,
		Multi:     multi,
		ParamType: s.paramType,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// first converts only the first raw value of the slot.
func (s Spec[T, RAW, V]) first(target T, meta Meta) (V, bool, error) {
	var zero V
	raws, err := s.locator.Get(target, meta.Name)
	if err != nil {
		return zero, false, invalid(meta, err)
	}
	if len(raws) == 0 {
		return zero, false, nil
	}
	v, err := s.mapper.MapIn(raws[0])
	if err != nil {
		return zero, false, invalid(meta, err)
	}
	return v, true, nil
}

func (s Spec[T, RAW, V]) all(target T, meta Meta) ([]V, error) {
	raws, err := s.locator.Get(target, meta.Name)
	if err != nil {
		return nil, invalid(meta, err)
	}
	if len(raws) == 0 {
		return nil, nil
	}
	values := make([]V, 0, len(raws))
	for _, raw := range raws {
		v, err := s.mapper.MapIn(raw)
		if err != nil {
			return nil, invalid(meta, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func (s Spec[T, RAW, V]) inject(target T, meta Meta, values []V) T {
	s.mustMapOut(meta)
	raws := make([]RAW, 0, len(values))
	for _, v := range values {
		raws = append(raws, s.mapper.MapOut(v))
	}
	return s.locator.Set(target, meta.Name, raws)
}

func (s Spec[T, RAW, V]) mustMapOut(meta Meta) {
	if !s.mapper.CanMapOut() {
		panic(fmt.Errorf("%w: %s %q", ErrReadOnly, meta.Location, meta.Name))
	}
}
