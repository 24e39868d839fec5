package lens

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BiDiMapper converts raw values into domain values and back.
// MapIn may fail; MapOut is total.
type BiDiMapper[IN, OUT any] struct {
	in  func(IN) (OUT, error)
	out func(OUT) IN
}

// NewBiDiMapper builds a mapper from both directions.
// A nil out produces a one-way mapper.
func NewBiDiMapper[IN, OUT any](in func(IN) (OUT, error), out func(OUT) IN) BiDiMapper[IN, OUT] {
	return BiDiMapper[IN, OUT]{in: in, out: out}
}

// Identity returns a mapper that passes values through unchanged.
func Identity[T any]() BiDiMapper[T, T] {
	return BiDiMapper[T, T]{
		in:  func(v T) (T, error) { return v, nil },
		out: func(v T) T { return v },
	}
}

func (m BiDiMapper[IN, OUT]) MapIn(v IN) (OUT, error) {
	return m.in(v)
}

// MapOut panics with ErrReadOnly on a one-way mapper.
func (m BiDiMapper[IN, OUT]) MapOut(v OUT) IN {
	if m.out == nil {
		panic(ErrReadOnly)
	}
	return m.out(v)
}

// CanMapOut reports whether the mapper supports the out direction.
func (m BiDiMapper[IN, OUT]) CanMapOut() bool {
	return m.out != nil
}

// Compose chains a further conversion onto m. The raw value is converted by m
// exactly once; in and out then operate on its result.
func Compose[IN, OUT, NEXT any](m BiDiMapper[IN, OUT], in func(OUT) (NEXT, error), out func(NEXT) OUT) BiDiMapper[IN, NEXT] {
	next := BiDiMapper[IN, NEXT]{
		in: func(raw IN) (NEXT, error) {
			v, err := m.in(raw)
			if err != nil {
				var zero NEXT
				return zero, err
			}
			return in(v)
		},
	}
	if out != nil && m.out != nil {
		next.out = func(v NEXT) IN { return m.out(out(v)) }
	}
	return next
}

// ComposeIn chains a one-way conversion onto m.
func ComposeIn[IN, OUT, NEXT any](m BiDiMapper[IN, OUT], in func(OUT) (NEXT, error)) BiDiMapper[IN, NEXT] {
	return Compose(m, in, nil)
}

// Chain composes two mappers.
func Chain[IN, OUT, NEXT any](m BiDiMapper[IN, OUT], next BiDiMapper[OUT, NEXT]) BiDiMapper[IN, NEXT] {
	return Compose(m, next.in, next.out)
}

var (
	IntMapper = NewBiDiMapper(func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: invalid int value %q", ErrTypeConversion, s)
		}
		return n, nil
	}, strconv.Itoa)

	Int64Mapper = NewBiDiMapper(func(s string) (int64, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid int64 value %q", ErrTypeConversion, s)
		}
		return n, nil
	}, func(n int64) string { return strconv.FormatInt(n, 10) })

	Float64Mapper = NewBiDiMapper(func(s string) (float64, error) {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid float value %q", ErrTypeConversion, s)
		}
		return n, nil
	}, func(n float64) string { return strconv.FormatFloat(n, 'f', -1, 64) })

	// BoolMapper accepts strconv.ParseBool input plus on/off and yes/no.
	BoolMapper = NewBiDiMapper(parseBool, strconv.FormatBool)

	UUIDMapper = NewBiDiMapper(func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(strings.TrimSpace(s))
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: invalid uuid value %q", ErrTypeConversion, s)
		}
		return id, nil
	}, uuid.UUID.String)

	DurationMapper = NewBiDiMapper(func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%w: invalid duration value %q", ErrTypeConversion, s)
		}
		return d, nil
	}, time.Duration.String)
)

// TimeMapper parses and formats times with the given layout.
func TimeMapper(layout string) BiDiMapper[string, time.Time] {
	return NewBiDiMapper(func(s string) (time.Time, error) {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid time value %q", ErrTypeConversion, s)
		}
		return t, nil
	}, func(t time.Time) string { return t.Format(layout) })
}

func parseBool(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err == nil {
		return b, nil
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w: invalid bool value %q", ErrTypeConversion, s)
	}
}
