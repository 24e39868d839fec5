package lens

// Checker is the value-independent view of a lens. It is what form bodies
// and contract routes use to validate a target against lenses of mixed types.
type Checker[T any] interface {
	Meta() Meta
	Check(target T) error
}

// Binding applies one value to a target.
type Binding[T any] func(T) T

// With applies the bindings from left to right, each one to the result of
// the previous. When two bindings write the same slot the last one wins.
func With[T any](target T, bindings ...Binding[T]) T {
	for _, bind := range bindings {
		if bind != nil {
			target = bind(target)
		}
	}
	return target
}

// RequiredLens extracts exactly one value and fails when it is absent.
type RequiredLens[T, V any] struct {
	meta Meta
	get  func(T) (V, error)
	set  func(T, []V) T
}

func (l RequiredLens[T, V]) Meta() Meta { return l.meta }

// Extract returns the value or a *ContractBreach.
func (l RequiredLens[T, V]) Extract(target T) (V, error) {
	return l.get(target)
}

// Inject returns a copy of target with the slot holding only value.
func (l RequiredLens[T, V]) Inject(value V, target T) T {
	return l.set(target, []V{value})
}

func (l RequiredLens[T, V]) Of(value V) Binding[T] {
	return func(target T) T { return l.Inject(value, target) }
}

func (l RequiredLens[T, V]) Check(target T) error {
	_, err := l.get(target)
	return err
}

// OptionalLens extracts at most one value; absence is not an error.
type OptionalLens[T, V any] struct {
	meta Meta
	get  func(T) (*V, error)
	set  func(T, []V) T
}

func (l OptionalLens[T, V]) Meta() Meta { return l.meta }

// Extract returns nil when the slot is absent.
func (l OptionalLens[T, V]) Extract(target T) (*V, error) {
	return l.get(target)
}

// Inject returns a copy of target with the slot holding only value.
func (l OptionalLens[T, V]) Inject(value V, target T) T {
	return l.set(target, []V{value})
}

// Clear returns a copy of target without the slot.
func (l OptionalLens[T, V]) Clear(target T) T {
	return l.set(target, nil)
}

func (l OptionalLens[T, V]) Of(value V) Binding[T] {
	return func(target T) T { return l.Inject(value, target) }
}

// OfPtr clears the slot when value is nil.
func (l OptionalLens[T, V]) OfPtr(value *V) Binding[T] {
	return func(target T) T {
		if value == nil {
			return l.Clear(target)
		}
		return l.Inject(*value, target)
	}
}

func (l OptionalLens[T, V]) Check(target T) error {
	_, err := l.get(target)
	return err
}

// MultiLens extracts every value of the slot.
type MultiLens[T, V any] struct {
	meta Meta
	get  func(T) ([]V, error)
	set  func(T, []V) T
	add  func(T, V) T
}

func (l MultiLens[T, V]) Meta() Meta { return l.meta }

// Extract returns all values; an absent slot yields an empty result.
func (l MultiLens[T, V]) Extract(target T) ([]V, error) {
	return l.get(target)
}

// Inject replaces all values of the slot.
func (l MultiLens[T, V]) Inject(values []V, target T) T {
	return l.set(target, values)
}

// Append adds one value after the ones already in the slot.
func (l MultiLens[T, V]) Append(value V, target T) T {
	return l.add(target, value)
}

func (l MultiLens[T, V]) Of(values ...V) Binding[T] {
	return func(target T) T { return l.Inject(values, target) }
}

func (l MultiLens[T, V]) Check(target T) error {
	_, err := l.get(target)
	return err
}
