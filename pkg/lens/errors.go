package lens

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrContractBreach matches any *ContractBreach with errors.Is.
	ErrContractBreach = errors.New("contract breach")
	// ErrTypeConversion wraps every failure to convert a raw value.
	ErrTypeConversion = errors.New("type conversion failed")
	// ErrReadOnly is the panic value when injecting through a one-way lens.
	ErrReadOnly = errors.New("lens cannot inject values")
)

// Reason describes why a slot failed.
type Reason string

const (
	ReasonMissing     Reason = "missing"
	ReasonInvalid     Reason = "invalid"
	ReasonUnsupported Reason = "unsupported"
)

// Failure records one slot that did not satisfy its lens.
type Failure struct {
	Name     string
	Location Location
	// Required is true when the failure is fatal: the slot was required and
	// absent, or it was present and could not be converted.
	Required bool
	Reason   Reason
	Err      error
}

func (f Failure) Error() string {
	switch f.Reason {
	case ReasonMissing:
		return fmt.Sprintf("%s %q is required", f.Location, f.Name)
	case ReasonUnsupported:
		return fmt.Sprintf("%s %q has an unsupported value", f.Location, f.Name)
	default:
		if f.Err != nil {
			return fmt.Sprintf("%s %q is invalid: %v", f.Location, f.Name, f.Err)
		}
		return fmt.Sprintf("%s %q is invalid", f.Location, f.Name)
	}
}

func (f Failure) Unwrap() error {
	return f.Err
}

// ContractBreach aggregates one or more failures.
type ContractBreach struct {
	Failures []Failure
}

// NewContractBreach returns nil when no failures are given.
func NewContractBreach(failures ...Failure) error {
	if len(failures) == 0 {
		return nil
	}
	return &ContractBreach{Failures: append([]Failure(nil), failures...)}
}

func (b *ContractBreach) Error() string {
	if len(b.Failures) == 0 {
		return ErrContractBreach.Error()
	}

	parts := make([]string, 0, len(b.Failures))
	for _, f := range b.Failures {
		parts = append(parts, f.Error())
	}
	return ErrContractBreach.Error() + ": " + strings.Join(parts, "; ")
}

func (b *ContractBreach) Is(target error) bool {
	return target == ErrContractBreach
}

func (b *ContractBreach) Unwrap() []error {
	errs := make([]error, 0, len(b.Failures))
	for _, f := range b.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Has reports whether the named slot failed.
func (b *ContractBreach) Has(name string) bool {
	for _, f := range b.Failures {
		if f.Name == name {
			return true
		}
	}
	return false
}

// AsContractBreach extracts a *ContractBreach from err.
func AsContractBreach(err error) (*ContractBreach, bool) {
	var breach *ContractBreach
	if errors.As(err, &breach) {
		return breach, true
	}
	return nil, false
}

// Failures returns the failures carried by err, or nil.
func Failures(err error) []Failure {
	if breach, ok := AsContractBreach(err); ok {
		return breach.Failures
	}
	return nil
}

func missing(meta Meta) error {
	return &ContractBreach{Failures: []Failure{{
		Name:     meta.Name,
		Location: meta.Location,
		Required: true,
		Reason:   ReasonMissing,
	}}}
}

// invalid converts a locate or conversion error into a breach.
// Breaches raised further down, such as form validation, pass through as is.
func invalid(meta Meta, err error) error {
	if breach, ok := AsContractBreach(err); ok {
		return breach
	}
	if !errors.Is(err, ErrTypeConversion) {
		err = fmt.Errorf("%w: %w", ErrTypeConversion, err)
	}
	return &ContractBreach{Failures: []Failure{{
		Name:     meta.Name,
		Location: meta.Location,
		Required: true,
		Reason:   ReasonInvalid,
		Err:      err,
	}}}
}
