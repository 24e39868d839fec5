package handler

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

// Validate checks every lens against the request before calling next.
// Failures of all lenses are collected into one *lens.ContractBreach in
// declaration order.
func Validate(checks ...lens.Checker[message.Message]) Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req message.Message) (message.Message, error) {
			if err := Check(req, checks...); err != nil {
				return message.Message{}, err
			}
			return next(ctx, req)
		}
	}
}

// Check runs the checks and merges their failures. Errors that are not
// contract breaches are reported as invalid failures of the lens.
func Check(req message.Message, checks ...lens.Checker[message.Message]) error {
	var failures []lens.Failure
	for _, c := range checks {
		err := c.Check(req)
		if err == nil {
			continue
		}
		if fs := lens.Failures(err); len(fs) > 0 {
			failures = append(failures, fs...)
			continue
		}
		meta := c.Meta()
		failures = append(failures, lens.Failure{
			Name:     meta.Name,
			Location: meta.Location,
			Required: true,
			Reason:   lens.ReasonInvalid,
			Err:      err,
		})
	}
	return lens.NewContractBreach(failures...)
}

// Recover turns panics in next into errors wrapping ErrPanicRecovered.
func Recover() Decorator {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, req message.Message) (resp message.Message, err error) {
			defer func() {
				if v := recover(); v != nil {
					if e, ok := v.(error); ok {
						err = fmt.Errorf("%w: %w", ErrPanicRecovered, e)
					} else {
						err = fmt.Errorf("%w: %v", ErrPanicRecovered, v)
					}
					resp = message.Message{}
				}
			}()
			return next(ctx, req)
		}
	}
}
