package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/contractkit/pkg/message"
)

// HandlerFunc handles a request message and returns a response message.
//
//	greet := handler.HandlerFunc(func(ctx context.Context, req message.Message) (message.Message, error) {
//		name, err := nameQuery.Extract(req)
//		if err != nil {
//			return message.Message{}, err
//		}
//		return handler.Text(http.StatusOK, "hello "+name), nil
//	})
type HandlerFunc func(ctx context.Context, req message.Message) (message.Message, error)

// ErrorHandler renders errors returned while reading the request or by the handler.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in a list is the outermost wrapper.
type Decorator func(HandlerFunc) HandlerFunc

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	maxBodyBytes int64
	pathParams   message.PathParamsExtractor
	errorHandler ErrorHandler
	decorators   []Decorator
	logger       *slog.Logger
}

// WithConfig applies settings loaded from the environment.
func WithConfig(cfg Config) WrapOption {
	return WithMaxBodyBytes(cfg.MaxBodyBytes)
}

// WithMaxBodyBytes caps the request body size. Non-positive values are ignored.
func WithMaxBodyBytes(n int64) WrapOption {
	return func(c *wrapConfig) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithPathParams sets the extractor used to fill the path slots of requests,
// e.g. ChiPathParams.
func WithPathParams(fn message.PathParamsExtractor) WrapOption {
	return func(c *wrapConfig) {
		if fn != nil {
			c.pathParams = fn
		}
	}
}

// WithErrorHandler replaces the JSON error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger(log *slog.Logger) WrapOption {
	return func(c *wrapConfig) {
		if log != nil {
			c.logger = log
		}
	}
}

// WithDecorators adds decorators around the handler.
func WithDecorators(decorators ...Decorator) WrapOption {
	return func(c *wrapConfig) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// Wrap converts a HandlerFunc to an http.HandlerFunc.
//
//	r := chi.NewRouter()
//	r.Post("/users/{id}", handler.Wrap(updateUser,
//		handler.WithPathParams(handler.ChiPathParams),
//		handler.WithDecorators(handler.Validate(userID, form)),
//	))
func Wrap(h HandlerFunc, opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{
		maxBodyBytes: message.DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		log := cfg.logger
		if log == nil {
			log = slog.Default()
		}
		cfg.errorHandler = NewErrorHandler(log)
	}

	final := Chain(h, cfg.decorators...)

	readOpts := []message.Option{message.WithMaxBodyBytes(cfg.maxBodyBytes)}
	if cfg.pathParams != nil {
		readOpts = append(readOpts, message.WithPathParams(cfg.pathParams))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		req, err := message.FromRequest(r, readOpts...)
		if err != nil {
			cfg.errorHandler(w, r, requestError(err))
			return
		}

		resp, err := final(r.Context(), req)
		if err != nil {
			cfg.errorHandler(w, r, err)
			return
		}
		if err := resp.Write(w); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}

// Chain applies decorators so that the first one is outermost.
func Chain(h HandlerFunc, decorators ...Decorator) HandlerFunc {
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] != nil {
			h = decorators[i](h)
		}
	}
	return h
}

func requestError(err error) error {
	if errors.Is(err, message.ErrBodyTooLarge) {
		return errors.Join(ErrRequestEntityTooLarge, err)
	}
	return errors.Join(ErrBadRequest, err)
}
