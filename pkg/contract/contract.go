package contract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/contractkit/handler"
	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/logger"
	"github.com/dmitrymomot/contractkit/pkg/message"
	"github.com/dmitrymomot/contractkit/pkg/requestid"
)

// Route is one operation of a contract.
type Route struct {
	Method      string
	Path        string // chi pattern, e.g. /users/{id}
	ID          string // operationId, optional
	Summary     string
	Description string
	Tags        []string
	// Checks are validated against every request before Handler runs.
	Checks    []lens.Checker[message.Message]
	Responses []Response
	Handler   handler.HandlerFunc
}

// Response documents one possible response. Header and body lenses in
// Checks describe its headers and content.
type Response struct {
	Status      int
	Description string
	Checks      []lens.Checker[message.Message]
}

// Contract is an ordered set of routes with document metadata.
type Contract struct {
	title       string
	version     string
	description string
	docPath     string
	routes      []Route
	wrapOpts    []handler.WrapOption
	logger      *slog.Logger
}

// Option configures a Contract.
type Option func(*Contract)

func WithDescription(description string) Option {
	return func(c *Contract) { c.description = description }
}

// WithDocPath serves the OpenAPI document as JSON at path when mounted.
func WithDocPath(path string) Option {
	return func(c *Contract) { c.docPath = path }
}

// WithWrapOptions passes options to handler.Wrap for every route.
func WithWrapOptions(opts ...handler.WrapOption) Option {
	return func(c *Contract) { c.wrapOpts = append(c.wrapOpts, opts...) }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Contract) {
		if log != nil {
			c.logger = log
		}
	}
}

// New creates an empty contract.
func New(title, version string, opts ...Option) *Contract {
	c := &Contract{
		title:   title,
		version: version,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add registers routes in order. It rejects routes without a handler, with
// a malformed path, with path lenses absent from the path template, and
// method and path pairs that are already registered.
func (c *Contract) Add(routes ...Route) error {
	for _, r := range routes {
		r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
		if err := validateRoute(r); err != nil {
			return err
		}
		if slices.ContainsFunc(c.routes, func(existing Route) bool {
			return existing.Method == r.Method && docPath(existing.Path) == docPath(r.Path)
		}) {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, r.Method, r.Path)
		}
		c.routes = append(c.routes, r)
	}
	return nil
}

// Routes returns the registered routes in order.
func (c *Contract) Routes() []Route {
	return slices.Clone(c.routes)
}

// Mount registers every route on r. Requests are validated against all of
// the route's lenses before its handler runs.
func (c *Contract) Mount(r chi.Router) error {
	for _, route := range c.routes {
		opts := append(slices.Clone(c.wrapOpts),
			handler.WithLogger(c.logger),
			handler.WithPathParams(handler.ChiPathParams),
			handler.WithDecorators(handler.Validate(route.Checks...)),
		)
		r.Method(route.Method, route.Path, handler.Wrap(route.Handler, opts...))
		c.logger.Debug("route mounted",
			logger.Route(route.Method, route.Path),
			logger.Component("contract"),
		)
	}

	if c.docPath == "" {
		return nil
	}

	doc, err := c.OpenAPI(context.Background())
	if err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	resp := message.NewResponse(http.StatusOK).
		WithHeader(message.HeaderContentType, message.ContentTypeJSON).
		WithBody(body)

	r.Get(c.docPath, handler.Wrap(
		func(context.Context, message.Message) (message.Message, error) { return resp, nil },
		handler.WithLogger(c.logger),
	))
	return nil
}

// Handler mounts the contract on a new chi router that tags every request
// with a request id.
func (c *Contract) Handler() (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	if err := c.Mount(r); err != nil {
		return nil, err
	}
	return r, nil
}

func validateRoute(r Route) error {
	switch {
	case r.Method == "":
		return fmt.Errorf("%w: method is required", ErrInvalidRoute)
	case !strings.HasPrefix(r.Path, "/"):
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
	case r.Handler == nil:
		return fmt.Errorf("%w: %s %s has no handler", ErrInvalidRoute, r.Method, r.Path)
	}

	params := pathParams(r.Path)
	for _, check := range r.Checks {
		meta := check.Meta()
		if meta.Location == lens.LocationPath && !slices.Contains(params, meta.Name) {
			return fmt.Errorf("%w: path lens %q is not in %s", ErrInvalidRoute, meta.Name, r.Path)
		}
	}
	return nil
}

// routeParam matches a chi placeholder with an optional regexp.
var routeParam = regexp.MustCompile(`\{([^{}:]+)(?::[^{}]*)?\}`)

// docPath strips regexps from chi placeholders.
func docPath(path string) string {
	return routeParam.ReplaceAllString(path, "{$1}")
}

func pathParams(path string) []string {
	matches := routeParam.FindAllStringSubmatch(path, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
