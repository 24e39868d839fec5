package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

const codeContractBreach = "contract_breach"

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

type jsonResponse struct {
	status int
	body   JSONResponse
}

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON builds a response message with v wrapped in the "data" envelope.
func JSON(v any, opts ...JSONOption) (message.Message, error) {
	r := &jsonResponse{status: http.StatusOK}
	r.body.Data = v
	for _, opt := range opts {
		opt(r)
	}
	return r.message()
}

// JSONError builds an error response message. The status defaults to the
// one implied by err and can be overridden with WithJSONStatus.
func JSONError(err error, opts ...JSONOption) message.Message {
	r := &jsonResponse{}
	r.body.Error, r.status = errorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}

	m, encErr := r.message()
	if encErr != nil {
		// Error details are strings only; encoding cannot fail.
		return message.NewResponse(http.StatusInternalServerError)
	}
	return m
}

// Text builds a plain text response message.
func Text(status int, body string) message.Message {
	return message.NewResponse(status).
		WithHeader(message.HeaderContentType, message.ContentTypeText).
		WithBody([]byte(body))
}

func (r *jsonResponse) message() (message.Message, error) {
	b, err := json.Marshal(r.body)
	if err != nil {
		return message.Message{}, err
	}
	return message.NewResponse(r.status).
		WithHeader(message.HeaderContentType, message.ContentTypeJSON).
		WithBody(append(b, '\n')), nil
}

// errorToDetail converts err to an ErrorDetail and the matching status.
func errorToDetail(err error) (*ErrorDetail, int) {
	if breach, ok := lens.AsContractBreach(err); ok {
		return breachDetail(breach), http.StatusBadRequest
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}, httpErr.Code
	}

	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}

func breachDetail(b *lens.ContractBreach) *ErrorDetail {
	details := make(map[string][]string, len(b.Failures))
	for _, f := range b.Failures {
		details[f.Name] = append(details[f.Name], f.Error())
	}
	return &ErrorDetail{
		Code:    codeContractBreach,
		Message: http.StatusText(http.StatusBadRequest),
		Details: details,
	}
}
