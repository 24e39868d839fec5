package contract

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/dmitrymomot/contractkit/pkg/lens"
)

const openAPIVersion = "3.0.3"

// OpenAPI builds and validates an OpenAPI 3 document from the routes and
// the metadata of their lenses.
func (c *Contract) OpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       c.title,
			Version:     c.version,
			Description: c.description,
		},
		Paths: openapi3.NewPaths(),
	}

	for _, r := range c.routes {
		doc.AddOperation(docPath(r.Path), r.Method, operation(r))
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}

func operation(r Route) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = r.ID
	op.Summary = r.Summary
	op.Description = r.Description
	op.Tags = r.Tags

	declared := make(map[string]bool)
	for _, check := range r.Checks {
		meta := check.Meta()
		switch meta.Location {
		case lens.LocationBody:
			op.RequestBody = &openapi3.RequestBodyRef{Value: requestBody(meta)}
		case lens.LocationPath:
			declared[meta.Name] = true
			op.AddParameter(parameter(openapi3.NewPathParameter(meta.Name), meta))
		case lens.LocationHeader:
			op.AddParameter(parameter(openapi3.NewHeaderParameter(meta.Name).WithRequired(meta.Required), meta))
		case lens.LocationQuery:
			op.AddParameter(parameter(openapi3.NewQueryParameter(meta.Name).WithRequired(meta.Required), meta))
		}
	}
	// Placeholders without a lens are still path parameters.
	for _, name := range pathParams(r.Path) {
		if !declared[name] {
			op.AddParameter(openapi3.NewPathParameter(name).WithSchema(openapi3.NewStringSchema()))
		}
	}

	op.Responses = &openapi3.Responses{}
	responses := r.Responses
	if len(responses) == 0 {
		responses = []Response{{Status: http.StatusOK}}
	}
	for _, resp := range responses {
		op.AddResponse(resp.Status, response(resp))
	}
	if len(r.Checks) > 0 && op.Responses.Value("400") == nil {
		op.AddResponse(http.StatusBadRequest,
			openapi3.NewResponse().WithDescription("The request breaks the contract"))
	}
	return op
}

func parameter(p *openapi3.Parameter, meta lens.Meta) *openapi3.Parameter {
	return p.WithDescription(meta.Description).WithSchema(schema(meta))
}

func requestBody(meta lens.Meta) *openapi3.RequestBody {
	mediaType := meta.MediaType
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return openapi3.NewRequestBody().
		WithDescription(meta.Description).
		WithRequired(meta.Required).
		WithContent(openapi3.Content{
			mediaType: openapi3.NewMediaType().WithSchema(schema(meta)),
		})
}

func response(r Response) *openapi3.Response {
	description := r.Description
	if description == "" {
		description = http.StatusText(r.Status)
	}
	resp := openapi3.NewResponse().WithDescription(description)

	for _, check := range r.Checks {
		meta := check.Meta()
		switch meta.Location {
		case lens.LocationHeader:
			if resp.Headers == nil {
				resp.Headers = openapi3.Headers{}
			}
			resp.Headers[meta.Name] = &openapi3.HeaderRef{Value: &openapi3.Header{
				Parameter: openapi3.Parameter{
					Description: meta.Description,
					Required:    meta.Required,
					Schema:      schema(meta).NewRef(),
				},
			}}
		case lens.LocationBody:
			mediaType := meta.MediaType
			if mediaType == "" {
				mediaType = "application/octet-stream"
			}
			resp.WithContent(openapi3.Content{
				mediaType: openapi3.NewMediaType().WithSchema(schema(meta)),
			})
		}
	}
	return resp
}

// schema maps a lens parameter type to a JSON schema. Multi-valued lenses
// become arrays; form bodies become objects with one property per field.
func schema(meta lens.Meta) *openapi3.Schema {
	var s *openapi3.Schema
	switch meta.ParamType {
	case lens.ParamInteger:
		s = openapi3.NewIntegerSchema()
	case lens.ParamNumber:
		s = openapi3.NewFloat64Schema()
	case lens.ParamBoolean:
		s = openapi3.NewBoolSchema()
	case lens.ParamUUID:
		s = openapi3.NewUUIDSchema()
	case lens.ParamDuration:
		s = openapi3.NewStringSchema().WithFormat("duration")
	case lens.ParamDateTime:
		s = openapi3.NewDateTimeSchema()
	case lens.ParamBinary:
		s = openapi3.NewStringSchema().WithFormat("binary")
	case lens.ParamObject:
		s = openapi3.NewObjectSchema()
		for _, field := range meta.Fields {
			fs := schema(field)
			fs.Description = field.Description
			s.WithProperty(field.Name, fs)
			if field.Required {
				s.Required = append(s.Required, field.Name)
			}
		}
	default:
		s = openapi3.NewStringSchema()
	}

	if meta.Multi {
		return openapi3.NewArraySchema().WithItems(s)
	}
	return s
}
