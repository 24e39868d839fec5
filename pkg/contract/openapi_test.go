package contract_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contractkit/pkg/contract"
	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

func documentJSON(t *testing.T, c *contract.Contract) map[string]any {
	t.Helper()
	doc, err := c.OpenAPI(context.Background())
	require.NoError(t, err)
	b, err := json.Marshal(doc)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	return got
}

func lookup(t *testing.T, v any, keys ...string) any {
	t.Helper()
	for _, k := range keys {
		m, ok := v.(map[string]any)
		require.True(t, ok, "expected object at %q", k)
		v, ok = m[k]
		require.True(t, ok, "missing key %q", k)
	}
	return v
}

func TestOpenAPI(t *testing.T) {
	t.Parallel()

	doc := documentJSON(t, newContract(t, contract.WithDescription("user management")))
	op := lookup(t, doc, "paths", "/users/{id}", "post")

	t.Run("info", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, map[string]any{
			"title":       "users",
			"version":     "1.0.0",
			"description": "user management",
		}, doc["info"])
	})

	t.Run("operation metadata", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "updateUser", lookup(t, op, "operationId"))
		assert.Equal(t, "Update a user", lookup(t, op, "summary"))
		assert.Equal(t, []any{"users"}, lookup(t, op, "tags"))
	})

	t.Run("parameters follow lens order", func(t *testing.T) {
		t.Parallel()
		want := []any{
			map[string]any{
				"name": "id", "in": "path", "required": true, "description": "user id",
				"schema": map[string]any{"type": "integer"},
			},
			map[string]any{
				"name": "X-Token", "in": "header", "required": true,
				"schema": map[string]any{"type": "string"},
			},
			map[string]any{
				"name": "tag", "in": "query",
				"schema": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
		}
		if diff := cmp.Diff(want, lookup(t, op, "parameters")); diff != "" {
			t.Errorf("parameters mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("form body lists its fields", func(t *testing.T) {
		t.Parallel()
		body := lookup(t, op, "requestBody")
		assert.Equal(t, true, lookup(t, body, "required"))

		s := lookup(t, body, "content", message.ContentTypeFormURLEncoded, "schema")
		assert.Equal(t, "object", lookup(t, s, "type"))
		assert.Equal(t, []any{"age"}, lookup(t, s, "required"))
		assert.Equal(t, map[string]any{"type": "integer"}, lookup(t, s, "properties", "age"))
		assert.Equal(t, map[string]any{"type": "string"}, lookup(t, s, "properties", "nick"))
	})

	t.Run("responses", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Updated", lookup(t, op, "responses", "200", "description"))
		assert.Equal(t, map[string]any{"type": "string"},
			lookup(t, op, "responses", "200", "headers", "Location", "schema"))
		assert.Equal(t, "The request breaks the contract", lookup(t, op, "responses", "400", "description"))
	})
}

func TestOpenAPIDefaults(t *testing.T) {
	t.Parallel()

	noop := func(context.Context, message.Message) (message.Message, error) {
		return message.NewResponse(http.StatusOK), nil
	}
	c := contract.New("files", "2")
	require.NoError(t, c.Add(
		contract.Route{Method: http.MethodGet, Path: "/files/{name:[a-z]+}", Handler: noop},
		contract.Route{
			Method:  http.MethodPut,
			Path:    "/files/{name}",
			Checks:  []lens.Checker[message.Message]{lens.Body.Required(), lens.UUID(lens.Header).Optional("X-Request-Id")},
			Handler: noop,
		},
	))

	doc := documentJSON(t, c)

	get := lookup(t, doc, "paths", "/files/{name}", "get")
	assert.Equal(t, []any{map[string]any{
		"name": "name", "in": "path", "required": true, "schema": map[string]any{"type": "string"},
	}}, lookup(t, get, "parameters"))
	assert.Equal(t, "OK", lookup(t, get, "responses", "200", "description"))

	put := lookup(t, doc, "paths", "/files/{name}", "put")
	assert.Equal(t, map[string]any{"type": "string", "format": "binary"},
		lookup(t, put, "requestBody", "content", "application/octet-stream", "schema"))
	assert.Equal(t, map[string]any{"type": "string", "format": "uuid"},
		lookup(t, put, "parameters").([]any)[0].(map[string]any)["schema"])
}
