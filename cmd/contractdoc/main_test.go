package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/contractkit/handler"
	"github.com/dmitrymomot/contractkit/pkg/contract"
	"github.com/dmitrymomot/contractkit/pkg/logger"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

func TestRender(t *testing.T) {
	t.Parallel()

	doc := map[string]any{"openapi": "3.0.3", "paths": map[string]any{"/a": map[string]any{}}}

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		out, err := render(doc, "JSON")
		require.NoError(t, err)
		assert.JSONEq(t, `{"openapi":"3.0.3","paths":{"/a":{}}}`, string(out))
	})

	t.Run("yaml in block style", func(t *testing.T) {
		t.Parallel()
		out, err := render(doc, "yaml")
		require.NoError(t, err)
		assert.Contains(t, string(out), "openapi: 3.0.3\n")
		assert.NotContains(t, string(out), "{\"")

		var back map[string]any
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, "3.0.3", back["openapi"])
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := render(doc, "xml")
		assert.ErrorIs(t, err, errUnknownFormat)
	})
}

func TestAccounts(t *testing.T) {
	t.Parallel()

	c, err := accounts("accounts", "1.0.0", logger.Discard())
	require.NoError(t, err)

	t.Run("document is valid", func(t *testing.T) {
		t.Parallel()
		doc, err := c.OpenAPI(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, doc.Paths.Value("/accounts/{id}"))
	})

	srv, err := c.Handler()
	require.NoError(t, err)

	signup := func(body string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
		r.Header.Set("Content-Type", message.ContentTypeFormURLEncoded)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)
		return w
	}

	t.Run("creates an account", func(t *testing.T) {
		t.Parallel()
		w := signup("email=a%40b.io&age=30&newsletter=on")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/accounts/a@b.io", w.Header().Get("Location"))
	})

	t.Run("echoes invalid fields", func(t *testing.T) {
		t.Parallel()
		w := signup("email=a%40b.io&age=young")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Contains(t, got.Error.Details, "age")
	})

	t.Run("rejects malformed ids", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts/nope", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists with default limit", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/accounts", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":[],"meta":{"limit":20}}`, w.Body.String())
	})
}

func TestAccountsBodyLimit(t *testing.T) {
	t.Parallel()

	c, err := accounts("accounts", "1.0.0", logger.Discard(),
		contract.WithWrapOptions(handler.WithConfig(handler.Config{MaxBodyBytes: 8})),
	)
	require.NoError(t, err)
	srv, err := c.Handler()
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("email=someone%40example.com&age=30"))
	r.Header.Set("Content-Type", message.ContentTypeFormURLEncoded)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
