package lens_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/dmitrymomot/contractkit/pkg/lens"
	"github.com/dmitrymomot/contractkit/pkg/message"
)

func TestBody(t *testing.T) {
	t.Parallel()

	t.Run("raw bytes", func(t *testing.T) {
		body := lens.Body.Required()
		msg := body.Inject([]byte{0x00, 0xff}, message.NewResponse(http.StatusOK))

		got, err := body.Extract(msg)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0xff}, got)
		assert.Equal(t, "body", body.Meta().Name)
		assert.Equal(t, lens.ParamBinary, body.Meta().ParamType)
		assert.Equal(t, "application/octet-stream", body.Meta().MediaType)
	})

	t.Run("missing body fails", func(t *testing.T) {
		_, err := lens.BodyText.Required().Extract(message.NewResponse(http.StatusOK))
		failures := lens.Failures(err)
		require.Len(t, failures, 1)
		assert.Equal(t, lens.Failure{Name: "body", Location: lens.LocationBody, Required: true, Reason: lens.ReasonMissing}, failures[0])
	})

	t.Run("empty body is present", func(t *testing.T) {
		got, err := lens.BodyText.Required().Extract(message.NewResponse(http.StatusOK).WithBody([]byte{}))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("utf-8 text", func(t *testing.T) {
		body := lens.BodyText.Required(lens.WithDescription("greeting"))
		msg := body.Inject("héllo", message.NewResponse(http.StatusOK))

		assert.Equal(t, []byte("héllo"), msg.Body())
		got, err := body.Extract(msg)
		require.NoError(t, err)
		assert.Equal(t, "héllo", got)
		assert.Equal(t, "greeting", body.Meta().Description)
		assert.Equal(t, "text/plain", body.Meta().MediaType)
	})

	t.Run("explicit encoding", func(t *testing.T) {
		body := lens.BodyString(charmap.ISO8859_1).Required()
		msg := body.Inject("héllo", message.NewResponse(http.StatusOK))

		assert.Equal(t, []byte{'h', 0xe9, 'l', 'l', 'o'}, msg.Body())
		got, err := body.Extract(msg)
		require.NoError(t, err)
		assert.Equal(t, "héllo", got)
	})

	t.Run("mapped body", func(t *testing.T) {
		type greeting struct{ text string }
		body := lens.MapBody(lens.BodyText,
			func(s string) (greeting, error) { return greeting{text: s}, nil },
			func(g greeting) string { return g.text },
		).Required()

		msg := body.Inject(greeting{text: "hi"}, message.NewResponse(http.StatusOK))
		got, err := body.Extract(msg)
		require.NoError(t, err)
		assert.Equal(t, greeting{text: "hi"}, got)
	})

	t.Run("integer body", func(t *testing.T) {
		body := lens.MapBodyWith(lens.BodyText, lens.IntMapper).Required()

		_, err := body.Extract(message.NewResponse(http.StatusOK).WithBody([]byte("ten")))
		assert.ErrorIs(t, err, lens.ErrTypeConversion)

		n, err := body.Extract(message.NewResponse(http.StatusOK).WithBody([]byte("10")))
		require.NoError(t, err)
		assert.Equal(t, 10, n)
	})

	t.Run("one-way body", func(t *testing.T) {
		length := lens.MapBodyIn(lens.BodyText, func(s string) (int, error) { return len(s), nil }).Required()
		n, err := length.Extract(message.NewResponse(http.StatusOK).WithBody([]byte("four")))
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Panics(t, func() { length.Inject(1, message.NewResponse(http.StatusOK)) })
	})
}

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("nil encoding defaults to utf-8", func(t *testing.T) {
		m := lens.Text(nil)
		s, err := m.MapIn([]byte("ok ✓"))
		require.NoError(t, err)
		assert.Equal(t, "ok ✓", s)
		assert.Equal(t, []byte("ok ✓"), m.MapOut("ok ✓"))
	})

	t.Run("unsupported runes are replaced", func(t *testing.T) {
		out := lens.Text(charmap.ISO8859_1).MapOut("a✓")
		require.Len(t, out, 2)
		assert.Equal(t, byte('a'), out[0])
	})

	t.Run("encoding by name", func(t *testing.T) {
		enc, err := lens.EncodingByName("utf-8")
		require.NoError(t, err)
		s, err := lens.Text(enc).MapIn([]byte("x"))
		require.NoError(t, err)
		assert.Equal(t, "x", s)

		_, err = lens.EncodingByName("klingon")
		assert.ErrorIs(t, err, lens.ErrTypeConversion)
	})
}

func TestBoolMapper(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"true", "1", "on", "YES", "t"} {
		v, err := lens.BoolMapper.MapIn(in)
		require.NoError(t, err, in)
		assert.True(t, v, in)
	}
	for _, in := range []string{"false", "0", "off", "no"} {
		v, err := lens.BoolMapper.MapIn(in)
		require.NoError(t, err, in)
		assert.False(t, v, in)
	}
	_, err := lens.BoolMapper.MapIn("maybe")
	assert.ErrorIs(t, err, lens.ErrTypeConversion)
}
