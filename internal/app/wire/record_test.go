package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombot/internal/pkg/errs"
)

func TestEncodeOrdered(t *testing.T) {
	t.Parallel()

	got := EncodeOrdered("c", Attr{"p", "Offensive language"}, Attr{"u", "42"}, Attr{"t", "/k"})
	assert.Equal(t, "<c p=\"Offensive language\" u=\"42\" t=\"/k\" />\x00", string(got))
}

func TestEncodeOrderedNoAttributes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<done />\x00", string(EncodeOrdered("done")))
}

func TestEncodeDoesNotEscape(t *testing.T) {
	t.Parallel()

	got := EncodeOrdered("m", Attr{"t", "a<b&c"})
	assert.Equal(t, "<m t=\"a<b&c\" />\x00", string(got))
}

func TestEncodeUnorderedContainsEveryPair(t *testing.T) {
	t.Parallel()

	got := string(Encode("y", map[string]string{"r": "8", "v": "0", "u": "123"}))
	assert.Equal(t, "<y r=\"8\" u=\"123\" v=\"0\" />\x00", got)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   string
		attrs []Attr
	}{
		{name: "empty", tag: "done"},
		{name: "single", tag: "l", attrs: []Attr{{"u", "7"}}},
		{name: "empty value", tag: "j2", attrs: []Attr{{"r", ""}, {"e", ""}, {"f", "0"}}},
		{name: "multi-byte", tag: "m", attrs: []Attr{{"t", "héllo wörld ✓"}, {"u", "9"}}},
		{name: "case sensitive keys", tag: "j2", attrs: []Attr{{"N", "bot"}, {"n", "Bot"}}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name+" ordered", func(t *testing.T) {
			t.Parallel()

			encoded := EncodeOrdered(tt.tag, tt.attrs...)
			rec, err := Decode(string(encoded[:len(encoded)-1]))
			require.NoError(t, err)

			assert.Equal(t, tt.tag, rec.Tag)
			if len(tt.attrs) == 0 {
				assert.Empty(t, rec.Attrs)
			} else {
				assert.Equal(t, tt.attrs, rec.Attrs)
			}
		})

		t.Run(tt.name+" unordered", func(t *testing.T) {
			t.Parallel()

			m := make(map[string]string, len(tt.attrs))
			for _, a := range tt.attrs {
				m[a.Key] = a.Value
			}

			encoded := Encode(tt.tag, m)
			rec, err := Decode(string(encoded[:len(encoded)-1]))
			require.NoError(t, err)

			assert.Equal(t, tt.tag, rec.Tag)
			assert.Equal(t, m, rec.Map())
		})
	}
}

func TestDecodeGet(t *testing.T) {
	t.Parallel()

	rec, err := Decode(`<m t="!roll 2d6" u="15" />`)
	require.NoError(t, err)

	text, ok := rec.Get("t")
	assert.True(t, ok)
	assert.Equal(t, "!roll 2d6", text)

	_, ok = rec.Get("missing")
	assert.False(t, ok)
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "just text", "<m t=\"unterminated />"} {
		_, err := Decode(raw)
		require.Error(t, err, raw)
		assert.True(t, errs.HasCode(err, errs.ErrMalformedRecord), raw)
	}
}

func TestTagOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		`<u u="1" n="x" />`: "u",
		`<logout />`:        "logout",
		`<done/>`:           "done",
		`<done>`:            "done",
		`<j2 cb="1" />`:     "j2",
	}

	for raw, want := range tests {
		assert.Equal(t, want, TagOf(raw), raw)
	}
}
