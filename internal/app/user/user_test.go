package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roombot/internal/app/wire"
	"roombot/internal/pkg/errs"
)

func TestParse(t *testing.T) {
	t.Parallel()

	rec, err := wire.Decode(`<u cb="1700000000" u="1510151" f="169" N="alice" n="Alice" a="512" h="" v="2" />`)
	require.NoError(t, err)

	u, err := Parse(rec)
	require.NoError(t, err)

	assert.Equal(t, "1510151", u.ID)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "alice", u.RegName)
	assert.Equal(t, "512", u.Avatar)
	assert.Equal(t, "169", u.Flags)
	assert.Equal(t, []wire.Attr{{Key: "cb", Value: "1700000000"}, {Key: "v", Value: "2"}}, u.Extra)
}

func TestParseRequiresID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{`<u n="nobody" />`, `<u u="" n="blank" />`} {
		rec, err := wire.Decode(raw)
		require.NoError(t, err)

		_, err = Parse(rec)
		require.Error(t, err)
		assert.True(t, errs.HasCode(err, errs.ErrUnexpectedRecord))
	}
}
