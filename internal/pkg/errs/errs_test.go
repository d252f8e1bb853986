package errs

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorFormatsDetails(t *testing.T) {
	t.Parallel()

	err := NewError(ErrMissingCredentialField, "k1, k3")
	assert.Equal(t, ErrMissingCredentialField, err.Code)
	assert.Contains(t, err.Message, "k1, k3 missing")
	assert.Equal(t, http.StatusInternalServerError, err.Status)
}

func TestNewErrorKeepsTemplateStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusNotFound, NewError(ErrNotFound, "user 1").Status)
}

func TestNewErrorUnknownCode(t *testing.T) {
	t.Parallel()

	err := NewError(424242)
	assert.Equal(t, ErrUnknown, err.Code)
}

func TestWrapAndHasCode(t *testing.T) {
	t.Parallel()

	err := Wrap(ErrTransport, io.EOF, "receive")
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, HasCode(err, ErrTransport))
	assert.False(t, HasCode(err, ErrConnectionRejected))
	assert.Contains(t, err.Error(), "Transport failure during receive.")

	wrapped := fmt.Errorf("connect: %w", err)
	assert.True(t, HasCode(wrapped, ErrTransport))

	nested := Wrap(ErrMalformedRecord, NewError(ErrUnexpectedRecord, "m", "t"), "bad")
	assert.True(t, HasCode(nested, ErrUnexpectedRecord))

	assert.False(t, HasCode(errors.New("plain"), ErrTransport))
	assert.False(t, HasCode(nil, ErrTransport))
}
