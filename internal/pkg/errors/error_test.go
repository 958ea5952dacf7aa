package xerrors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	err := Wrap(ErrFetchFailed, "get customers")
	assert.EqualError(t, err, "get customers: fetch failed")
	assert.True(t, Is(err, ErrFetchFailed))
	assert.False(t, Is(err, ErrBadRequest))
}
